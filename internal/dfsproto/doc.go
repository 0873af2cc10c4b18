// Package dfsproto is the message catalog of the TDFS file service.
//
// The protocol has four operations (Create, Get, List, Delete). Each has a
// request payload and a response payload; the Request and Response
// interfaces are closed sums over those payloads and cannot be implemented
// outside this package.
//
// On the wire every message is a JSON object whose "type" key names the
// variant and whose remaining keys are the payload fields:
//
//	{"type":"Get","file_id":"f1","user_id":"u1","user_token":"..."}
//
// Use EncodeRequest/DecodeRequest and EncodeResponse/DecodeResponse to move
// between the two forms. Constructors copy their arguments and never fail;
// validation of file names, digests and tokens belongs to the service that
// consumes the messages.
package dfsproto
