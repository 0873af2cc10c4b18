// Package client contains the client side of the tdfs protocol.
//
// # Overview
//
// The Client interface is the transport-agnostic contract used by the CLI:
// CreateFile, GetFile, ListFiles and DeleteFile. GRPCClient implements it on
// top of tdfs.v1.FileService: every call builds a dfsproto request with the
// configured user id and token, sends it as JSON and checks that the response
// carries the same tag.
//
// # Error Handling
//
// gRPC status codes are mapped back to sentinel errors callers can match with
// errors.Is: common.ErrorNotFound, common.ErrorForbidden,
// common.ErrorValidation, common.ErrTokenExpired, ErrUnauthorized and
// ErrUnavailable.
package client
