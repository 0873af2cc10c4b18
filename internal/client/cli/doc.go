// Package cli implements the tdfs command-line client.
//
// Commands:
//
//	put <path>            register, encrypt and upload a file; prints its id
//	get <id> [out]        download, decrypt and verify a file
//	ls                    list ids of files owned by or shared with the user
//	rm <id>               delete an owned file
//
// Content never leaves the machine in clear text: put seals it with the
// key config returned by the server and get opens it with the key config
// returned for the file, then checks the plaintext against its sha256.
package cli
