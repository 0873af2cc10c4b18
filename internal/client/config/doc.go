// Package config loads runtime configuration for the tdfs CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-u string   user id sent with every request
//	-t string   user token sent with every request
//	-i int      per-request timeout (seconds)
//	-l string   local journal database file
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "user_id": "alice",
//	  "user_token": "eyJ...",
//	  "request_timeout": "30s",
//	  "local_db": "tdfs.db"
//	}
//
// When no token is configured the CLI prompts for it on the terminal.
package config
