// Package cli provides the interactive Influe command-line client.
//
// It wires configuration, the local token store, the REST API client, and an
// interactive REPL around the credit-gated submission workflow: check a photo
// or a block of text for posting risk, log in or register when the server's
// login gate demands it, and buy credit packages once the free ones run out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
