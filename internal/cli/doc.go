// Package cli provides the interactive command-line front end of the
// organizer.
//
// It is a thin presentation layer over the stores and services: an
// interactive REPL that prompts for credentials, then executes user commands
// against the client records, the managed files folder, the receipt composer,
// and the delivery dispatcher. Any other front end could replace it without
// touching the underlying operations.
package cli
