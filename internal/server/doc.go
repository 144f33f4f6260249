// Package server wires and runs the application's transport server.
//
// It owns the HTTP server lifecycle: startup, SIGINT/SIGTERM/SIGQUIT handling
// and graceful shutdown bounded by the configured shutdown timeout.
package server
