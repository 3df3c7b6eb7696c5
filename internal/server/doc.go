// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown so the
// process drains in-flight requests before exiting.
package server
