// Package server runs the HTTP transport.
//
// It owns the listener lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and a graceful shutdown bounded by the configured timeout.
package server
