// Package http implements the REST transport of the recipe tracker.
//
// It wires the chi routes, the request handlers and the middleware chain:
// request tracing, access logging, Prometheus metrics, panic recovery and
// gzip compression. Handlers decode JSON, call exactly one service and map
// typed failures to HTTP statuses in errors_mapper.go.
package http
