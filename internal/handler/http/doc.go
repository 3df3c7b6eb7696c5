// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and the fixed middleware
// pipeline every request passes through: panic recovery, request deadline,
// tracing, access logging, rate limiting, body capping, response compression, security
// headers, input sanitization, cross-origin policy, and cookie sessions.
// Authentication is enforced per route group before requests are delegated
// to the service layer.
package http
