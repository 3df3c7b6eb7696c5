// Package store provides persistence repositories for users and ideas.
//
// The production implementation is backed by a MongoDB document database;
// an in-memory implementation with the same error contract backs tests and
// local development. Session and rate-limit state live elsewhere (see the
// session and ratelimit packages) because they are shared, short-lived
// operational state rather than domain documents.
package store
