// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Gating middleware
// and the error mapper match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when an
	// unauthenticated request carries no session and no "Authorization"
	// header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries the
	// scheme but an empty token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrTooManyRequests is returned by the rate-limit stage when a client
	// exhausts its window budget.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrBodyTooLarge is returned by the body gate when the request body
	// exceeds the configured cap.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidJSON is returned when a JSON request body cannot be parsed.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrOriginNotAllowed is returned by the cross-origin stage for an
	// Origin header outside the allow-list.
	ErrOriginNotAllowed = errors.New("origin not allowed")

	// ErrRouteNotFound is the envelope for requests matching no route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is the envelope for known routes hit with an
	// unsupported method.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrNoFilesUploaded is returned by upload endpoints when the multipart
	// form carries no files.
	ErrNoFilesUploaded = errors.New("no files uploaded")

	// ErrInvalidOAuthState is returned by the oauth callback when the state
	// query value does not match the one issued at redirect time.
	ErrInvalidOAuthState = errors.New("invalid oauth state")

	// ErrOAuthExchangeFailed is returned when the provider rejects the
	// authorization code or cannot be reached.
	ErrOAuthExchangeFailed = errors.New("oauth exchange failed")
)
