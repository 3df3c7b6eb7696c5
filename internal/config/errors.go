package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSessionSecret indicates that no session secret was
	// supplied by any configuration source. The server refuses to start
	// with unsigned session cookies.
	ErrMissingSessionSecret = errors.New("missing session secret")
	// ErrInvalidStorageConfigs indicates invalid document database
	// settings (for example, empty connection string or database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive rate-limit
	// window or request budget after merging all sources.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
