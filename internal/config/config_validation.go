// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied to fields that were not supplied by any source.
// Durations are deliberately explicit values, never derived arithmetic.
const (
	defaultHTTPAddress    = ":3000"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxBodyBytes   = 10 << 20 // 10 MiB
	defaultCookieName     = "session"
	defaultSessionTTL     = 24 * time.Hour
	defaultRateWindow     = 15 * time.Minute
	defaultRateMax        = 1000
	defaultUploadTimeout  = 15 * time.Second
)

// applyDefaults fills zero-valued fields of the merged config with safe
// defaults. Secrets are never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateWindow
	}
	if cfg.RateLimit.Max == 0 {
		cfg.RateLimit.Max = defaultRateMax
	}
	if cfg.ImageHost.Timeout == 0 {
		cfg.ImageHost.Timeout = defaultUploadTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Session.Secret == "" {
		return ErrMissingSessionSecret
	}

	if cfg.Storage.DB.ConnString == "" || cfg.Storage.DB.Database == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.Max <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
