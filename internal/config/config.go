// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// brainstorming server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// document database and the Redis store shared by sessions and
	// rate-limit counters.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, payload, and cross-origin settings for the
	// HTTP server and its middleware pipeline.
	Server Server `envPrefix:"SERVER_"`

	// Session holds cookie-session settings.
	Session Session `envPrefix:"SESSION_"`

	// RateLimit holds the per-client fixed-window request budget.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// ImageHost holds settings of the external image-hosting service the
	// upload endpoints forward content to.
	ImageHost ImageHost `envPrefix:"IMAGE_HOST_"`

	// OAuth holds client credentials for third-party login strategies.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT bearer
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application,
	// surfaced in the generated API documentation.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the document database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the connection settings of the shared store backing
	// sessions and rate-limit counters.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the document database backend.
type DB struct {
	// ConnString is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_DB_CONN
	ConnString string `env:"CONN"`

	// Database is the name of the database all collections live in.
	// Env: STORAGE_DB_DATABASE
	Database string `env:"DATABASE"`
}

// Redis holds connection settings for the Redis store. When Addr is empty
// the server falls back to process-local in-memory session and rate-limit
// stores, which is only suitable for a single instance.
type Redis struct {
	// Addr is the "host:port" of the Redis server.
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database number.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network, payload, and cross-origin settings for the inbound
// HTTP pipeline.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Applied as
	// a context deadline so in-flight database and upload calls are
	// cancelled together with the request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of any request body accepted by the
	// pipeline. Oversized bodies are rejected before a handler runs.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// CORSOrigins is the fixed allow-list of cross-origin request origins.
	// Requests carrying an Origin header outside the list are rejected
	// before session establishment.
	// Env: SERVER_CORS_ORIGINS (comma-separated)
	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// Session holds cookie-session settings.
type Session struct {
	// Secret is the key used to authenticate session cookie values.
	// Must be kept confidential.
	// Env: SESSION_SECRET
	Secret string `env:"SECRET"`

	// CookieName is the name of the session cookie. Defaults to "session".
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TTL is the sliding time-to-live of a session (e.g. "24h"). The
	// value is treated as an opaque duration and must be set explicitly.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// Secure marks session cookies as HTTPS-only. Enable in production.
	// Env: SESSION_SECURE
	Secure bool `env:"SECURE"`
}

// RateLimit holds the per-client fixed-window request budget enforced by the
// first gating stage of the pipeline.
type RateLimit struct {
	// Window is the length of the counting window (e.g. "15m"). Treated
	// as an opaque duration; set it explicitly.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// Max is the number of requests a single client identifier may issue
	// within one window before being rejected.
	// Env: RATE_LIMIT_MAX
	Max int64 `env:"MAX"`
}

// ImageHost holds settings of the external image-hosting service.
type ImageHost struct {
	// BaseURL is the root endpoint of the image host API
	// (e.g. "https://api.imgbb.com/1").
	// Env: IMAGE_HOST_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates upload calls against the image host.
	// Env: IMAGE_HOST_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single outbound upload call.
	// Env: IMAGE_HOST_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RequestsPerSecond throttles outbound calls to the image host.
	// Zero disables client-side throttling.
	// Env: IMAGE_HOST_REQUESTS_PER_SECOND
	RequestsPerSecond int `env:"REQUESTS_PER_SECOND"`
}

// OAuth holds client credentials for the third-party login strategies.
type OAuth struct {
	// RedirectBase is the externally reachable base URL of this server,
	// used to build provider callback URLs
	// (e.g. "https://brainstorming.example.com").
	// Env: OAUTH_REDIRECT_BASE
	RedirectBase string `env:"REDIRECT_BASE"`

	// Google holds the Google OAuth application credentials.
	Google Provider `envPrefix:"GOOGLE_"`

	// Facebook holds the Facebook OAuth application credentials.
	Facebook Provider `envPrefix:"FACEBOOK_"`
}

// Provider is one OAuth application credential pair.
type Provider struct {
	// ClientID is the public application identifier.
	// Env: <PREFIX>_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the confidential application secret.
	// Env: <PREFIX>_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
