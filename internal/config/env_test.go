// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected StructuredConfig
	}{
		{
			name: "server and storage settings",
			env: map[string]string{
				"SERVER_ADDRESS":         "0.0.0.0:4000",
				"SERVER_REQUEST_TIMEOUT": "45s",
				"SERVER_MAX_BODY_BYTES":  "1048576",
				"STORAGE_DB_CONN":        "mongodb://localhost:27017",
				"STORAGE_DB_DATABASE":    "brainstorming",
				"STORAGE_REDIS_ADDR":     "localhost:6379",
			},
			expected: StructuredConfig{
				Server: Server{
					HTTPAddress:    "0.0.0.0:4000",
					RequestTimeout: 45 * time.Second,
					MaxBodyBytes:   1 << 20,
				},
				Storage: Storage{
					DB: DB{
						ConnString: "mongodb://localhost:27017",
						Database:   "brainstorming",
					},
					Redis: Redis{Addr: "localhost:6379"},
				},
			},
		},
		{
			name: "session and rate limit settings",
			env: map[string]string{
				"SESSION_SECRET":      "topsecret",
				"SESSION_COOKIE_NAME": "sid",
				"SESSION_TTL":         "24h",
				"SESSION_SECURE":      "true",
				"RATE_LIMIT_WINDOW":   "15m",
				"RATE_LIMIT_MAX":      "1000",
			},
			expected: StructuredConfig{
				Session: Session{
					Secret:     "topsecret",
					CookieName: "sid",
					TTL:        24 * time.Hour,
					Secure:     true,
				},
				RateLimit: RateLimit{
					Window: 15 * time.Minute,
					Max:    1000,
				},
			},
		},
		{
			name: "cors origins are comma separated",
			env: map[string]string{
				"SERVER_CORS_ORIGINS": "https://brainstorming-omega.vercel.app,http://localhost:4000",
			},
			expected: StructuredConfig{
				Server: Server{
					CORSOrigins: []string{
						"https://brainstorming-omega.vercel.app",
						"http://localhost:4000",
					},
				},
			},
		},
		{
			name: "image host and oauth settings",
			env: map[string]string{
				"IMAGE_HOST_BASE_URL":           "https://api.imgbb.com/1",
				"IMAGE_HOST_API_KEY":            "key123",
				"IMAGE_HOST_TIMEOUT":            "10s",
				"IMAGE_HOST_REQUESTS_PER_SECOND": "5",
				"OAUTH_REDIRECT_BASE":           "https://brainstorming.example.com",
				"OAUTH_GOOGLE_CLIENT_ID":        "google-id",
				"OAUTH_GOOGLE_CLIENT_SECRET":    "google-secret",
				"OAUTH_FACEBOOK_CLIENT_ID":      "fb-id",
			},
			expected: StructuredConfig{
				ImageHost: ImageHost{
					BaseURL:           "https://api.imgbb.com/1",
					APIKey:            "key123",
					Timeout:           10 * time.Second,
					RequestsPerSecond: 5,
				},
				OAuth: OAuth{
					RedirectBase: "https://brainstorming.example.com",
					Google: Provider{
						ClientID:     "google-id",
						ClientSecret: "google-secret",
					},
					Facebook: Provider{ClientID: "fb-id"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var cfg StructuredConfig
			require.NoError(t, parseEnv(&cfg))

			assert.Equal(t, tt.expected, cfg)
		})
	}
}
