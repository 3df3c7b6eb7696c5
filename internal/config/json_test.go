package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	content := `{
		"server": {
			"http_address": ":9000",
			"request_timeout": "20s",
			"max_body_bytes": 2097152,
			"cors_origins": ["http://localhost:4000"]
		},
		"session": {"secret": "json-secret", "ttl": "12h"},
		"rate_limit": {"window": "5m", "max": 50},
		"storage": {
			"db": {"conn": "mongodb://db:27017", "database": "ideas"},
			"redis": {"addr": "redis:6379", "db": 2}
		},
		"image_host": {"base_url": "https://img.example.com", "api_key": "k"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(2<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:4000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "json-secret", cfg.Session.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, int64(50), cfg.RateLimit.Max)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.DB.ConnString)
	assert.Equal(t, "ideas", cfg.Storage.DB.Database)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "https://img.example.com", cfg.ImageHost.BaseURL)
}

func TestParseJSONMissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"15m"`, expected: 15 * time.Minute},
		{name: "nanosecond number", input: `60000000000`, expected: time.Minute},
		{name: "garbage", input: `"forever"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
