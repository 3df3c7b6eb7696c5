package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON file parsing.
// Durations are accepted both as strings ("15m") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			ConnString string `json:"conn"`
			Database   string `json:"database"`
		} `json:"db,omitempty"`

		Redis struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Session struct {
		Secret     string   `json:"secret"`
		CookieName string   `json:"cookie_name"`
		TTL        Duration `json:"ttl"`
		Secure     bool     `json:"secure"`
	} `json:"session,omitempty"`

	RateLimit struct {
		Window Duration `json:"window"`
		Max    int64    `json:"max"`
	} `json:"rate_limit,omitempty"`

	ImageHost struct {
		BaseURL           string   `json:"base_url"`
		APIKey            string   `json:"api_key"`
		Timeout           Duration `json:"timeout"`
		RequestsPerSecond int      `json:"requests_per_second"`
	} `json:"image_host,omitempty"`

	OAuth struct {
		RedirectBase string `json:"redirect_base"`
		Google       struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"google,omitempty"`
		Facebook struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"facebook,omitempty"`
	} `json:"oauth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				ConnString: jsonCfg.Storage.DB.ConnString,
				Database:   jsonCfg.Storage.DB.Database,
			},
			Redis: Redis{
				Addr:     jsonCfg.Storage.Redis.Addr,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Session: Session{
			Secret:     jsonCfg.Session.Secret,
			CookieName: jsonCfg.Session.CookieName,
			TTL:        time.Duration(jsonCfg.Session.TTL),
			Secure:     jsonCfg.Session.Secure,
		},
		RateLimit: RateLimit{
			Window: time.Duration(jsonCfg.RateLimit.Window),
			Max:    jsonCfg.RateLimit.Max,
		},
		ImageHost: ImageHost{
			BaseURL:           jsonCfg.ImageHost.BaseURL,
			APIKey:            jsonCfg.ImageHost.APIKey,
			Timeout:           time.Duration(jsonCfg.ImageHost.Timeout),
			RequestsPerSecond: jsonCfg.ImageHost.RequestsPerSecond,
		},
		OAuth: OAuth{
			RedirectBase: jsonCfg.OAuth.RedirectBase,
			Google: Provider{
				ClientID:     jsonCfg.OAuth.Google.ClientID,
				ClientSecret: jsonCfg.OAuth.Google.ClientSecret,
			},
			Facebook: Provider{
				ClientID:     jsonCfg.OAuth.Facebook.ClientID,
				ClientSecret: jsonCfg.OAuth.Facebook.ClientSecret,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
