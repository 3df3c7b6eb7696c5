// SPDX-License-Identifier: Apache-2.0

// Package oauth implements the third-party login strategies and the
// registry the auth handlers dispatch on.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

var ErrUnknownProvider = errors.New("unknown oauth provider")

// Strategy is the contract every external login strategy implements.
// Implementations return identity facts only; account creation, linking
// and session management stay with the caller.
type Strategy interface {
	// Name returns the strategy identifier used in routes ("google",
	// "facebook").
	Name() string

	// AuthCodeURL returns the provider authorization URL the client is
	// redirected to. State is the anti-forgery value the caller issued.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for a normalized identity.
	Exchange(ctx context.Context, code string) (models.ExternalIdentity, error)
}

// Registry holds the configured strategies keyed by name.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds a registry from the configured provider credentials.
// Providers with missing credentials are skipped, so deployments may enable
// any subset of strategies.
func NewRegistry(ctx context.Context, cfg config.OAuth, log *logger.Logger) (*Registry, error) {
	r := &Registry{strategies: make(map[string]Strategy)}

	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		google, err := NewGoogleStrategy(ctx, cfg.Google, callbackURL(cfg.RedirectBase, "google"))
		if err != nil {
			return nil, fmt.Errorf("init google strategy: %w", err)
		}
		r.Register(google)
	}

	if cfg.Facebook.ClientID != "" && cfg.Facebook.ClientSecret != "" {
		r.Register(NewFacebookStrategy(cfg.Facebook, callbackURL(cfg.RedirectBase, "facebook")))
	}

	for name := range r.strategies {
		log.Info().Str("provider", name).Msg("oauth strategy enabled")
	}

	return r, nil
}

// Register adds a strategy to the registry, replacing any strategy with
// the same name.
func (r *Registry) Register(s Strategy) {
	if r.strategies == nil {
		r.strategies = make(map[string]Strategy)
	}
	r.strategies[s.Name()] = s
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return s, nil
}

// GenerateState returns a random URL-safe anti-forgery value for one
// authorization round trip.
func GenerateState() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

func callbackURL(base, provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/callback", base, provider)
}
