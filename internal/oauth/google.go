package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

const googleIssuer = "https://accounts.google.com"

type googleStrategy struct {
	oauthConfig *oauth2.Config
	verifier    *oidc.IDTokenVerifier
}

// NewGoogleStrategy builds the Google login strategy. Identity facts are
// taken from the OIDC id_token after signature verification, never from
// the unauthenticated userinfo endpoint.
func NewGoogleStrategy(ctx context.Context, creds config.Provider, redirectURL string) (Strategy, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("init google oidc provider: %w", err)
	}

	return &googleStrategy{
		oauthConfig: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: creds.ClientID}),
	}, nil
}

func (g *googleStrategy) Name() string { return "google" }

func (g *googleStrategy) AuthCodeURL(state string) string {
	return g.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *googleStrategy) Exchange(ctx context.Context, code string) (models.ExternalIdentity, error) {
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("google token exchange: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return models.ExternalIdentity{}, errors.New("google did not return id_token")
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("google id_token verification: %w", err)
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("google id_token claims: %w", err)
	}
	if claims.Subject == "" || claims.Email == "" {
		return models.ExternalIdentity{}, errors.New("google id_token missing required claims")
	}

	return models.ExternalIdentity{
		Provider:   g.Name(),
		ProviderID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		AvatarURL:  claims.Picture,
	}, nil
}
