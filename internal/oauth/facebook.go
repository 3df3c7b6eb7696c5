package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

const facebookGraphURL = "https://graph.facebook.com/v19.0"

type facebookStrategy struct {
	oauthConfig *oauth2.Config
	graph       *resty.Client
}

// NewFacebookStrategy builds the Facebook login strategy. Facebook issues
// plain OAuth access tokens without an id_token, so identity facts come
// from an authenticated Graph API call.
func NewFacebookStrategy(creds config.Provider, redirectURL string) Strategy {
	return &facebookStrategy{
		oauthConfig: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     facebook.Endpoint,
			Scopes:       []string{"email", "public_profile"},
		},
		graph: resty.New().
			SetBaseURL(facebookGraphURL).
			SetTimeout(10 * time.Second),
	}
}

func (f *facebookStrategy) Name() string { return "facebook" }

func (f *facebookStrategy) AuthCodeURL(state string) string {
	return f.oauthConfig.AuthCodeURL(state)
}

func (f *facebookStrategy) Exchange(ctx context.Context, code string) (models.ExternalIdentity, error) {
	token, err := f.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("facebook token exchange: %w", err)
	}

	var profile struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}

	resp, err := f.graph.R().
		SetContext(ctx).
		SetQueryParam("fields", "id,name,email,picture").
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get("/me")
	if err != nil {
		return models.ExternalIdentity{}, fmt.Errorf("facebook profile request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.ExternalIdentity{}, fmt.Errorf("facebook profile request: status %d", resp.StatusCode())
	}
	if profile.ID == "" {
		return models.ExternalIdentity{}, errors.New("facebook profile missing id")
	}

	return models.ExternalIdentity{
		Provider:   f.Name(),
		ProviderID: profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
		AvatarURL:  profile.Picture.Data.URL,
	}, nil
}
