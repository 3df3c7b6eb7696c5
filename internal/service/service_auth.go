// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

const minPasswordLength = 8

type authService struct {
	users  store.UserRepository
	cfg    *config.StructuredConfig
	logger *logger.Logger
}

// NewAuthService constructs the authentication service.
func NewAuthService(users store.UserRepository, cfg *config.StructuredConfig, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		cfg:    cfg,
		logger: log.GetChildLogger(),
	}
}

func (s *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	creds.Name = strings.TrimSpace(creds.Name)

	if !validEmail(creds.Email) || creds.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if len(creds.Password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error occurred hashing password: %w", err)
	}

	user := models.User{
		UserID:       utils.NewID(),
		Email:        creds.Email,
		Name:         creds.Name,
		PasswordHash: string(hash),
		Provider:     "local",
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", created.UserID).Msg("user registered")
	return created, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, err
	}

	// Accounts created by an OAuth strategy have no local password.
	if user.PasswordHash == "" {
		return models.User{}, ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func (s *authService) ResolveExternal(ctx context.Context, identity models.ExternalIdentity) (models.User, error) {
	if identity.Provider == "" || identity.ProviderID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByProvider(ctx, identity.Provider, identity.ProviderID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, err
	}

	user = models.User{
		UserID:     utils.NewID(),
		Email:      strings.ToLower(identity.Email),
		Name:       identity.Name,
		Provider:   identity.Provider,
		ProviderID: identity.ProviderID,
		AvatarURL:  identity.AvatarURL,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().
		Str("user_id", created.UserID).
		Str("provider", identity.Provider).
		Msg("external account created")
	return created, nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	return s.users.FindUserByID(ctx, userID)
}

func (s *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.cfg.App.TokenIssuer, user.UserID, s.cfg.App.TokenDuration, s.cfg.App.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred creating token: %w", err)
	}
	return token, nil
}

func (s *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.App.TokenSignKey, s.cfg.App.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}
	return token, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
