package service

import (
	"context"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

// AuthService handles account registration, credential verification, the
// find-or-create step behind OAuth strategies, and JWT bearer token
// lifecycle.
type AuthService interface {
	// RegisterUser creates a local account from the given credentials.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies local credentials and returns the matching user.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// ResolveExternal finds the account belonging to an external identity,
	// creating it on first login.
	ResolveExternal(ctx context.Context, identity models.ExternalIdentity) (models.User, error)

	// GetUser loads an account by identifier.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// CreateToken issues a signed bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a compact bearer token string and extracts the
	// user identifier.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// IdeaService exposes CRUD over ideas with ownership enforcement.
type IdeaService interface {
	CreateIdea(ctx context.Context, ownerID string, idea models.Idea) (models.Idea, error)
	GetIdea(ctx context.Context, ideaID string) (models.Idea, error)
	ListIdeas(ctx context.Context) ([]models.Idea, error)
	UpdateIdea(ctx context.Context, ideaID, ownerID string, update models.IdeaUpdate) (models.Idea, error)
	DeleteIdea(ctx context.Context, ideaID, ownerID string) error
}
