package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser persists a new account. Returns ErrEmailAlreadyExists
	// when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindUserByProvider looks an account up by the external identity
	// that created it. Returns ErrNoUserWasFound when absent.
	FindUserByProvider(ctx context.Context, provider, providerID string) (models.User, error)
}

// IdeaRepository is the persistence boundary for ideas.
type IdeaRepository interface {
	CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error)

	// GetIdea returns ErrIdeaNotFound when absent.
	GetIdea(ctx context.Context, ideaID string) (models.Idea, error)

	// ListIdeas returns all ideas, newest first.
	ListIdeas(ctx context.Context) ([]models.Idea, error)

	// UpdateIdea applies the non-nil fields of update to the idea owned
	// by ownerID. Returns ErrIdeaNotFound when the idea is absent and
	// ErrNotIdeaOwner when it belongs to someone else.
	UpdateIdea(ctx context.Context, ideaID, ownerID string, update models.IdeaUpdate) (models.Idea, error)

	// DeleteIdea removes the idea owned by ownerID, with the same error
	// contract as UpdateIdea.
	DeleteIdea(ctx context.Context, ideaID, ownerID string) error
}

// Repositories bundles every repository the service layer needs.
type Repositories struct {
	UserRepository UserRepository
	IdeaRepository IdeaRepository
}
