package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

// MemoryRepositories returns a repository bundle backed by process memory,
// used in tests and local development without a database.
func MemoryRepositories() Repositories {
	return Repositories{
		UserRepository: NewMemoryUserRepository(),
		IdeaRepository: NewMemoryIdeaRepository(),
	}
}

// MemoryUserRepository is an in-memory UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	r.users[user.UserID] = user
	return user, nil
}

func (r *MemoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *MemoryUserRepository) FindUserByID(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (r *MemoryUserRepository) FindUserByProvider(_ context.Context, provider, providerID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Provider == provider && user.ProviderID == providerID {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

// MemoryIdeaRepository is an in-memory IdeaRepository.
type MemoryIdeaRepository struct {
	mu    sync.RWMutex
	ideas map[string]models.Idea
}

func NewMemoryIdeaRepository() *MemoryIdeaRepository {
	return &MemoryIdeaRepository{ideas: make(map[string]models.Idea)}
}

func (r *MemoryIdeaRepository) CreateIdea(_ context.Context, idea models.Idea) (models.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ideas[idea.ID] = idea
	return idea, nil
}

func (r *MemoryIdeaRepository) GetIdea(_ context.Context, ideaID string) (models.Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idea, ok := r.ideas[ideaID]
	if !ok {
		return models.Idea{}, ErrIdeaNotFound
	}
	return idea, nil
}

func (r *MemoryIdeaRepository) ListIdeas(_ context.Context) ([]models.Idea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ideas := make([]models.Idea, 0, len(r.ideas))
	for _, idea := range r.ideas {
		ideas = append(ideas, idea)
	}

	// newest first, matching the database repository
	sort.Slice(ideas, func(i, j int) bool {
		return ideas[i].CreatedAt.After(ideas[j].CreatedAt)
	})

	return ideas, nil
}

func (r *MemoryIdeaRepository) UpdateIdea(_ context.Context, ideaID, ownerID string, update models.IdeaUpdate) (models.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[ideaID]
	if !ok {
		return models.Idea{}, ErrIdeaNotFound
	}
	if idea.OwnerID != ownerID {
		return models.Idea{}, ErrNotIdeaOwner
	}

	if update.Title != nil {
		idea.Title = *update.Title
	}
	if update.Description != nil {
		idea.Description = *update.Description
	}
	if update.Tags != nil {
		idea.Tags = *update.Tags
	}
	if update.ImageURLs != nil {
		idea.ImageURLs = *update.ImageURLs
	}
	idea.UpdatedAt = time.Now().UTC()

	r.ideas[ideaID] = idea
	return idea, nil
}

func (r *MemoryIdeaRepository) DeleteIdea(_ context.Context, ideaID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idea, ok := r.ideas[ideaID]
	if !ok {
		return ErrIdeaNotFound
	}
	if idea.OwnerID != ownerID {
		return ErrNotIdeaOwner
	}

	delete(r.ideas, ideaID)
	return nil
}
