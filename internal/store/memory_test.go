package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := models.User{
		UserID:   "user-1",
		Email:    "alice@example.com",
		Name:     "Alice",
		Provider: "local",
	}

	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, created)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, models.User{
			UserID: "user-2",
			Email:  "alice@example.com",
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", found.UserID)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindUserByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", found.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("find by provider", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, models.User{
			UserID:     "user-3",
			Email:      "bob@example.com",
			Provider:   "google",
			ProviderID: "g-123",
		})
		require.NoError(t, err)

		found, err := repo.FindUserByProvider(ctx, "google", "g-123")
		require.NoError(t, err)
		assert.Equal(t, "user-3", found.UserID)

		_, err = repo.FindUserByProvider(ctx, "google", "unknown")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestMemoryIdeaRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryIdeaRepository()

	first := models.Idea{
		ID:        "idea-1",
		OwnerID:   "user-1",
		Title:     "older",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	second := models.Idea{
		ID:        "idea-2",
		OwnerID:   "user-1",
		Title:     "newer",
		CreatedAt: time.Now(),
	}

	_, err := repo.CreateIdea(ctx, first)
	require.NoError(t, err)
	_, err = repo.CreateIdea(ctx, second)
	require.NoError(t, err)

	t.Run("list is newest first", func(t *testing.T) {
		ideas, err := repo.ListIdeas(ctx)
		require.NoError(t, err)
		require.Len(t, ideas, 2)
		assert.Equal(t, "idea-2", ideas[0].ID)
		assert.Equal(t, "idea-1", ideas[1].ID)
	})

	t.Run("partial update", func(t *testing.T) {
		title := "renamed"
		updated, err := repo.UpdateIdea(ctx, "idea-1", "user-1", models.IdeaUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, first.CreatedAt, updated.CreatedAt)
	})

	t.Run("update by non-owner rejected", func(t *testing.T) {
		title := "stolen"
		_, err := repo.UpdateIdea(ctx, "idea-1", "user-2", models.IdeaUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrNotIdeaOwner)
	})

	t.Run("update missing idea", func(t *testing.T) {
		title := "ghost"
		_, err := repo.UpdateIdea(ctx, "idea-404", "user-1", models.IdeaUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrIdeaNotFound)
	})

	t.Run("delete by non-owner rejected", func(t *testing.T) {
		assert.ErrorIs(t, repo.DeleteIdea(ctx, "idea-1", "user-2"), ErrNotIdeaOwner)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteIdea(ctx, "idea-1", "user-1"))
		_, err := repo.GetIdea(ctx, "idea-1")
		assert.ErrorIs(t, err, ErrIdeaNotFound)
	})
}
