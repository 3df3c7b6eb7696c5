package service

import (
	"context"
	"strings"
	"time"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/store"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
	"github.com/web-ghoul/Brainstorming-Server/models"
)

type ideaService struct {
	ideas  store.IdeaRepository
	logger *logger.Logger
}

// NewIdeaService constructs the idea service.
func NewIdeaService(ideas store.IdeaRepository, log *logger.Logger) IdeaService {
	return &ideaService{
		ideas:  ideas,
		logger: log.GetChildLogger(),
	}
}

func (s *ideaService) CreateIdea(ctx context.Context, ownerID string, idea models.Idea) (models.Idea, error) {
	idea.Title = strings.TrimSpace(idea.Title)
	if ownerID == "" || idea.Title == "" {
		return models.Idea{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	idea.ID = utils.NewID()
	idea.OwnerID = ownerID
	idea.CreatedAt = now
	idea.UpdatedAt = now

	created, err := s.ideas.CreateIdea(ctx, idea)
	if err != nil {
		return models.Idea{}, err
	}

	s.logger.Info().Str("idea_id", created.ID).Str("owner_id", ownerID).Msg("idea created")
	return created, nil
}

func (s *ideaService) GetIdea(ctx context.Context, ideaID string) (models.Idea, error) {
	if ideaID == "" {
		return models.Idea{}, ErrInvalidDataProvided
	}
	return s.ideas.GetIdea(ctx, ideaID)
}

func (s *ideaService) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	return s.ideas.ListIdeas(ctx)
}

func (s *ideaService) UpdateIdea(ctx context.Context, ideaID, ownerID string, update models.IdeaUpdate) (models.Idea, error) {
	if ideaID == "" || ownerID == "" {
		return models.Idea{}, ErrInvalidDataProvided
	}
	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return models.Idea{}, ErrInvalidDataProvided
		}
		update.Title = &trimmed
	}
	return s.ideas.UpdateIdea(ctx, ideaID, ownerID, update)
}

func (s *ideaService) DeleteIdea(ctx context.Context, ideaID, ownerID string) error {
	if ideaID == "" || ownerID == "" {
		return ErrInvalidDataProvided
	}
	if err := s.ideas.DeleteIdea(ctx, ideaID, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("idea_id", ideaID).Str("owner_id", ownerID).Msg("idea deleted")
	return nil
}
