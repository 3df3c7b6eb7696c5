package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

type mongoIdeaRepository struct {
	collection *mongo.Collection
}

func (r *mongoIdeaRepository) CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error) {
	if _, err := r.collection.InsertOne(ctx, idea); err != nil {
		return models.Idea{}, fmt.Errorf("%w: inserting idea: %w", ErrExecutingQuery, err)
	}

	return idea, nil
}

func (r *mongoIdeaRepository) GetIdea(ctx context.Context, ideaID string) (models.Idea, error) {
	var idea models.Idea
	err := r.collection.FindOne(ctx, bson.M{"_id": ideaID}).Decode(&idea)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Idea{}, ErrIdeaNotFound
	}
	if err != nil {
		return models.Idea{}, fmt.Errorf("%w: finding idea: %w", ErrExecutingQuery, err)
	}

	return idea, nil
}

func (r *mongoIdeaRepository) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: listing ideas: %w", ErrExecutingQuery, err)
	}

	var ideas []models.Idea
	if err := cursor.All(ctx, &ideas); err != nil {
		return nil, fmt.Errorf("%w: decoding ideas: %w", ErrExecutingQuery, err)
	}

	return ideas, nil
}

func (r *mongoIdeaRepository) UpdateIdea(ctx context.Context, ideaID, ownerID string, update models.IdeaUpdate) (models.Idea, error) {
	// ownership is checked first so the caller can distinguish "not yours"
	// from "does not exist"
	existing, err := r.GetIdea(ctx, ideaID)
	if err != nil {
		return models.Idea{}, err
	}
	if existing.OwnerID != ownerID {
		return models.Idea{}, ErrNotIdeaOwner
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.ImageURLs != nil {
		set["image_urls"] = *update.ImageURLs
	}

	var updated models.Idea
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": ideaID, "owner_id": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Idea{}, ErrIdeaNotFound
	}
	if err != nil {
		return models.Idea{}, fmt.Errorf("%w: updating idea: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *mongoIdeaRepository) DeleteIdea(ctx context.Context, ideaID, ownerID string) error {
	existing, err := r.GetIdea(ctx, ideaID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotIdeaOwner
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": ideaID, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("%w: deleting idea: %w", ErrExecutingQuery, err)
	}
	if res.DeletedCount == 0 {
		return ErrIdeaNotFound
	}

	return nil
}
