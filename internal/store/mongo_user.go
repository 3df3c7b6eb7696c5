package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/web-ghoul/Brainstorming-Server/models"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: inserting user: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *mongoUserRepository) FindUserByProvider(ctx context.Context, provider, providerID string) (models.User, error) {
	return r.findOne(ctx, bson.M{"provider": provider, "provider_id": providerID})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: finding user: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
