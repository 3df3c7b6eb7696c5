// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/web-ghoul/Brainstorming-Server/internal/config"
	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
)

const (
	usersCollection = "users"
	ideasCollection = "ideas"
)

// MongoDatabase owns the driver client and hands out collection handles to
// the repositories.
type MongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewMongoDatabase connects to the document database described by cfg,
// verifies the connection with a ping, and ensures the indexes the
// repositories rely on.
func NewMongoDatabase(ctx context.Context, cfg config.DB, logger *logger.Logger) (*MongoDatabase, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.ConnString))
	if err != nil {
		return nil, fmt.Errorf("error connecting to document database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging document database: %w", err)
	}

	m := &MongoDatabase{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to document database")
	return m, nil
}

func (m *MongoDatabase) ensureIndexes(ctx context.Context) error {
	users := m.db.Collection(usersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "provider", Value: 1}, {Key: "provider_id", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	ideas := m.db.Collection(ideasCollection)
	_, err = ideas.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("error creating idea indexes: %w", err)
	}

	return nil
}

// Close disconnects the underlying driver client.
func (m *MongoDatabase) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// NewRepositories builds the repository bundle on top of the connected
// database.
func NewRepositories(db *MongoDatabase) Repositories {
	return Repositories{
		UserRepository: &mongoUserRepository{collection: db.db.Collection(usersCollection)},
		IdeaRepository: &mongoIdeaRepository{collection: db.db.Collection(ideasCollection)},
	}
}
