package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the client and database handle so the connection can be
// injected and torn down explicitly instead of living in a package global.
type Mongo struct {
	client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, uri, name string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Mongo{client: client, DB: client.Database(name)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the services rely on. The unique
// indexes on users are the authoritative guard against concurrent
// signups reusing the same identity.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	users := m.DB.Collection("users")
	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	reports := m.DB.Collection("reports")
	reportIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}
	if _, err := reports.Indexes().CreateMany(ctx, reportIndexes); err != nil {
		return fmt.Errorf("reports indexes: %w", err)
	}
	return nil
}
