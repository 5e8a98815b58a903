package infra

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo bundles the connected client with the application database handle.
// It is created exactly once at startup and passed by reference to every
// consumer, so there is no lazy-initialization race to guard against.
type Mongo struct {
	client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to the document store, verifies connectivity and returns
// a handle scoped to the named database.
func NewMongo(ctx context.Context, url, database string) (*Mongo, error) {
	if url == "" {
		return nil, fmt.Errorf("mongo url is required")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Mongo{client: client, Database: client.Database(database)}, nil
}

// Ping verifies the connection is still healthy.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
