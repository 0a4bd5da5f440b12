package store

import (
	"context"
	"fmt"
	"time"

	"siburger-bot/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the MongoDB connection. It is constructed once in main and
// passed into the repositories that need it; nothing reaches it through
// package-level state.
type Client struct {
	cli *mongo.Client
	db  *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cli, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := cli.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Client{
		cli: cli,
		db:  cli.Database(cfg.MongoDatabase),
	}, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

func (c *Client) Close(ctx context.Context) error {
	return c.cli.Disconnect(ctx)
}
