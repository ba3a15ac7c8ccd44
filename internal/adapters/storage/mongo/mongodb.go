package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Open conecta a Mongo y devuelve el handle de la base.
// El caller es dueño del ciclo de vida del cliente (Close).
func Open(uri, database string) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Client{
		cli: cli,
		db:  cli.Database(database),
	}, nil
}

type Client struct {
	cli *mongo.Client
	db  *mongo.Database
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return c.cli.Disconnect(ctx)
}
