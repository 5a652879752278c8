package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

// WithTransaction runs fn inside one session transaction. The session
// context passed to fn must flow into every repository call so the
// whole import commits or aborts together; concurrent readers never
// observe a partially-applied run.
func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// restaurant names are globally unique after normalization
	restaurantIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_normalized", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("restaurants").Indexes().CreateMany(ctx, restaurantIndexes); err != nil {
		return fmt.Errorf("failed to create restaurants indexes: %w", err)
	}

	// menu names are unique per restaurant after normalization
	menuIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "restaurant_id", Value: 1},
				{Key: "name_normalized", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("menus").Indexes().CreateMany(ctx, menuIndexes); err != nil {
		return fmt.Errorf("failed to create menus indexes: %w", err)
	}

	// (normalized name, price) identifies a menu item
	itemIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name_normalized", Value: 1},
				{Key: "price", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("menu_items").Indexes().CreateMany(ctx, itemIndexes); err != nil {
		return fmt.Errorf("failed to create menu_items indexes: %w", err)
	}

	linkIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "menu_id", Value: 1},
				{Key: "menu_item_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("menu_item_links").Indexes().CreateMany(ctx, linkIndexes); err != nil {
		return fmt.Errorf("failed to create menu_item_links indexes: %w", err)
	}

	taskIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}
	if _, err := s.database.Collection("import_tasks").Indexes().CreateMany(ctx, taskIndexes); err != nil {
		return fmt.Errorf("failed to create import_tasks indexes: %w", err)
	}

	return nil
}
