package model

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeforge-io/staking-ledger/internal/config"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	EventOutboxCollection: {
		{Indexes: map[string]int{"published": 1, "created_at": 1}},
	},
	PoolCollection:         {{Indexes: map[string]int{}}},
	PositionCollection:     {{Indexes: map[string]int{"pool_id": 1}}},
	UserStatsCollection:    {{Indexes: map[string]int{}}},
	OverallStatsCollection: {{Indexes: map[string]int{}}},
}

// Setup creates the collections and secondary indexes the ledger store
// relies on. Safe to run repeatedly.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DbName)
	for name, indexes := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range indexes {
			if len(idx.Indexes) == 0 {
				continue
			}
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, name string) error {
	err := database.CreateCollection(ctx, name)
	if err != nil {
		var cmdErr mongo.CommandError
		// NamespaceExists
		if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
			return nil
		}
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

func createIndex(ctx context.Context, database *mongo.Database, collection string, idx index) error {
	keys := bson.D{}
	for field, direction := range idx.Indexes {
		keys = append(keys, bson.E{Key: field, Value: direction})
	}
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(idx.Unique),
	}
	if _, err := database.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collection, err)
	}
	return nil
}
