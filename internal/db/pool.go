package db

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
)

// UpsertPool writes the full pool read model.
func (db *Database) UpsertPool(ctx context.Context, pool *model.PoolDocument) error {
	filter := bson.M{"_id": pool.ID}
	update := bson.M{"$set": pool}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.PoolCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// GetPool reads a pool document by id.
func (db *Database) GetPool(ctx context.Context, poolID uint64) (*model.PoolDocument, error) {
	filter := bson.M{"_id": poolID}

	var pool model.PoolDocument
	err := db.collection(model.PoolCollection).FindOne(ctx, filter).Decode(&pool)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     strconv.FormatUint(poolID, 10),
				Message: "pool not found",
			}
		}
		return nil, err
	}
	return &pool, nil
}

// UpsertPosition writes the full position read model.
func (db *Database) UpsertPosition(ctx context.Context, pos *model.PositionDocument) error {
	filter := bson.M{"_id": pos.ID}
	update := bson.M{"$set": pos}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.PositionCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// DeletePosition removes a fully withdrawn position.
func (db *Database) DeletePosition(ctx context.Context, poolID uint64, staker string) error {
	filter := bson.M{"_id": model.PositionID(poolID, staker)}

	res, err := db.collection(model.PositionCollection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{
			Key:     model.PositionID(poolID, staker),
			Message: "position not found",
		}
	}
	return nil
}

// GetPosition reads a position document by (pool, staker).
func (db *Database) GetPosition(ctx context.Context, poolID uint64, staker string) (*model.PositionDocument, error) {
	filter := bson.M{"_id": model.PositionID(poolID, staker)}

	var pos model.PositionDocument
	err := db.collection(model.PositionCollection).FindOne(ctx, filter).Decode(&pos)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.PositionID(poolID, staker),
				Message: "position not found",
			}
		}
		return nil, err
	}
	return &pos, nil
}
