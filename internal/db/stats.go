package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
)

// UpsertUserStats writes a staker's cross-pool aggregates.
func (db *Database) UpsertUserStats(ctx context.Context, stats *model.UserStatsDocument) error {
	filter := bson.M{"_id": stats.ID}
	update := bson.M{"$set": stats}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.UserStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

// UpsertOverallStats writes the protocol-wide aggregates.
func (db *Database) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	stats.ID = model.OverallStatsID
	filter := bson.M{"_id": model.OverallStatsID}
	update := bson.M{"$set": stats}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.OverallStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
