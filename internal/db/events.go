package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
)

// InsertEvents appends a batch of ledger events to the outbox.
func (db *Database) InsertEvents(ctx context.Context, events []*model.EventDocument) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, len(events))
	for i, ev := range events {
		docs[i] = ev
	}
	_, err := db.collection(model.EventOutboxCollection).InsertMany(ctx, docs)
	if err != nil {
		var writeErr mongo.BulkWriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     e.Message,
						Message: "event already recorded",
					}
				}
			}
		}
		return err
	}
	return nil
}

// FindUnpublishedEvents returns the oldest outbox entries that have not yet
// been delivered to the queue.
func (db *Database) FindUnpublishedEvents(ctx context.Context, limit int64) ([]model.EventDocument, error) {
	filter := bson.M{"published": false}
	opts := options.Find().
		SetSort(bson.M{"created_at": 1}).
		SetLimit(limit)

	cursor, err := db.collection(model.EventOutboxCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.EventDocument
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// MarkEventPublished flags an outbox entry as delivered.
func (db *Database) MarkEventPublished(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"published": true}}

	res, err := db.collection(model.EventOutboxCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark event %s published: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id.Hex(),
			Message: "outbox event not found",
		}
	}
	return nil
}
