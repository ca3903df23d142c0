package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// Event outbox
	InsertEvents(ctx context.Context, events []*model.EventDocument) error
	FindUnpublishedEvents(ctx context.Context, limit int64) ([]model.EventDocument, error)
	MarkEventPublished(ctx context.Context, id primitive.ObjectID) error

	// Read models maintained alongside the in-memory ledger
	UpsertPool(ctx context.Context, pool *model.PoolDocument) error
	GetPool(ctx context.Context, poolID uint64) (*model.PoolDocument, error)
	UpsertPosition(ctx context.Context, pos *model.PositionDocument) error
	DeletePosition(ctx context.Context, poolID uint64, staker string) error
	GetPosition(ctx context.Context, poolID uint64, staker string) (*model.PositionDocument, error)
	UpsertUserStats(ctx context.Context, stats *model.UserStatsDocument) error
	UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error
}
