package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
	"github.com/stakeforge-io/staking-ledger/internal/observability/metrics"
)

// DbWithMetrics decorates a DbInterface with latency metrics per method.
type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.ObserveDbLatency(method, time.Since(start), err != nil)
	return err
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) Shutdown(ctx context.Context) error {
	return d.db.Shutdown(ctx)
}

func (d *DbWithMetrics) InsertEvents(ctx context.Context, events []*model.EventDocument) error {
	return d.run("InsertEvents", func() error {
		return d.db.InsertEvents(ctx, events)
	})
}

func (d *DbWithMetrics) FindUnpublishedEvents(ctx context.Context, limit int64) (result []model.EventDocument, err error) {
	//nolint:errcheck
	d.run("FindUnpublishedEvents", func() error {
		result, err = d.db.FindUnpublishedEvents(ctx, limit)
		return err
	})

	return
}

func (d *DbWithMetrics) MarkEventPublished(ctx context.Context, id primitive.ObjectID) error {
	return d.run("MarkEventPublished", func() error {
		return d.db.MarkEventPublished(ctx, id)
	})
}

func (d *DbWithMetrics) UpsertPool(ctx context.Context, pool *model.PoolDocument) error {
	return d.run("UpsertPool", func() error {
		return d.db.UpsertPool(ctx, pool)
	})
}

func (d *DbWithMetrics) GetPool(ctx context.Context, poolID uint64) (result *model.PoolDocument, err error) {
	//nolint:errcheck
	d.run("GetPool", func() error {
		result, err = d.db.GetPool(ctx, poolID)
		return err
	})

	return
}

func (d *DbWithMetrics) UpsertPosition(ctx context.Context, pos *model.PositionDocument) error {
	return d.run("UpsertPosition", func() error {
		return d.db.UpsertPosition(ctx, pos)
	})
}

func (d *DbWithMetrics) DeletePosition(ctx context.Context, poolID uint64, staker string) error {
	return d.run("DeletePosition", func() error {
		return d.db.DeletePosition(ctx, poolID, staker)
	})
}

func (d *DbWithMetrics) GetPosition(ctx context.Context, poolID uint64, staker string) (result *model.PositionDocument, err error) {
	//nolint:errcheck
	d.run("GetPosition", func() error {
		result, err = d.db.GetPosition(ctx, poolID, staker)
		return err
	})

	return
}

func (d *DbWithMetrics) UpsertUserStats(ctx context.Context, stats *model.UserStatsDocument) error {
	return d.run("UpsertUserStats", func() error {
		return d.db.UpsertUserStats(ctx, stats)
	})
}

func (d *DbWithMetrics) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	return d.run("UpsertOverallStats", func() error {
		return d.db.UpsertOverallStats(ctx, stats)
	})
}
