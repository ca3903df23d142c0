package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	sdkmath "cosmossdk.io/math"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stakeforge-io/staking-ledger/internal/config"
	"github.com/stakeforge-io/staking-ledger/internal/db/model"
	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

const testOperator = "SP000000000000000000002Q6VF78"

// fakeDb is an in-memory stand-in for the mongo-backed store.
type fakeDb struct {
	mu sync.Mutex

	failInsert bool

	events    []*model.EventDocument
	published map[primitive.ObjectID]bool

	pools        map[uint64]*model.PoolDocument
	positions    map[string]*model.PositionDocument
	userStats    map[string]*model.UserStatsDocument
	overallStats *model.OverallStatsDocument
}

func newFakeDb() *fakeDb {
	return &fakeDb{
		published: make(map[primitive.ObjectID]bool),
		pools:     make(map[uint64]*model.PoolDocument),
		positions: make(map[string]*model.PositionDocument),
		userStats: make(map[string]*model.UserStatsDocument),
	}
}

func (f *fakeDb) Ping(_ context.Context) error     { return nil }
func (f *fakeDb) Shutdown(_ context.Context) error { return nil }

func (f *fakeDb) InsertEvents(_ context.Context, events []*model.EventDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return fmt.Errorf("insert failed")
	}
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeDb) FindUnpublishedEvents(_ context.Context, limit int64) ([]model.EventDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.EventDocument
	for _, doc := range f.events {
		if f.published[doc.ID] {
			continue
		}
		out = append(out, *doc)
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeDb) MarkEventPublished(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published[id] = true
	return nil
}

func (f *fakeDb) UpsertPool(_ context.Context, pool *model.PoolDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pools[pool.ID] = pool
	return nil
}

func (f *fakeDb) GetPool(_ context.Context, poolID uint64) (*model.PoolDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pools[poolID], nil
}

func (f *fakeDb) UpsertPosition(_ context.Context, pos *model.PositionDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.positions[pos.ID] = pos
	return nil
}

func (f *fakeDb) DeletePosition(_ context.Context, poolID uint64, staker string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.positions, model.PositionID(poolID, staker))
	return nil
}

func (f *fakeDb) GetPosition(_ context.Context, poolID uint64, staker string) (*model.PositionDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.positions[model.PositionID(poolID, staker)], nil
}

func (f *fakeDb) UpsertUserStats(_ context.Context, stats *model.UserStatsDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userStats[stats.ID] = stats
	return nil
}

func (f *fakeDb) UpsertOverallStats(_ context.Context, stats *model.OverallStatsDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overallStats = stats
	return nil
}

func (f *fakeDb) unpublishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, doc := range f.events {
		if !f.published[doc.ID] {
			count++
		}
	}
	return count
}

// fakePublisher records published events and optionally fails.
type fakePublisher struct {
	mu sync.Mutex

	failing bool

	published []publishedEvent
}

type publishedEvent struct {
	eventType string
	payload   string
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return fmt.Errorf("publish failed")
	}
	f.published = append(f.published, publishedEvent{eventType: eventType, payload: string(payload)})
	return nil
}

func (f *fakePublisher) Shutdown() {}

func (f *fakePublisher) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.published))
	for _, ev := range f.published {
		types = append(types, ev.eventType)
	}
	return types
}

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			Operator:       testOperator,
			LoyaltyEnabled: true,
		},
		Poller: config.PollerConfig{
			StatsFlushInterval:    time.Second,
			OutboxPollingInterval: time.Second,
			OutboxBatchLimit:      100,
		},
	}
}

func newTestService() (*Service, *fakeDb, *fakePublisher) {
	database := newFakeDb()
	publisher := &fakePublisher{}
	svc := NewService(testConfig(), database, publisher)
	return svc, database, publisher
}

// createTestPool registers and funds a pool through the service.
func createTestPool(ctx context.Context, svc *Service) (*ledger.Pool, error) {
	pool, err := svc.CreatePool(ctx, testOperator, ledger.CreatePoolParams{
		Name:           "core-pool",
		DailyRateBps:   500,
		MinStake:       sdkmath.NewInt(1_000_000),
		LockPeriod:     7 * 24 * 3600,
		CooldownPeriod: 24 * 3600,
	})
	if err != nil {
		return nil, err
	}
	if err := svc.FundRewardPool(ctx, testOperator, pool.ID, sdkmath.NewInt(1_000_000_000)); err != nil {
		return nil, err
	}
	return pool, nil
}
