package services

import (
	"context"
	"sync"
	"time"

	"github.com/stakeforge-io/staking-ledger/internal/config"
	"github.com/stakeforge-io/staking-ledger/internal/db"
	"github.com/stakeforge-io/staking-ledger/internal/ledger"
	"github.com/stakeforge-io/staking-ledger/internal/queue"
)

// Service is the single writer in front of the ledger core. It serializes
// every operation onto the in-memory state, persists the emitted events to
// the outbox, publishes them to the queue and maintains the read models.
type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	publisher queue.Publisher

	mu     sync.RWMutex
	ledger *ledger.Ledger

	// lastNow enforces the monotonically non-decreasing clock the core
	// expects even if the wall clock steps backward.
	lastNow int64
}

func NewService(cfg *config.Config, dbClient db.DbInterface, publisher queue.Publisher) *Service {
	return &Service{
		cfg:       cfg,
		db:        dbClient,
		publisher: publisher,
		ledger:    ledger.New(ledgerParams(&cfg.Ledger)),
	}
}

// ledgerParams converts the config section into core parameters.
func ledgerParams(cfg *config.LedgerConfig) ledger.Params {
	params := ledger.Params{
		Operator:       cfg.Operator,
		LoyaltyEnabled: cfg.LoyaltyEnabled,
	}
	if len(cfg.TierBenefits) > 0 {
		benefits := make(map[ledger.Tier]ledger.Benefit, len(cfg.TierBenefits))
		for _, row := range cfg.TierBenefits {
			benefits[ledger.Tier(row.Tier)] = ledger.Benefit{
				Name:           row.Name,
				RewardBonusBps: row.RewardBonusBps,
				FeeDiscountBps: row.FeeDiscountBps,
				MinDays:        row.MinDays,
			}
		}
		params.Benefits = benefits
	}
	return params
}

// now returns the operation clock. Callers must hold the write lock.
func (s *Service) now() int64 {
	now := time.Now().Unix()
	if now < s.lastNow {
		now = s.lastNow
	}
	s.lastNow = now
	return now
}

// RunPollers starts the background stats flusher and outbox republisher.
// They run until the context is cancelled.
func (s *Service) RunPollers(ctx context.Context) {
	s.startStatsPoller(ctx)
	s.startOutboxPoller(ctx)
}
