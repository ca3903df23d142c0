package services

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

// CreatePool registers a new pool. Operator only.
func (s *Service) CreatePool(ctx context.Context, caller string, params ledger.CreatePoolParams) (pool *ledger.Pool, err error) {
	start := time.Now()
	defer func() { recordOp("create_pool", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	pool, events, err := s.ledger.CreatePool(caller, params, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Uint64("pool_id", pool.ID).
		Str("name", pool.Name).
		Uint64("daily_rate_bps", pool.DailyRateBps).
		Msg("pool created")

	s.syncPool(ctx, pool)
	s.emit(ctx, events, now)
	return pool, nil
}

// FundRewardPool adds funds to a pool's reward balance. Operator only.
func (s *Service) FundRewardPool(ctx context.Context, caller string, poolID uint64, amount sdkmath.Int) (err error) {
	start := time.Now()
	defer func() { recordOp("fund_reward_pool", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	events, err := s.ledger.FundRewardPool(caller, poolID, amount, now)
	if err != nil {
		return err
	}

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.emit(ctx, events, now)
	return nil
}

// PausePool suspends a pool. Operator only.
func (s *Service) PausePool(ctx context.Context, caller string, poolID uint64) (err error) {
	start := time.Now()
	defer func() { recordOp("pause_pool", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	events, err := s.ledger.PausePool(caller, poolID, now)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Uint64("pool_id", poolID).Msg("pool paused")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.emit(ctx, events, now)
	return nil
}

// ResumePool reactivates a paused pool. Operator only.
func (s *Service) ResumePool(ctx context.Context, caller string, poolID uint64) (err error) {
	start := time.Now()
	defer func() { recordOp("resume_pool", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	events, err := s.ledger.ResumePool(caller, poolID, now)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Uint64("pool_id", poolID).Msg("pool resumed")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.emit(ctx, events, now)
	return nil
}

// SetTierBenefits replaces the loyalty benefit table. Operator only.
func (s *Service) SetTierBenefits(ctx context.Context, caller string, benefits map[ledger.Tier]ledger.Benefit) (err error) {
	start := time.Now()
	defer func() { recordOp("set_tier_benefits", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.SetTierBenefits(caller, benefits)
}
