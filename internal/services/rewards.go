package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

// Claim pays out the caller's pending rewards, net of the reward fee.
func (s *Service) Claim(ctx context.Context, staker string, poolID uint64) (result *ledger.ClaimResult, err error) {
	start := time.Now()
	defer func() { recordOp("claim", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result, events, err := s.ledger.Claim(staker, poolID, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("staker", staker).
		Uint64("pool_id", poolID).
		Str("net_rewards", result.NetRewards.String()).
		Msg("rewards claimed")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.syncPosition(ctx, poolID, staker)
	s.syncUser(ctx, staker)
	s.emit(ctx, events, now)
	return result, nil
}

// ClaimWithTierBonus pays out pending rewards with the loyalty tier bonus
// and fee discount applied.
func (s *Service) ClaimWithTierBonus(ctx context.Context, staker string, poolID uint64) (result *ledger.BonusClaimResult, err error) {
	start := time.Now()
	defer func() { recordOp("claim_with_tier_bonus", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result, events, err := s.ledger.ClaimWithTierBonus(staker, poolID, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("staker", staker).
		Uint64("pool_id", poolID).
		Str("tier_bonus", result.TierBonus.String()).
		Str("net_rewards", result.NetRewards.String()).
		Msg("rewards claimed with tier bonus")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.syncPosition(ctx, poolID, staker)
	s.syncUser(ctx, staker)
	s.emit(ctx, events, now)
	return result, nil
}

// Compound claims pending rewards and restakes the net amount into the
// position without restarting the lock.
func (s *Service) Compound(ctx context.Context, staker string, poolID uint64) (result *ledger.ClaimResult, err error) {
	start := time.Now()
	defer func() { recordOp("compound", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result, events, err := s.ledger.Compound(staker, poolID, now)
	if err != nil {
		return nil, err
	}

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.syncPosition(ctx, poolID, staker)
	s.syncUser(ctx, staker)
	s.emit(ctx, events, now)
	return result, nil
}

// CheckAndUpgradeTier recomputes the staker's loyalty tier and ratchets the
// persisted record upward when the live tier passed a threshold.
func (s *Service) CheckAndUpgradeTier(ctx context.Context, staker string, poolID uint64) (record *ledger.TierRecord, err error) {
	start := time.Now()
	defer func() { recordOp("check_and_upgrade_tier", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record, events, err := s.ledger.CheckAndUpgradeTier(staker, poolID, now)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, events, now)
	return record, nil
}
