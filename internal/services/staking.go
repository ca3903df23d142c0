package services

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

// Deposit stakes funds into a pool, creating the position or topping it up.
func (s *Service) Deposit(ctx context.Context, staker string, poolID uint64, amount sdkmath.Int) (pos *ledger.Position, err error) {
	start := time.Now()
	defer func() { recordOp("deposit", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	pos, events, err := s.ledger.Deposit(staker, poolID, amount, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("staker", staker).
		Uint64("pool_id", poolID).
		Str("amount", amount.String()).
		Msg("stake deposited")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.syncPosition(ctx, poolID, staker)
	s.syncUser(ctx, staker)
	s.emit(ctx, events, now)
	return pos, nil
}

// Withdraw removes stake from a position. Before the lock expires this is an
// early exit with a penalty; afterwards a completed cooldown is required.
func (s *Service) Withdraw(ctx context.Context, staker string, poolID uint64, amount sdkmath.Int) (result *ledger.WithdrawResult, err error) {
	start := time.Now()
	defer func() { recordOp("withdraw", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result, events, err := s.ledger.Withdraw(staker, poolID, amount, now)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("staker", staker).
		Uint64("pool_id", poolID).
		Str("amount", result.Amount.String()).
		Str("penalty", result.Penalty.String()).
		Bool("early", result.Early).
		Msg("stake withdrawn")

	pool, _ := s.ledger.GetPool(poolID)
	s.syncPool(ctx, pool)
	s.syncPosition(ctx, poolID, staker)
	s.syncUser(ctx, staker)
	s.emit(ctx, events, now)
	return result, nil
}

// StartCooldown begins the withdrawal cooldown on an unlocked position.
func (s *Service) StartCooldown(ctx context.Context, staker string, poolID uint64) (err error) {
	start := time.Now()
	defer func() { recordOp("start_cooldown", start, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	events, err := s.ledger.StartCooldown(staker, poolID, now)
	if err != nil {
		return err
	}

	s.syncPosition(ctx, poolID, staker)
	s.emit(ctx, events, now)
	return nil
}
