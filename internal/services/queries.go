package services

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

// readNow is the clock used by read-only queries. It never moves lastNow
// but still honors the monotonic floor set by writers.
func (s *Service) readNow() int64 {
	now := time.Now().Unix()
	if now < s.lastNow {
		now = s.lastNow
	}
	return now
}

func (s *Service) GetPool(_ context.Context, poolID uint64) (*ledger.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.GetPool(poolID)
}

func (s *Service) ListPools(_ context.Context) []*ledger.Pool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ListPools()
}

func (s *Service) GetPosition(_ context.Context, staker string, poolID uint64) (*ledger.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.GetPosition(staker, poolID)
}

func (s *Service) GetPendingRewards(_ context.Context, staker string, poolID uint64) (sdkmath.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.PendingRewards(staker, poolID, s.readNow())
}

func (s *Service) GetCooldownState(_ context.Context, staker string, poolID uint64) (ledger.CooldownState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.GetCooldownState(staker, poolID, s.readNow())
}

func (s *Service) GetTierStatus(_ context.Context, staker string, poolID uint64) (*ledger.TierStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.GetTierStatus(staker, poolID, s.readNow())
}

func (s *Service) GetUserStats(_ context.Context, staker string) (*ledger.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.GetUserStats(staker)
}

func (s *Service) GetProtocolStats(_ context.Context) ledger.ProtocolStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Stats()
}

func (s *Service) GetVotingPower(_ context.Context, staker string) sdkmath.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.VotingPower(staker)
}
