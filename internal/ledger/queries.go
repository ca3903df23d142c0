package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// Read queries. All are pure and side-effect free; callers must not mutate
// the returned records.

// GetPool returns a pool by id.
func (l *Ledger) GetPool(poolID uint64) (*Pool, error) {
	return l.pool(poolID)
}

// ListPools returns every pool ordered by id.
func (l *Ledger) ListPools() []*Pool {
	pools := make([]*Pool, 0, len(l.pools))
	for id := uint64(1); id < l.nextPoolID; id++ {
		if pool, ok := l.pools[id]; ok {
			pools = append(pools, pool)
		}
	}
	return pools
}

// GetPosition returns the stake position for (pool, staker).
func (l *Ledger) GetPosition(staker string, poolID uint64) (*Position, error) {
	return l.position(poolID, staker)
}

// GetCooldownState derives the unlock/cooldown state of a position.
func (l *Ledger) GetCooldownState(staker string, poolID uint64, now int64) (CooldownState, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return "", err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return "", err
	}
	return CooldownStateOf(pos, pool, now), nil
}

// GetUserStats returns the cross-pool aggregates for a staker.
func (l *Ledger) GetUserStats(staker string) (*UserStats, error) {
	stats, ok := l.userStats[staker]
	if !ok {
		return nil, &PositionNotFoundError{Staker: staker}
	}
	return stats, nil
}

// Stats returns the protocol-wide aggregates.
func (l *Ledger) Stats() ProtocolStats {
	return l.stats
}

// VotingPower is the governance view of a staker: total staked amount
// across all pools. The governance subsystem consumes only this number.
func (l *Ledger) VotingPower(staker string) sdkmath.Int {
	stats, ok := l.userStats[staker]
	if !ok {
		return sdkmath.ZeroInt()
	}
	return stats.TotalStaked
}

// PoolPositions returns the live positions of one pool. Used by read
// endpoints and by conservation checks in tests.
func (l *Ledger) PoolPositions(poolID uint64) []*Position {
	var positions []*Position
	for key, pos := range l.positions {
		if key.PoolID == poolID {
			positions = append(positions, pos)
		}
	}
	return positions
}
