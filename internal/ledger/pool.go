package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// CreatePoolParams are the operator-supplied parameters for a new pool.
type CreatePoolParams struct {
	Name           string
	DailyRateBps   uint64
	MinStake       sdkmath.Int
	LockPeriod     int64 // seconds
	CooldownPeriod int64 // seconds
	Duration       int64 // seconds; zero for an open-ended pool
}

// CreatePool registers a new pool under the next sequential id. Operator
// only. The daily rate must be positive and at most 10000 bps; periods and
// the minimum stake must not be negative.
func (l *Ledger) CreatePool(caller string, params CreatePoolParams, now int64) (*Pool, []event.Event, error) {
	if err := l.requireOperator(caller); err != nil {
		return nil, nil, err
	}
	if params.DailyRateBps == 0 {
		return nil, nil, &InvalidAmountError{Message: "daily reward rate must be positive"}
	}
	if params.DailyRateBps > bpsDenominator {
		return nil, nil, &InvalidAmountError{Message: "daily reward rate exceeds 10000 bps"}
	}
	if params.MinStake.IsNil() || params.MinStake.IsNegative() {
		return nil, nil, &InvalidAmountError{Message: "minimum stake must not be negative"}
	}
	if params.LockPeriod < 0 || params.CooldownPeriod < 0 || params.Duration < 0 {
		return nil, nil, &InvalidAmountError{Message: "periods must not be negative"}
	}

	pool := &Pool{
		ID:             l.nextPoolID,
		Name:           params.Name,
		DailyRateBps:   params.DailyRateBps,
		MinStake:       params.MinStake,
		LockPeriod:     params.LockPeriod,
		CooldownPeriod: params.CooldownPeriod,
		TotalStaked:    sdkmath.ZeroInt(),
		RewardsPaid:    sdkmath.ZeroInt(),
		CreatedAt:      now,
		Status:         PoolStatusActive,
		RewardBalance:  sdkmath.ZeroInt(),
	}
	if params.Duration > 0 {
		pool.EndsAt = now + params.Duration
	}

	l.nextPoolID++
	l.pools[pool.ID] = pool
	l.stats.PoolCount++

	events := []event.Event{event.PoolCreated{
		PoolID:     pool.ID,
		Name:       pool.Name,
		RewardRate: pool.DailyRateBps,
		MinStake:   pool.MinStake,
		LockPeriod: pool.LockPeriod,
		Timestamp:  now,
	}}
	return pool, events, nil
}

// FundRewardPool moves the given amount from the operator into the pool's
// reward balance. The surrounding execution environment performs the actual
// value transfer atomically with this call.
func (l *Ledger) FundRewardPool(caller string, poolID uint64, amount sdkmath.Int, now int64) ([]event.Event, error) {
	if err := l.requireOperator(caller); err != nil {
		return nil, err
	}
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return nil, &InvalidAmountError{Message: "funding amount must be positive"}
	}

	pool.RewardBalance = pool.RewardBalance.Add(amount)

	events := []event.Event{event.PoolFunded{
		PoolID:     pool.ID,
		Amount:     amount,
		NewBalance: pool.RewardBalance,
		Timestamp:  now,
	}}
	return events, nil
}

// PausePool suspends deposits and compounding on an active pool. Existing
// unlock and cooldown timers keep running.
func (l *Ledger) PausePool(caller string, poolID uint64, now int64) ([]event.Event, error) {
	if err := l.requireOperator(caller); err != nil {
		return nil, err
	}
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, err
	}
	if status := pool.StatusAt(now); status != PoolStatusActive {
		return nil, &PoolInactiveError{PoolID: poolID, Status: status}
	}

	pool.Status = PoolStatusPaused

	return []event.Event{event.PoolPaused{PoolID: pool.ID, Timestamp: now}}, nil
}

// ResumePool reverts a paused pool to active.
func (l *Ledger) ResumePool(caller string, poolID uint64, now int64) ([]event.Event, error) {
	if err := l.requireOperator(caller); err != nil {
		return nil, err
	}
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, err
	}
	if status := pool.StatusAt(now); status != PoolStatusPaused {
		return nil, &PoolInactiveError{PoolID: poolID, Status: status}
	}

	pool.Status = PoolStatusActive

	return []event.Event{event.PoolResumed{PoolID: pool.ID, Timestamp: now}}, nil
}
