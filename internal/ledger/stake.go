package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// Deposit stakes the given amount into a pool. The pool must be active and
// not past its end time, and the amount must meet the pool minimum. A
// top-up on an existing position restarts both the lock period and the
// continuous-staking clock. Returns the resulting position.
func (l *Ledger) Deposit(staker string, poolID uint64, amount sdkmath.Int, now int64) (*Position, []event.Event, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, nil, err
	}
	if status := pool.StatusAt(now); status != PoolStatusActive {
		return nil, nil, &PoolInactiveError{PoolID: poolID, Status: status}
	}
	if amount.IsNil() || !amount.IsPositive() {
		return nil, nil, &InvalidAmountError{Message: "deposit amount must be positive"}
	}
	if amount.LT(pool.MinStake) {
		return nil, nil, &InvalidAmountError{
			Message: "deposit of " + amount.String() + " is below pool minimum " + pool.MinStake.String(),
		}
	}

	key := PositionKey{PoolID: poolID, Staker: staker}
	pos, exists := l.positions[key]
	if exists {
		pos.Amount = pos.Amount.Add(amount)
		// the lock and the loyalty duration both restart on a top-up, and
		// any cooldown is cancelled: the relocked position must pass
		// through Unlocked and a fresh cooldown before withdrawal
		pos.StakedAt = now
		pos.UnlockTime = now + pool.LockPeriod
		pos.CooldownStart = 0
	} else {
		pos = &Position{
			PoolID:        poolID,
			Staker:        staker,
			Amount:        amount,
			StakedAt:      now,
			LastClaimAt:   now,
			RewardsEarned: sdkmath.ZeroInt(),
			UnlockTime:    now + pool.LockPeriod,
		}
		l.positions[key] = pos
		pool.StakerCount++
	}

	pool.TotalStaked = pool.TotalStaked.Add(amount)
	l.stats.TotalStaked = l.stats.TotalStaked.Add(amount)

	user := l.user(staker, now)
	user.TotalStaked = user.TotalStaked.Add(amount)
	user.LastActivity = now
	if !exists {
		user.PoolsJoined++
	}

	events := []event.Event{event.StakeDeposited{
		PoolID:      poolID,
		Staker:      staker,
		Amount:      amount,
		TotalStake:  pos.Amount,
		UnlockTime:  pos.UnlockTime,
		IsNewStaker: !exists,
		Timestamp:   now,
	}}
	return pos, events, nil
}

// WithdrawResult reports the outcome of a withdrawal.
type WithdrawResult struct {
	Amount    sdkmath.Int // gross amount removed from the position
	Penalty   sdkmath.Int // zero unless the exit was early
	NetAmount sdkmath.Int // paid out to the staker
	Early     bool
	Remaining sdkmath.Int
}

// Withdraw removes the requested amount from the caller's position. Before
// the unlock time the withdrawal is an early exit: it bypasses the cooldown
// machine and carries the early-withdrawal penalty. After unlock a completed
// cooldown is required. A partial withdrawal keeps the position and cancels
// any finished cooldown; a full withdrawal deletes the position.
func (l *Ledger) Withdraw(staker string, poolID uint64, amount sdkmath.Int, now int64) (*WithdrawResult, []event.Event, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, nil, err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, nil, err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return nil, nil, &InvalidAmountError{Message: "withdrawal amount must be positive"}
	}
	if amount.GT(pos.Amount) {
		return nil, nil, &InsufficientStakeError{
			Requested: amount.String(),
			Available: pos.Amount.String(),
		}
	}

	early := now < pos.UnlockTime
	if !early {
		// ordinary withdrawal: the cooldown must have completed
		if pos.CooldownStart == 0 || now < pos.CooldownStart+pool.CooldownPeriod {
			return nil, nil, &CooldownActiveError{
				Message: "withdrawal requires a completed cooldown",
			}
		}
	}

	penalty := sdkmath.ZeroInt()
	if early {
		penalty = EarlyWithdrawalPenalty(amount)
	}
	net := amount.Sub(penalty)

	pos.Amount = pos.Amount.Sub(amount)
	full := pos.Amount.IsZero()
	if full {
		delete(l.positions, PositionKey{PoolID: poolID, Staker: staker})
		pool.StakerCount--
	} else {
		// a partial withdrawal cancels the cooldown for the remainder
		pos.CooldownStart = 0
	}

	pool.TotalStaked = pool.TotalStaked.Sub(amount)
	l.stats.TotalStaked = l.stats.TotalStaked.Sub(amount)

	user := l.user(staker, now)
	user.TotalStaked = user.TotalStaked.Sub(amount)
	user.LastActivity = now

	remaining := sdkmath.ZeroInt()
	if !full {
		remaining = pos.Amount
	}

	events := []event.Event{event.StakeWithdrawn{
		PoolID:            poolID,
		Staker:            staker,
		Amount:            amount,
		Penalty:           penalty,
		NetAmount:         net,
		IsEarlyWithdrawal: early,
		RemainingStake:    remaining,
		Timestamp:         now,
	}}
	if penalty.IsPositive() {
		l.collectFee(staker, penalty, now)
		events = append(events, event.FeeCollected{
			PoolID:    poolID,
			FeeType:   event.FeeTypeEarlyPenalty,
			Amount:    penalty,
			Staker:    staker,
			Timestamp: now,
		})
	}

	result := &WithdrawResult{
		Amount:    amount,
		Penalty:   penalty,
		NetAmount: net,
		Early:     early,
		Remaining: remaining,
	}
	return result, events, nil
}
