package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// pendingRewards computes the simple-interest yield accrued since the last
// claim: floor(amount * dailyRateBps * elapsed / (10000 * 86400)).
func pendingRewards(pos *Position, pool *Pool, now int64) sdkmath.Int {
	elapsed := now - pos.LastClaimAt
	if elapsed <= 0 {
		return sdkmath.ZeroInt()
	}
	return pos.Amount.
		MulRaw(int64(pool.DailyRateBps)).
		MulRaw(elapsed).
		QuoRaw(bpsDenominator * secondsPerDay)
}

// PendingRewards reports the yield claimable right now. Pure query.
func (l *Ledger) PendingRewards(staker string, poolID uint64, now int64) (sdkmath.Int, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return pendingRewards(pos, pool, now), nil
}

// ClaimResult reports a reward payout.
type ClaimResult struct {
	GrossRewards sdkmath.Int
	Fee          sdkmath.Int
	NetRewards   sdkmath.Int
}

// settleRewards debits the pool reward balance by the gross amount and
// books the net payout and fee. Callers have already validated the gross
// amount against the reward balance.
func (l *Ledger) settleRewards(pos *Position, pool *Pool, gross, fee, net sdkmath.Int, now int64) {
	pool.RewardBalance = pool.RewardBalance.Sub(gross)
	pool.RewardsPaid = pool.RewardsPaid.Add(net)
	l.stats.TotalRewardsPaid = l.stats.TotalRewardsPaid.Add(net)

	pos.LastClaimAt = now
	pos.RewardsEarned = pos.RewardsEarned.Add(net)

	user := l.user(pos.Staker, now)
	user.TotalRewards = user.TotalRewards.Add(net)
	user.LastActivity = now

	l.collectFee(pos.Staker, fee, now)
}

// Claim pays out the pending rewards minus the protocol fee. Fails with
// NoRewards when nothing accrued since the last claim or when the pool
// reward balance cannot cover the gross payout. Claiming is permitted on a
// paused pool.
func (l *Ledger) Claim(staker string, poolID uint64, now int64) (*ClaimResult, []event.Event, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, nil, err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, nil, err
	}

	gross := pendingRewards(pos, pool, now)
	if !gross.IsPositive() {
		return nil, nil, &NoRewardsError{Message: "no rewards accrued since last claim"}
	}
	if gross.GT(pool.RewardBalance) {
		return nil, nil, &NoRewardsError{Message: "pool reward balance cannot cover payout"}
	}

	fee := RewardFee(gross)
	net := gross.Sub(fee)
	l.settleRewards(pos, pool, gross, fee, net, now)

	events := []event.Event{
		event.RewardsClaimed{
			PoolID:       poolID,
			Staker:       staker,
			GrossRewards: gross,
			Fee:          fee,
			NetRewards:   net,
			Timestamp:    now,
		},
		event.FeeCollected{
			PoolID:    poolID,
			FeeType:   event.FeeTypeReward,
			Amount:    fee,
			Staker:    staker,
			Timestamp: now,
		},
	}
	return &ClaimResult{GrossRewards: gross, Fee: fee, NetRewards: net}, events, nil
}

// BonusClaimResult reports a tier-bonus payout.
type BonusClaimResult struct {
	GrossRewards sdkmath.Int
	TierBonus    sdkmath.Int
	Fee          sdkmath.Int
	FeeDiscount  sdkmath.Int
	NetRewards   sdkmath.Int
}

// ClaimWithTierBonus pays out pending rewards plus the loyalty bonus of the
// live duration-based tier, with the tier fee discount applied. Requires the
// loyalty program to be enabled. The effective tier is recomputed from the
// continuous-staking clock, so a recent top-up lowers it regardless of the
// ratcheted persisted record.
func (l *Ledger) ClaimWithTierBonus(staker string, poolID uint64, now int64) (*BonusClaimResult, []event.Event, error) {
	if !l.loyaltyEnabled {
		return nil, nil, &LoyaltyDisabledError{}
	}
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, nil, err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, nil, err
	}

	base := pendingRewards(pos, pool, now)
	if !base.IsPositive() {
		return nil, nil, &NoRewardsError{Message: "no rewards accrued since last claim"}
	}

	tier := l.liveTier(pos, now)
	benefit := l.Benefit(tier)
	bonus := CalculateTierBonus(base, benefit.RewardBonusBps)
	gross := base.Add(bonus)
	if gross.GT(pool.RewardBalance) {
		return nil, nil, &NoRewardsError{Message: "pool reward balance cannot cover payout"}
	}

	baseFee := RewardFee(gross)
	fee := TierDiscountedFee(baseFee, benefit.FeeDiscountBps)
	discount := baseFee.Sub(fee)
	net := gross.Sub(fee)

	l.settleRewards(pos, pool, gross, fee, net, now)

	rec, _ := l.tierRecord(pos, now)
	rec.BonusEarned = rec.BonusEarned.Add(bonus)
	rec.FeeDiscountUsed = rec.FeeDiscountUsed.Add(discount)

	events := []event.Event{
		event.RewardsClaimed{
			PoolID:       poolID,
			Staker:       staker,
			GrossRewards: gross,
			Fee:          fee,
			NetRewards:   net,
			Timestamp:    now,
		},
		event.FeeCollected{
			PoolID:    poolID,
			FeeType:   event.FeeTypeReward,
			Amount:    fee,
			Staker:    staker,
			Timestamp: now,
		},
	}
	result := &BonusClaimResult{
		GrossRewards: gross,
		TierBonus:    bonus,
		Fee:          fee,
		FeeDiscount:  discount,
		NetRewards:   net,
	}
	return result, events, nil
}

// Compound claims pending rewards and restakes the net amount into the
// position instead of paying it out; only the fee leaves custody. Unlike
// Claim, compounding requires the pool to be active.
func (l *Ledger) Compound(staker string, poolID uint64, now int64) (*ClaimResult, []event.Event, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, nil, err
	}
	if status := pool.StatusAt(now); status != PoolStatusActive {
		return nil, nil, &PoolInactiveError{PoolID: poolID, Status: status}
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, nil, err
	}

	gross := pendingRewards(pos, pool, now)
	if !gross.IsPositive() {
		return nil, nil, &NoRewardsError{Message: "no rewards accrued since last claim"}
	}
	if gross.GT(pool.RewardBalance) {
		return nil, nil, &NoRewardsError{Message: "pool reward balance cannot cover payout"}
	}

	fee := RewardFee(gross)
	net := gross.Sub(fee)
	l.settleRewards(pos, pool, gross, fee, net, now)

	// the net payout goes straight back into the position
	pos.Amount = pos.Amount.Add(net)
	pool.TotalStaked = pool.TotalStaked.Add(net)
	l.stats.TotalStaked = l.stats.TotalStaked.Add(net)

	user := l.user(staker, now)
	user.TotalStaked = user.TotalStaked.Add(net)

	events := []event.Event{
		event.RewardsCompounded{
			PoolID:            poolID,
			Staker:            staker,
			RewardsCompounded: net,
			Fee:               fee,
			NewStakeAmount:    pos.Amount,
			Timestamp:         now,
		},
		event.FeeCollected{
			PoolID:    poolID,
			FeeType:   event.FeeTypeReward,
			Amount:    fee,
			Staker:    staker,
			Timestamp: now,
		},
	}
	return &ClaimResult{GrossRewards: gross, Fee: fee, NetRewards: net}, events, nil
}
