package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// Basis point arithmetic. All divisions truncate toward zero so rounding
// favors the staker by at most one minor unit, never the protocol.
const (
	bpsDenominator = 10_000
	secondsPerDay  = 86_400
)

// PoolStatus is the lifecycle status of a pool.
type PoolStatus string

const (
	PoolStatusActive PoolStatus = "ACTIVE"
	PoolStatusPaused PoolStatus = "PAUSED"
	PoolStatusEnded  PoolStatus = "ENDED"
)

func (s PoolStatus) String() string {
	return string(s)
}

// Pool is a named collection of staked value sharing one reward rate,
// lock period and cooldown period.
type Pool struct {
	ID             uint64
	Name           string
	DailyRateBps   uint64
	MinStake       sdkmath.Int
	LockPeriod     int64 // seconds
	CooldownPeriod int64 // seconds
	TotalStaked    sdkmath.Int
	RewardsPaid    sdkmath.Int
	StakerCount    uint64
	CreatedAt      int64
	EndsAt         int64 // zero when open ended
	Status         PoolStatus
	RewardBalance  sdkmath.Int
}

// StatusAt reports the effective status at the given time: a pool whose
// end time has passed is Ended regardless of the stored status.
func (p *Pool) StatusAt(now int64) PoolStatus {
	if p.EndsAt != 0 && now >= p.EndsAt {
		return PoolStatusEnded
	}
	return p.Status
}

// PositionKey identifies one staker's position within one pool.
type PositionKey struct {
	PoolID uint64
	Staker string
}

// Position is one staker's balance and timers within one pool.
// Amount is strictly positive while the record exists; a position whose
// balance reaches zero is deleted.
type Position struct {
	PoolID        uint64
	Staker        string
	Amount        sdkmath.Int
	StakedAt      int64 // continuous-staking clock, reset on every top-up
	LastClaimAt   int64
	RewardsEarned sdkmath.Int // lifetime net rewards
	UnlockTime    int64
	CooldownStart int64 // zero when no cooldown is running
}

// UserStats is the aggregate-only record per staker, the running sum of
// per-event deltas across all pools.
type UserStats struct {
	Staker       string
	TotalStaked  sdkmath.Int
	TotalRewards sdkmath.Int
	TotalFees    sdkmath.Int
	PoolsJoined  uint64
	FirstStakeAt int64
	LastActivity int64
}

// ProtocolStats are the protocol-wide aggregates.
type ProtocolStats struct {
	TotalStaked        sdkmath.Int
	TotalRewardsPaid   sdkmath.Int
	TotalFeesCollected sdkmath.Int
	PoolCount          uint64
	TierUpgrades       uint64
}

// Params configure a new ledger.
type Params struct {
	// Operator is the identity allowed to perform admin operations.
	Operator string
	// LoyaltyEnabled gates the tier-bonus claim path.
	LoyaltyEnabled bool
	// Benefits overrides the default tier benefit table when non-nil.
	Benefits map[Tier]Benefit
}

// Ledger is the single authoritative state of the staking system. It is
// deliberately free of locking and I/O: the surrounding environment applies
// operations one at a time against this snapshot and supplies a
// monotonically non-decreasing clock value to every call. Each operation
// validates all preconditions before mutating anything, so a failed call
// leaves the state untouched.
type Ledger struct {
	operator       string
	loyaltyEnabled bool

	nextPoolID uint64
	pools      map[uint64]*Pool
	positions  map[PositionKey]*Position
	userStats  map[string]*UserStats
	tiers      map[PositionKey]*TierRecord
	benefits   map[Tier]Benefit

	stats ProtocolStats
}

// New returns an empty ledger governed by the given parameters.
func New(params Params) *Ledger {
	benefits := params.Benefits
	if benefits == nil {
		benefits = DefaultBenefits()
	}
	return &Ledger{
		operator:       params.Operator,
		loyaltyEnabled: params.LoyaltyEnabled,
		nextPoolID:     1,
		pools:          make(map[uint64]*Pool),
		positions:      make(map[PositionKey]*Position),
		userStats:      make(map[string]*UserStats),
		tiers:          make(map[PositionKey]*TierRecord),
		benefits:       benefits,
		stats: ProtocolStats{
			TotalStaked:        sdkmath.ZeroInt(),
			TotalRewardsPaid:   sdkmath.ZeroInt(),
			TotalFeesCollected: sdkmath.ZeroInt(),
		},
	}
}

func (l *Ledger) requireOperator(caller string) error {
	if caller != l.operator {
		return &NotAuthorizedError{Caller: caller}
	}
	return nil
}

func (l *Ledger) pool(poolID uint64) (*Pool, error) {
	pool, ok := l.pools[poolID]
	if !ok {
		return nil, &PoolNotFoundError{PoolID: poolID}
	}
	return pool, nil
}

func (l *Ledger) position(poolID uint64, staker string) (*Position, error) {
	pos, ok := l.positions[PositionKey{PoolID: poolID, Staker: staker}]
	if !ok {
		return nil, &PositionNotFoundError{PoolID: poolID, Staker: staker}
	}
	return pos, nil
}

// user returns the stats record for a staker, creating it on first use.
func (l *Ledger) user(staker string, now int64) *UserStats {
	stats, ok := l.userStats[staker]
	if !ok {
		stats = &UserStats{
			Staker:       staker,
			TotalStaked:  sdkmath.ZeroInt(),
			TotalRewards: sdkmath.ZeroInt(),
			TotalFees:    sdkmath.ZeroInt(),
			FirstStakeAt: now,
		}
		l.userStats[staker] = stats
	}
	return stats
}

// collectFee routes a fee or penalty to the operator side of the books.
func (l *Ledger) collectFee(staker string, fee sdkmath.Int, now int64) {
	l.stats.TotalFeesCollected = l.stats.TotalFeesCollected.Add(fee)
	user := l.user(staker, now)
	user.TotalFees = user.TotalFees.Add(fee)
}
