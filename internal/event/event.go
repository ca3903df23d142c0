package event

import (
	sdkmath "cosmossdk.io/math"
)

// Type identifies an event emitted by the ledger core. The names and the
// JSON field names below are the wire contract consumed by the external
// indexer and must not change.
type Type string

func (t Type) String() string {
	return string(t)
}

const (
	TypePoolCreated       Type = "pool-created"
	TypePoolFunded        Type = "pool-funded"
	TypePoolPaused        Type = "pool-paused"
	TypePoolResumed       Type = "pool-resumed"
	TypeStakeDeposited    Type = "stake-deposited"
	TypeStakeWithdrawn    Type = "stake-withdrawn"
	TypeRewardsClaimed    Type = "rewards-claimed"
	TypeRewardsCompounded Type = "rewards-compounded"
	TypeFeeCollected      Type = "fee-collected"
	TypeCooldownStarted   Type = "cooldown-started"
	TypeTierInitialized   Type = "tier-initialized"
	TypeTierUpgraded      Type = "tier-upgraded"
)

// Fee type values carried by FeeCollected.
const (
	FeeTypeReward       = "reward-fee"
	FeeTypeEarlyPenalty = "early-withdrawal-penalty"
)

// Event is implemented by every emitted event payload.
type Event interface {
	EventType() Type
}

type PoolCreated struct {
	PoolID     uint64      `json:"pool-id"`
	Name       string      `json:"name"`
	RewardRate uint64      `json:"reward-rate"`
	MinStake   sdkmath.Int `json:"min-stake"`
	LockPeriod int64       `json:"lock-period"`
	Timestamp  int64       `json:"timestamp"`
}

func (PoolCreated) EventType() Type { return TypePoolCreated }

type PoolFunded struct {
	PoolID     uint64      `json:"pool-id"`
	Amount     sdkmath.Int `json:"amount"`
	NewBalance sdkmath.Int `json:"new-balance"`
	Timestamp  int64       `json:"timestamp"`
}

func (PoolFunded) EventType() Type { return TypePoolFunded }

type PoolPaused struct {
	PoolID    uint64 `json:"pool-id"`
	Timestamp int64  `json:"timestamp"`
}

func (PoolPaused) EventType() Type { return TypePoolPaused }

type PoolResumed struct {
	PoolID    uint64 `json:"pool-id"`
	Timestamp int64  `json:"timestamp"`
}

func (PoolResumed) EventType() Type { return TypePoolResumed }

type StakeDeposited struct {
	PoolID      uint64      `json:"pool-id"`
	Staker      string      `json:"staker"`
	Amount      sdkmath.Int `json:"amount"`
	TotalStake  sdkmath.Int `json:"total-stake"`
	UnlockTime  int64       `json:"unlock-time"`
	IsNewStaker bool        `json:"is-new-staker"`
	Timestamp   int64       `json:"timestamp"`
}

func (StakeDeposited) EventType() Type { return TypeStakeDeposited }

type StakeWithdrawn struct {
	PoolID            uint64      `json:"pool-id"`
	Staker            string      `json:"staker"`
	Amount            sdkmath.Int `json:"amount"`
	Penalty           sdkmath.Int `json:"penalty"`
	NetAmount         sdkmath.Int `json:"net-amount"`
	IsEarlyWithdrawal bool        `json:"is-early-withdrawal"`
	RemainingStake    sdkmath.Int `json:"remaining-stake"`
	Timestamp         int64       `json:"timestamp"`
}

func (StakeWithdrawn) EventType() Type { return TypeStakeWithdrawn }

type RewardsClaimed struct {
	PoolID       uint64      `json:"pool-id"`
	Staker       string      `json:"staker"`
	GrossRewards sdkmath.Int `json:"gross-rewards"`
	Fee          sdkmath.Int `json:"fee"`
	NetRewards   sdkmath.Int `json:"net-rewards"`
	Timestamp    int64       `json:"timestamp"`
}

func (RewardsClaimed) EventType() Type { return TypeRewardsClaimed }

type RewardsCompounded struct {
	PoolID            uint64      `json:"pool-id"`
	Staker            string      `json:"staker"`
	RewardsCompounded sdkmath.Int `json:"rewards-compounded"`
	Fee               sdkmath.Int `json:"fee"`
	NewStakeAmount    sdkmath.Int `json:"new-stake-amount"`
	Timestamp         int64       `json:"timestamp"`
}

func (RewardsCompounded) EventType() Type { return TypeRewardsCompounded }

type FeeCollected struct {
	PoolID    uint64      `json:"pool-id"`
	FeeType   string      `json:"fee-type"`
	Amount    sdkmath.Int `json:"amount"`
	Staker    string      `json:"staker"`
	Timestamp int64       `json:"timestamp"`
}

func (FeeCollected) EventType() Type { return TypeFeeCollected }

type CooldownStarted struct {
	PoolID       uint64 `json:"pool-id"`
	Staker       string `json:"staker"`
	CooldownEnds int64  `json:"cooldown-ends"`
	Timestamp    int64  `json:"timestamp"`
}

func (CooldownStarted) EventType() Type { return TypeCooldownStarted }

type TierInitialized struct {
	PoolID    uint64 `json:"pool-id"`
	Staker    string `json:"staker"`
	Tier      string `json:"tier"`
	Timestamp int64  `json:"timestamp"`
}

func (TierInitialized) EventType() Type { return TypeTierInitialized }

type TierUpgraded struct {
	PoolID    uint64 `json:"pool-id"`
	Staker    string `json:"staker"`
	OldTier   string `json:"old-tier"`
	NewTier   string `json:"new-tier"`
	Timestamp int64  `json:"timestamp"`
}

func (TierUpgraded) EventType() Type { return TypeTierUpgraded }
