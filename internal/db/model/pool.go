package model

const PoolCollection = "pools"

// PoolDocument is the persisted read model of a pool. Amounts are stored as
// decimal strings since they can exceed int64.
type PoolDocument struct {
	ID             uint64 `bson:"_id"`
	Name           string `bson:"name"`
	DailyRateBps   uint64 `bson:"daily_rate_bps"`
	MinStake       string `bson:"min_stake"`
	LockPeriod     int64  `bson:"lock_period"`
	CooldownPeriod int64  `bson:"cooldown_period"`
	TotalStaked    string `bson:"total_staked"`
	RewardsPaid    string `bson:"rewards_paid"`
	StakerCount    uint64 `bson:"staker_count"`
	CreatedAt      int64  `bson:"created_at"`
	EndsAt         int64  `bson:"ends_at"`
	Status         string `bson:"status"`
	RewardBalance  string `bson:"reward_balance"`
}
