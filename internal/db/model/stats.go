package model

const (
	UserStatsCollection    = "user_stats"
	OverallStatsCollection = "overall_stats"
)

// UserStatsDocument holds a staker's cross-pool aggregates.
type UserStatsDocument struct {
	ID           string `bson:"_id"` // staker identity
	TotalStaked  string `bson:"total_staked"`
	TotalRewards string `bson:"total_rewards"`
	TotalFees    string `bson:"total_fees"`
	PoolsJoined  uint64 `bson:"pools_joined"`
	FirstStakeAt int64  `bson:"first_stake_at"`
	LastActivity int64  `bson:"last_activity"`
}

// OverallStatsDocument holds the protocol-wide aggregates.
type OverallStatsDocument struct {
	ID                 string `bson:"_id"` // always "overall_stats"
	TotalStaked        string `bson:"total_staked"`
	TotalRewardsPaid   string `bson:"total_rewards_paid"`
	TotalFeesCollected string `bson:"total_fees_collected"`
	PoolCount          uint64 `bson:"pool_count"`
	TierUpgrades       uint64 `bson:"tier_upgrades"`
	LastUpdated        int64  `bson:"last_updated"`
}

const OverallStatsID = "overall_stats"
