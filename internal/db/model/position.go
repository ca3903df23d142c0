package model

import (
	"fmt"
)

const PositionCollection = "positions"

// PositionDocument is the persisted read model of one stake position.
type PositionDocument struct {
	ID            string `bson:"_id"` // "<pool-id>:<staker>"
	PoolID        uint64 `bson:"pool_id"`
	Staker        string `bson:"staker"`
	Amount        string `bson:"amount"`
	StakedAt      int64  `bson:"staked_at"`
	LastClaimAt   int64  `bson:"last_claim_at"`
	RewardsEarned string `bson:"rewards_earned"`
	UnlockTime    int64  `bson:"unlock_time"`
	CooldownStart int64  `bson:"cooldown_start"`
}

// PositionID builds the composite primary key of a position document.
func PositionID(poolID uint64, staker string) string {
	return fmt.Sprintf("%d:%s", poolID, staker)
}
