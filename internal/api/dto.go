package api

import (
	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

// Response shapes. Amounts are decimal strings so clients never lose
// precision to float parsing.

type poolResponse struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	DailyRateBps   uint64 `json:"daily_rate_bps"`
	MinStake       string `json:"min_stake"`
	LockPeriod     int64  `json:"lock_period"`
	CooldownPeriod int64  `json:"cooldown_period"`
	TotalStaked    string `json:"total_staked"`
	RewardsPaid    string `json:"rewards_paid"`
	StakerCount    uint64 `json:"staker_count"`
	CreatedAt      int64  `json:"created_at"`
	EndsAt         int64  `json:"ends_at,omitempty"`
	Status         string `json:"status"`
	RewardBalance  string `json:"reward_balance"`
}

func toPoolResponse(p *ledger.Pool) poolResponse {
	return poolResponse{
		ID:             p.ID,
		Name:           p.Name,
		DailyRateBps:   p.DailyRateBps,
		MinStake:       p.MinStake.String(),
		LockPeriod:     p.LockPeriod,
		CooldownPeriod: p.CooldownPeriod,
		TotalStaked:    p.TotalStaked.String(),
		RewardsPaid:    p.RewardsPaid.String(),
		StakerCount:    p.StakerCount,
		CreatedAt:      p.CreatedAt,
		EndsAt:         p.EndsAt,
		Status:         p.Status.String(),
		RewardBalance:  p.RewardBalance.String(),
	}
}

type positionResponse struct {
	PoolID        uint64 `json:"pool_id"`
	Staker        string `json:"staker"`
	Amount        string `json:"amount"`
	StakedAt      int64  `json:"staked_at"`
	LastClaimAt   int64  `json:"last_claim_at"`
	RewardsEarned string `json:"rewards_earned"`
	UnlockTime    int64  `json:"unlock_time"`
	CooldownStart int64  `json:"cooldown_start,omitempty"`
}

func toPositionResponse(p *ledger.Position) positionResponse {
	return positionResponse{
		PoolID:        p.PoolID,
		Staker:        p.Staker,
		Amount:        p.Amount.String(),
		StakedAt:      p.StakedAt,
		LastClaimAt:   p.LastClaimAt,
		RewardsEarned: p.RewardsEarned.String(),
		UnlockTime:    p.UnlockTime,
		CooldownStart: p.CooldownStart,
	}
}

type withdrawResponse struct {
	Amount    string `json:"amount"`
	Penalty   string `json:"penalty"`
	NetAmount string `json:"net_amount"`
	Early     bool   `json:"early"`
	Remaining string `json:"remaining"`
}

type claimResponse struct {
	GrossRewards string `json:"gross_rewards"`
	Fee          string `json:"fee"`
	NetRewards   string `json:"net_rewards"`
}

type bonusClaimResponse struct {
	GrossRewards string `json:"gross_rewards"`
	TierBonus    string `json:"tier_bonus"`
	Fee          string `json:"fee"`
	FeeDiscount  string `json:"fee_discount"`
	NetRewards   string `json:"net_rewards"`
}

type tierStatusResponse struct {
	LiveTier        string `json:"live_tier"`
	RecordedTier    string `json:"recorded_tier"`
	RewardBonusBps  uint64 `json:"reward_bonus_bps"`
	FeeDiscountBps  uint64 `json:"fee_discount_bps"`
	AchievedAt      int64  `json:"achieved_at,omitempty"`
	BonusEarned     string `json:"bonus_earned,omitempty"`
	FeeDiscountUsed string `json:"fee_discount_used,omitempty"`
}

func toTierStatusResponse(status *ledger.TierStatus) tierStatusResponse {
	resp := tierStatusResponse{
		LiveTier:       string(status.LiveTier),
		RecordedTier:   string(status.RecordedTier),
		RewardBonusBps: status.Benefit.RewardBonusBps,
		FeeDiscountBps: status.Benefit.FeeDiscountBps,
	}
	if status.Record != nil {
		resp.AchievedAt = status.Record.AchievedAt
		resp.BonusEarned = status.Record.BonusEarned.String()
		resp.FeeDiscountUsed = status.Record.FeeDiscountUsed.String()
	}
	return resp
}

type tierRecordResponse struct {
	PoolID          uint64 `json:"pool_id"`
	Staker          string `json:"staker"`
	CurrentTier     string `json:"current_tier"`
	AchievedAt      int64  `json:"achieved_at"`
	BonusEarned     string `json:"bonus_earned"`
	FeeDiscountUsed string `json:"fee_discount_used"`
	LastCheckedAt   int64  `json:"last_checked_at"`
}

func toTierRecordResponse(rec *ledger.TierRecord) tierRecordResponse {
	return tierRecordResponse{
		PoolID:          rec.PoolID,
		Staker:          rec.Staker,
		CurrentTier:     string(rec.CurrentTier),
		AchievedAt:      rec.AchievedAt,
		BonusEarned:     rec.BonusEarned.String(),
		FeeDiscountUsed: rec.FeeDiscountUsed.String(),
		LastCheckedAt:   rec.LastCheckedAt,
	}
}

type userStatsResponse struct {
	Staker       string `json:"staker"`
	TotalStaked  string `json:"total_staked"`
	TotalRewards string `json:"total_rewards"`
	TotalFees    string `json:"total_fees"`
	PoolsJoined  uint64 `json:"pools_joined"`
	FirstStakeAt int64  `json:"first_stake_at"`
	LastActivity int64  `json:"last_activity"`
}

func toUserStatsResponse(s *ledger.UserStats) userStatsResponse {
	return userStatsResponse{
		Staker:       s.Staker,
		TotalStaked:  s.TotalStaked.String(),
		TotalRewards: s.TotalRewards.String(),
		TotalFees:    s.TotalFees.String(),
		PoolsJoined:  s.PoolsJoined,
		FirstStakeAt: s.FirstStakeAt,
		LastActivity: s.LastActivity,
	}
}

type protocolStatsResponse struct {
	TotalStaked        string `json:"total_staked"`
	TotalRewardsPaid   string `json:"total_rewards_paid"`
	TotalFeesCollected string `json:"total_fees_collected"`
	PoolCount          uint64 `json:"pool_count"`
	TierUpgrades       uint64 `json:"tier_upgrades"`
}
