package ledger

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// Tier is the loyalty classification derived from continuous staking
// duration.
type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

func (t Tier) String() string {
	return string(t)
}

// Day thresholds for each tier.
const (
	SilverMinDays   = 30
	GoldMinDays     = 90
	PlatinumMinDays = 180
)

// TierForDuration maps an elapsed staking duration in seconds to a tier:
// Bronze < 30 days, Silver [30, 90), Gold [90, 180), Platinum >= 180.
func TierForDuration(elapsedSeconds int64) Tier {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	days := elapsedSeconds / secondsPerDay
	switch {
	case days >= PlatinumMinDays:
		return TierPlatinum
	case days >= GoldMinDays:
		return TierGold
	case days >= SilverMinDays:
		return TierSilver
	default:
		return TierBronze
	}
}

// tierRank orders tiers for monotonicity comparisons. The switch is total
// over all four tiers.
func tierRank(t Tier) int {
	switch t {
	case TierBronze:
		return 0
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	default:
		return 0
	}
}

// Benefit is the per-tier configuration: reward bonus, fee discount and
// the qualifying duration. Set once at bootstrap, read-only afterwards.
type Benefit struct {
	Name           string
	RewardBonusBps uint64
	FeeDiscountBps uint64
	MinDays        uint64
}

// DefaultBenefits returns the bootstrap tier benefit table.
func DefaultBenefits() map[Tier]Benefit {
	return map[Tier]Benefit{
		TierBronze:   {Name: "Bronze", RewardBonusBps: 0, FeeDiscountBps: 0, MinDays: 0},
		TierSilver:   {Name: "Silver", RewardBonusBps: 500, FeeDiscountBps: 1_000, MinDays: SilverMinDays},
		TierGold:     {Name: "Gold", RewardBonusBps: 1_000, FeeDiscountBps: 2_500, MinDays: GoldMinDays},
		TierPlatinum: {Name: "Platinum", RewardBonusBps: 2_000, FeeDiscountBps: 5_000, MinDays: PlatinumMinDays},
	}
}

// TierRecord is the persisted loyalty record per (pool, staker). Its
// CurrentTier only ever ratchets upward via CheckAndUpgradeTier, even when
// the live duration-derived tier regresses after a top-up.
type TierRecord struct {
	PoolID          uint64
	Staker          string
	CurrentTier     Tier
	AchievedAt      int64
	BonusEarned     sdkmath.Int
	FeeDiscountUsed sdkmath.Int
	LastCheckedAt   int64
}

// SetTierBenefits replaces the benefit table. Operator only; meant as a
// bootstrap call before stakers join.
func (l *Ledger) SetTierBenefits(caller string, benefits map[Tier]Benefit) error {
	if err := l.requireOperator(caller); err != nil {
		return err
	}
	for tier, benefit := range benefits {
		if benefit.RewardBonusBps > bpsDenominator || benefit.FeeDiscountBps > bpsDenominator {
			return &InvalidAmountError{
				Message: "tier " + tier.String() + " benefit exceeds 10000 bps",
			}
		}
	}
	table := make(map[Tier]Benefit, len(benefits))
	for tier, benefit := range benefits {
		table[tier] = benefit
	}
	l.benefits = table
	return nil
}

// Benefit returns the benefit entry for a tier, defaulting to a zero-bonus
// Bronze entry when the table has no row for it.
func (l *Ledger) Benefit(tier Tier) Benefit {
	if benefit, ok := l.benefits[tier]; ok {
		return benefit
	}
	return Benefit{Name: "Bronze"}
}

// liveTier recomputes the duration-based tier of a position at the given
// time. This is the effective tier used by the bonus claim path; it is not
// persisted and regresses when a top-up resets the staking clock.
func (l *Ledger) liveTier(pos *Position, now int64) Tier {
	return TierForDuration(now - pos.StakedAt)
}

// tierRecord returns the loyalty record for a position, creating one at the
// live tier when none exists yet.
func (l *Ledger) tierRecord(pos *Position, now int64) (*TierRecord, bool) {
	key := PositionKey{PoolID: pos.PoolID, Staker: pos.Staker}
	rec, ok := l.tiers[key]
	if !ok {
		rec = &TierRecord{
			PoolID:          pos.PoolID,
			Staker:          pos.Staker,
			CurrentTier:     l.liveTier(pos, now),
			AchievedAt:      now,
			BonusEarned:     sdkmath.ZeroInt(),
			FeeDiscountUsed: sdkmath.ZeroInt(),
			LastCheckedAt:   now,
		}
		l.tiers[key] = rec
	}
	return rec, !ok
}

// CheckAndUpgradeTier recomputes the duration-based tier of the caller's
// position and ratchets the persisted record upward when the live tier is
// higher. The record is never downgraded.
func (l *Ledger) CheckAndUpgradeTier(staker string, poolID uint64, now int64) (*TierRecord, []event.Event, error) {
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, nil, err
	}

	live := l.liveTier(pos, now)
	rec, created := l.tierRecord(pos, now)
	rec.LastCheckedAt = now

	var events []event.Event
	switch {
	case created:
		l.stats.TierUpgrades++
		events = append(events, event.TierInitialized{
			PoolID:    poolID,
			Staker:    staker,
			Tier:      rec.CurrentTier.String(),
			Timestamp: now,
		})
	case tierRank(live) > tierRank(rec.CurrentTier):
		old := rec.CurrentTier
		rec.CurrentTier = live
		rec.AchievedAt = now
		l.stats.TierUpgrades++
		events = append(events, event.TierUpgraded{
			PoolID:    poolID,
			Staker:    staker,
			OldTier:   old.String(),
			NewTier:   live.String(),
			Timestamp: now,
		})
	}

	return rec, events, nil
}

// TierStatus is the read-model answer for the tier query: the live
// duration-based tier alongside the ratcheted persisted record.
type TierStatus struct {
	LiveTier     Tier
	RecordedTier Tier
	Benefit      Benefit
	Record       *TierRecord
}

// GetTierStatus reports the live and recorded tiers of a position together
// with the benefits of the live tier. Pure query.
func (l *Ledger) GetTierStatus(staker string, poolID uint64, now int64) (*TierStatus, error) {
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, err
	}

	live := l.liveTier(pos, now)
	recorded := TierBronze
	rec := l.tiers[PositionKey{PoolID: poolID, Staker: staker}]
	if rec != nil {
		recorded = rec.CurrentTier
	}

	return &TierStatus{
		LiveTier:     live,
		RecordedTier: recorded,
		Benefit:      l.Benefit(live),
		Record:       rec,
	}, nil
}
