package config

import (
	"errors"
	"fmt"
)

// TierBenefitConfig is one row of the loyalty tier benefit table.
type TierBenefitConfig struct {
	Tier           string `mapstructure:"tier"`
	Name           string `mapstructure:"name"`
	RewardBonusBps uint64 `mapstructure:"reward-bonus-bps"`
	FeeDiscountBps uint64 `mapstructure:"fee-discount-bps"`
	MinDays        uint64 `mapstructure:"min-days"`
}

type LedgerConfig struct {
	// Operator is the identity allowed to create, fund, pause and resume
	// pools.
	Operator string `mapstructure:"operator"`
	// LoyaltyEnabled gates the claim-with-tier-bonus path globally.
	LoyaltyEnabled bool `mapstructure:"loyalty-enabled"`
	// TierBenefits overrides the built-in benefit table when non-empty.
	TierBenefits []TierBenefitConfig `mapstructure:"tier-benefits"`
}

var knownTiers = map[string]struct{}{
	"BRONZE":   {},
	"SILVER":   {},
	"GOLD":     {},
	"PLATINUM": {},
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Operator == "" {
		return errors.New("ledger operator is required")
	}
	for _, row := range cfg.TierBenefits {
		if _, ok := knownTiers[row.Tier]; !ok {
			return fmt.Errorf("unknown tier %q in tier-benefits", row.Tier)
		}
		if row.RewardBonusBps > 10_000 {
			return fmt.Errorf("tier %s reward-bonus-bps exceeds 10000", row.Tier)
		}
		if row.FeeDiscountBps > 10_000 {
			return fmt.Errorf("tier %s fee-discount-bps exceeds 10000", row.Tier)
		}
	}
	return nil
}
