package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

func TestRewardFee(t *testing.T) {
	// 10,000 STX in smallest units -> exactly 10% fee
	assert.Equal(t, sdkmath.NewInt(10_000_000), RewardFee(sdkmath.NewInt(100_000_000)))

	t.Run("rounds down in favor of the staker", func(t *testing.T) {
		// 10% of 19 is 1.9, truncated to 1
		assert.Equal(t, sdkmath.NewInt(1), RewardFee(sdkmath.NewInt(19)))
		assert.True(t, sdkmath.ZeroInt().Equal(RewardFee(sdkmath.NewInt(9))))
	})
}

func TestEarlyWithdrawalPenalty(t *testing.T) {
	assert.Equal(t, sdkmath.NewInt(5_000_000), EarlyWithdrawalPenalty(sdkmath.NewInt(100_000_000)))

	t.Run("rounds down in favor of the staker", func(t *testing.T) {
		// 5% of 39 is 1.95, truncated to 1
		assert.Equal(t, sdkmath.NewInt(1), EarlyWithdrawalPenalty(sdkmath.NewInt(39)))
		assert.True(t, sdkmath.ZeroInt().Equal(EarlyWithdrawalPenalty(sdkmath.NewInt(19))))
	})
}

func TestTierDiscountedFee(t *testing.T) {
	baseFee := sdkmath.NewInt(10_000)

	assert.Equal(t, baseFee, TierDiscountedFee(baseFee, 0))
	assert.Equal(t, sdkmath.NewInt(9_000), TierDiscountedFee(baseFee, 1_000))
	assert.Equal(t, sdkmath.NewInt(5_000), TierDiscountedFee(baseFee, 5_000))
	assert.True(t, sdkmath.ZeroInt().Equal(TierDiscountedFee(baseFee, 10_000)))

	t.Run("discount truncation never overcharges", func(t *testing.T) {
		// 10% discount on a fee of 19 is 1.9, truncated to 1
		assert.Equal(t, sdkmath.NewInt(18), TierDiscountedFee(sdkmath.NewInt(19), 1_000))
	})
}

func TestCalculateTierBonus(t *testing.T) {
	base := sdkmath.NewInt(1_000_000)

	assert.Equal(t, sdkmath.ZeroInt(), CalculateTierBonus(base, 0))
	assert.Equal(t, sdkmath.NewInt(50_000), CalculateTierBonus(base, 500))
	assert.Equal(t, sdkmath.NewInt(200_000), CalculateTierBonus(base, 2_000))
}
