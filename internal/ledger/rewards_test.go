package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// Reference scenario: dailyRateBps=500, minStake=1_000_000,
// lockPeriod=604800, cooldownPeriod=86400, stake 10_000_000, advance one
// day -> pending 500_000, fee 50_000, net 450_000.
func TestClaim_ReferenceScenario(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	oneDayLater := now + secondsPerDay

	pending, err := l.PendingRewards(testStaker, pool.ID, oneDayLater)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(500_000), pending)

	res, events, err := l.Claim(testStaker, pool.ID, oneDayLater)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(500_000), res.GrossRewards)
	assert.Equal(t, sdkmath.NewInt(50_000), res.Fee)
	assert.Equal(t, sdkmath.NewInt(450_000), res.NetRewards)

	require.Len(t, events, 2)
	claimed, ok := events[0].(event.RewardsClaimed)
	require.True(t, ok)
	assert.Equal(t, sdkmath.NewInt(500_000), claimed.GrossRewards)
	assert.Equal(t, sdkmath.NewInt(50_000), claimed.Fee)
	assert.Equal(t, sdkmath.NewInt(450_000), claimed.NetRewards)

	fee, ok := events[1].(event.FeeCollected)
	require.True(t, ok)
	assert.Equal(t, event.FeeTypeReward, fee.FeeType)

	// the reward balance is debited by the gross amount
	assert.Equal(t, sdkmath.NewInt(1_000_000_000-500_000), pool.RewardBalance)
	assert.Equal(t, sdkmath.NewInt(450_000), pool.RewardsPaid)

	pos, err := l.GetPosition(testStaker, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, oneDayLater, pos.LastClaimAt)
	assert.Equal(t, sdkmath.NewInt(450_000), pos.RewardsEarned)

	user, err := l.GetUserStats(testStaker)
	require.NoError(t, err)
	assert.Equal(t, sdkmath.NewInt(450_000), user.TotalRewards)
	assert.Equal(t, sdkmath.NewInt(50_000), user.TotalFees)
}

func TestClaim_ZeroPendingFails(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	later := now + secondsPerDay
	_, _, err = l.Claim(testStaker, pool.ID, later)
	require.NoError(t, err)

	// second claim in the same instant: nothing accrued
	_, _, err = l.Claim(testStaker, pool.ID, later)
	require.Error(t, err)
	assert.True(t, IsNoRewardsError(err))
}

func TestClaim_RewardBalanceExhausted(t *testing.T) {
	l, now := newTestLedger(t)
	pool, _, err := l.CreatePool(testOperator, CreatePoolParams{
		Name:         "dry",
		DailyRateBps: 500,
		MinStake:     sdkmath.NewInt(1_000_000),
	}, now)
	require.NoError(t, err)
	_, err = l.FundRewardPool(testOperator, pool.ID, sdkmath.NewInt(100), now)
	require.NoError(t, err)

	_, _, err = l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	// a day of accrual is 500_000, far over the 100 available
	_, _, err = l.Claim(testStaker, pool.ID, now+secondsPerDay)
	require.Error(t, err)
	assert.True(t, IsNoRewardsError(err))

	// the failure left no partial state behind
	assert.Equal(t, sdkmath.NewInt(100), pool.RewardBalance)
	pos, err := l.GetPosition(testStaker, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, now, pos.LastClaimAt)
}

func TestClaim_AllowedOnPausedPool(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)
	_, err = l.PausePool(testOperator, pool.ID, now)
	require.NoError(t, err)

	_, _, err = l.Claim(testStaker, pool.ID, now+secondsPerDay)
	require.NoError(t, err)
}

func TestCompound(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	later := now + secondsPerDay

	t.Run("restakes the net payout", func(t *testing.T) {
		res, events, err := l.Compound(testStaker, pool.ID, later)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(500_000), res.GrossRewards)
		assert.Equal(t, sdkmath.NewInt(450_000), res.NetRewards)

		pos, err := l.GetPosition(testStaker, pool.ID)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(10_450_000), pos.Amount)
		assert.Equal(t, sdkmath.NewInt(10_450_000), pool.TotalStaked)

		// the lock is not restarted by compounding
		assert.Equal(t, now+7*secondsPerDay, pos.UnlockTime)

		require.Len(t, events, 2)
		comp, ok := events[0].(event.RewardsCompounded)
		require.True(t, ok)
		assert.Equal(t, sdkmath.NewInt(450_000), comp.RewardsCompounded)
		assert.Equal(t, sdkmath.NewInt(10_450_000), comp.NewStakeAmount)

		requireConservation(t, l, pool.ID)
	})

	t.Run("requires an active pool", func(t *testing.T) {
		_, err := l.PausePool(testOperator, pool.ID, later)
		require.NoError(t, err)

		_, _, err = l.Compound(testStaker, pool.ID, later+secondsPerDay)
		require.Error(t, err)
		assert.True(t, IsPoolInactiveError(err))
	})
}

func TestClaimWithTierBonus(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	t.Run("requires the loyalty program", func(t *testing.T) {
		disabled := New(Params{Operator: testOperator})
		_, _, err := disabled.ClaimWithTierBonus(testStaker, 1, now)
		require.Error(t, err)
		assert.True(t, IsLoyaltyDisabledError(err))
	})

	t.Run("bronze gets no bonus and no discount", func(t *testing.T) {
		res, _, err := l.ClaimWithTierBonus(testStaker, pool.ID, now+secondsPerDay)
		require.NoError(t, err)
		assert.True(t, res.TierBonus.IsZero())
		assert.True(t, res.FeeDiscount.IsZero())
		assert.Equal(t, sdkmath.NewInt(450_000), res.NetRewards)
	})

	t.Run("gold applies bonus and discount", func(t *testing.T) {
		// 91 days after the initial stake the live tier is Gold
		// (1000 bps bonus, 2500 bps fee discount)
		claimAt := now + 91*secondsPerDay
		pos, err := l.GetPosition(testStaker, pool.ID)
		require.NoError(t, err)
		base := pendingRewards(pos, pool, claimAt)

		res, _, err := l.ClaimWithTierBonus(testStaker, pool.ID, claimAt)
		require.NoError(t, err)

		bonus := base.MulRaw(1_000).QuoRaw(10_000)
		gross := base.Add(bonus)
		baseFee := gross.MulRaw(1_000).QuoRaw(10_000)
		discount := baseFee.MulRaw(2_500).QuoRaw(10_000)

		assert.Equal(t, bonus, res.TierBonus)
		assert.Equal(t, gross, res.GrossRewards)
		assert.Equal(t, discount, res.FeeDiscount)
		assert.Equal(t, baseFee.Sub(discount), res.Fee)
		assert.Equal(t, gross.Sub(res.Fee), res.NetRewards)

		// bookkeeping lands on the tier record
		status, err := l.GetTierStatus(testStaker, pool.ID, claimAt)
		require.NoError(t, err)
		require.NotNil(t, status.Record)
		assert.Equal(t, bonus, status.Record.BonusEarned)
		assert.Equal(t, discount, status.Record.FeeDiscountUsed)
	})

	t.Run("top-up demotes the effective tier", func(t *testing.T) {
		// a fresh deposit resets the staking clock, so the live tier is
		// Bronze again even though a record may sit at Gold
		topUpAt := now + 92*secondsPerDay
		_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(1_000_000), topUpAt)
		require.NoError(t, err)

		res, _, err := l.ClaimWithTierBonus(testStaker, pool.ID, topUpAt+secondsPerDay)
		require.NoError(t, err)
		assert.True(t, res.TierBonus.IsZero(), "bonus follows the live tier, not the record")
	})
}
