package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

const testStaker = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

func TestDeposit(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	t.Run("unknown pool", func(t *testing.T) {
		_, _, err := l.Deposit(testStaker, 42, sdkmath.NewInt(1_000_000), now)
		require.Error(t, err)
		assert.True(t, IsPoolNotFoundError(err))
	})

	t.Run("below minimum", func(t *testing.T) {
		_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(999_999), now)
		require.Error(t, err)
		assert.True(t, IsInvalidAmountError(err))
	})

	t.Run("first deposit creates the position", func(t *testing.T) {
		pos, events, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(10_000_000), pos.Amount)
		assert.Equal(t, now+7*secondsPerDay, pos.UnlockTime)
		assert.Equal(t, now, pos.StakedAt)
		assert.Zero(t, pos.CooldownStart)

		assert.Equal(t, uint64(1), pool.StakerCount)
		assert.Equal(t, sdkmath.NewInt(10_000_000), pool.TotalStaked)

		require.Len(t, events, 1)
		dep, ok := events[0].(event.StakeDeposited)
		require.True(t, ok)
		assert.True(t, dep.IsNewStaker)
		assert.Equal(t, sdkmath.NewInt(10_000_000), dep.TotalStake)
		assert.Equal(t, pos.UnlockTime, dep.UnlockTime)

		user, err := l.GetUserStats(testStaker)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(10_000_000), user.TotalStaked)
		assert.Equal(t, uint64(1), user.PoolsJoined)
		assert.Equal(t, now, user.FirstStakeAt)

		requireConservation(t, l, pool.ID)
	})

	t.Run("top-up restarts the lock", func(t *testing.T) {
		later := now + 3*secondsPerDay
		pos, events, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(2_000_000), later)
		require.NoError(t, err)
		assert.Equal(t, sdkmath.NewInt(12_000_000), pos.Amount)
		assert.Equal(t, later+7*secondsPerDay, pos.UnlockTime, "lock restarts on every top-up")
		assert.Equal(t, later, pos.StakedAt, "continuous-staking clock restarts too")

		require.Len(t, events, 1)
		dep := events[0].(event.StakeDeposited)
		assert.False(t, dep.IsNewStaker)

		// aggregates count the staker once
		assert.Equal(t, uint64(1), pool.StakerCount)
		user, err := l.GetUserStats(testStaker)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.PoolsJoined)

		requireConservation(t, l, pool.ID)
	})
}

func TestDeposit_TopUpCancelsCooldown(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	unlock := now + 7*secondsPerDay
	_, err = l.StartCooldown(testStaker, pool.ID, unlock)
	require.NoError(t, err)

	// cooldown completes, then the staker tops up instead of withdrawing
	cooledDown := unlock + secondsPerDay
	pos, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(2_000_000), cooledDown)
	require.NoError(t, err)
	assert.Zero(t, pos.CooldownStart, "a top-up cancels any running or finished cooldown")
	assert.Equal(t, StateLocked, CooldownStateOf(pos, pool, cooledDown))

	t.Run("new unlock lands in Unlocked, not Withdrawable", func(t *testing.T) {
		newUnlock := cooledDown + 7*secondsPerDay
		assert.Equal(t, StateUnlocked, CooldownStateOf(pos, pool, newUnlock))

		_, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(1_000_000), newUnlock)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err), "ordinary withdrawal needs a fresh cooldown")
	})

	t.Run("fresh cooldown gates the withdrawal again", func(t *testing.T) {
		newUnlock := cooledDown + 7*secondsPerDay
		_, err := l.StartCooldown(testStaker, pool.ID, newUnlock)
		require.NoError(t, err)

		res, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(1_000_000), newUnlock+secondsPerDay)
		require.NoError(t, err)
		assert.False(t, res.Early)
		assert.True(t, res.Penalty.IsZero())

		requireConservation(t, l, pool.ID)
	})
}

func TestWithdraw_EarlyExit(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(100_000_000), now)
	require.NoError(t, err)

	t.Run("never a zero-penalty exit while locked", func(t *testing.T) {
		res, events, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(100_000_000), now+secondsPerDay)
		require.NoError(t, err)
		assert.True(t, res.Early)
		assert.Equal(t, sdkmath.NewInt(5_000_000), res.Penalty)
		assert.Equal(t, sdkmath.NewInt(95_000_000), res.NetAmount)

		require.Len(t, events, 2)
		wd, ok := events[0].(event.StakeWithdrawn)
		require.True(t, ok)
		assert.True(t, wd.IsEarlyWithdrawal)
		assert.Equal(t, sdkmath.NewInt(5_000_000), wd.Penalty)
		assert.True(t, wd.RemainingStake.IsZero())

		fee, ok := events[1].(event.FeeCollected)
		require.True(t, ok)
		assert.Equal(t, event.FeeTypeEarlyPenalty, fee.FeeType)
		assert.Equal(t, sdkmath.NewInt(5_000_000), fee.Amount)

		// penalty is protocol fee revenue
		assert.Equal(t, sdkmath.NewInt(5_000_000), l.Stats().TotalFeesCollected)

		requireConservation(t, l, pool.ID)
	})
}

func TestWithdraw_CooldownGating(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	unlocked := now + 7*secondsPerDay

	t.Run("unlocked but no cooldown", func(t *testing.T) {
		_, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(10_000_000), unlocked)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))
	})

	_, err = l.StartCooldown(testStaker, pool.ID, unlocked)
	require.NoError(t, err)

	t.Run("cooldown still running", func(t *testing.T) {
		_, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(10_000_000), unlocked+secondsPerDay-1)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))
	})

	withdrawable := unlocked + secondsPerDay

	t.Run("exceeding the position", func(t *testing.T) {
		_, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(10_000_001), withdrawable)
		require.Error(t, err)
		assert.True(t, IsInsufficientStakeError(err))
	})

	t.Run("partial withdrawal cancels cooldown", func(t *testing.T) {
		res, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(4_000_000), withdrawable)
		require.NoError(t, err)
		assert.False(t, res.Early)
		assert.True(t, res.Penalty.IsZero())
		assert.Equal(t, sdkmath.NewInt(6_000_000), res.Remaining)

		state, err := l.GetCooldownState(testStaker, pool.ID, withdrawable)
		require.NoError(t, err)
		assert.Equal(t, StateUnlocked, state, "remainder needs a fresh cooldown")

		// an immediate second withdrawal is gated again
		_, _, err = l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(6_000_000), withdrawable)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))

		requireConservation(t, l, pool.ID)
	})

	t.Run("full withdrawal deletes the position", func(t *testing.T) {
		_, err := l.StartCooldown(testStaker, pool.ID, withdrawable)
		require.NoError(t, err)
		done := withdrawable + secondsPerDay

		before := pool.StakerCount
		res, _, err := l.Withdraw(testStaker, pool.ID, sdkmath.NewInt(6_000_000), done)
		require.NoError(t, err)
		assert.True(t, res.Remaining.IsZero())
		assert.Equal(t, before-1, pool.StakerCount)

		_, err = l.GetPosition(testStaker, pool.ID)
		require.Error(t, err)
		assert.True(t, IsPositionNotFoundError(err))

		assert.True(t, pool.TotalStaked.IsZero())
		requireConservation(t, l, pool.ID)
	})
}

func TestConservationAcrossOperations(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	stakers := []string{
		"ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM",
		"ST2JHG361ZXG51QTKY2NQCVBPPRRE2KZB1HR05NNC",
		"ST3AM1A56AK2C1XAFJ4115ZSV26EB49BVQ10MGCS0",
	}

	clock := now
	for i, staker := range stakers {
		_, _, err := l.Deposit(staker, pool.ID, sdkmath.NewInt(int64(i+1)*5_000_000), clock)
		require.NoError(t, err)
		requireConservation(t, l, pool.ID)
		clock += secondsPerDay
	}

	// early exit for one of them
	_, _, err := l.Withdraw(stakers[1], pool.ID, sdkmath.NewInt(10_000_000), clock)
	require.NoError(t, err)
	requireConservation(t, l, pool.ID)

	// compound for another
	clock += secondsPerDay
	_, _, err = l.Compound(stakers[0], pool.ID, clock)
	require.NoError(t, err)
	requireConservation(t, l, pool.ID)

	// claims do not move principal
	clock += secondsPerDay
	_, _, err = l.Claim(stakers[2], pool.ID, clock)
	require.NoError(t, err)
	requireConservation(t, l, pool.ID)
}
