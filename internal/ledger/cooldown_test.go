package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeforge-io/staking-ledger/internal/event"
)

func TestCooldownStateOf(t *testing.T) {
	pool := &Pool{CooldownPeriod: secondsPerDay}
	pos := &Position{UnlockTime: 1_000}

	assert.Equal(t, StateLocked, CooldownStateOf(pos, pool, 999))
	assert.Equal(t, StateUnlocked, CooldownStateOf(pos, pool, 1_000))

	pos.CooldownStart = 1_000
	assert.Equal(t, StateCooldownPending, CooldownStateOf(pos, pool, 1_000))
	assert.Equal(t, StateCooldownPending, CooldownStateOf(pos, pool, 1_000+secondsPerDay-1))
	assert.Equal(t, StateWithdrawable, CooldownStateOf(pos, pool, 1_000+secondsPerDay))
}

func TestStartCooldown(t *testing.T) {
	l, now := newTestLedger(t)
	pool := createTestPool(t, l, now)

	_, _, err := l.Deposit(testStaker, pool.ID, sdkmath.NewInt(10_000_000), now)
	require.NoError(t, err)

	t.Run("position required", func(t *testing.T) {
		_, err := l.StartCooldown("ST000000000000000000002AMW42H", pool.ID, now)
		require.Error(t, err)
		assert.True(t, IsPositionNotFoundError(err))
	})

	t.Run("rejected while locked", func(t *testing.T) {
		_, err := l.StartCooldown(testStaker, pool.ID, now+7*secondsPerDay-1)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))
	})

	unlocked := now + 7*secondsPerDay

	t.Run("starts from unlocked", func(t *testing.T) {
		events, err := l.StartCooldown(testStaker, pool.ID, unlocked)
		require.NoError(t, err)
		require.Len(t, events, 1)
		started, ok := events[0].(event.CooldownStarted)
		require.True(t, ok)
		assert.Equal(t, unlocked+secondsPerDay, started.CooldownEnds)

		state, err := l.GetCooldownState(testStaker, pool.ID, unlocked)
		require.NoError(t, err)
		assert.Equal(t, StateCooldownPending, state)
	})

	t.Run("rejected while already running", func(t *testing.T) {
		_, err := l.StartCooldown(testStaker, pool.ID, unlocked+1)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))
	})

	t.Run("rejected once withdrawable", func(t *testing.T) {
		_, err := l.StartCooldown(testStaker, pool.ID, unlocked+secondsPerDay)
		require.Error(t, err)
		assert.True(t, IsCooldownActiveError(err))
	})
}
