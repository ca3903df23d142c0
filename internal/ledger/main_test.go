package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

const testOperator = "SP000000000000000000002Q6VF78"

// newTestLedger returns a ledger with the loyalty program enabled and a
// fixed genesis time.
func newTestLedger(t *testing.T) (*Ledger, int64) {
	t.Helper()
	l := New(Params{
		Operator:       testOperator,
		LoyaltyEnabled: true,
	})
	return l, int64(1_700_000_000)
}

// createTestPool creates a pool with the reference parameters used across
// the suite: 5% daily rate, 7 day lock, 1 day cooldown, funded reward pool.
func createTestPool(t *testing.T, l *Ledger, now int64) *Pool {
	t.Helper()
	pool, _, err := l.CreatePool(testOperator, CreatePoolParams{
		Name:           gofakeit.AppName(),
		DailyRateBps:   500,
		MinStake:       sdkmath.NewInt(1_000_000),
		LockPeriod:     7 * secondsPerDay,
		CooldownPeriod: secondsPerDay,
	}, now)
	require.NoError(t, err)

	_, err = l.FundRewardPool(testOperator, pool.ID, sdkmath.NewInt(1_000_000_000), now)
	require.NoError(t, err)
	return pool
}

// requireConservation asserts that a pool's totalStaked equals the sum of
// its live position amounts.
func requireConservation(t *testing.T, l *Ledger, poolID uint64) {
	t.Helper()
	pool, err := l.GetPool(poolID)
	require.NoError(t, err)

	sum := sdkmath.ZeroInt()
	for _, pos := range l.PoolPositions(poolID) {
		require.True(t, pos.Amount.IsPositive(), "live position must hold a positive amount")
		sum = sum.Add(pos.Amount)
	}
	require.True(t, pool.TotalStaked.Equal(sum),
		"pool %d totalStaked %s != position sum %s", poolID, pool.TotalStaked, sum)
}
