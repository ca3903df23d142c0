package ledger

import (
	"github.com/stakeforge-io/staking-ledger/internal/event"
)

// CooldownState is the derived unlock/cooldown state of a position.
type CooldownState string

const (
	// StateLocked: now < unlockTime.
	StateLocked CooldownState = "LOCKED"
	// StateUnlocked: lock elapsed, no cooldown running.
	StateUnlocked CooldownState = "UNLOCKED"
	// StateCooldownPending: cooldown started, not yet complete.
	StateCooldownPending CooldownState = "COOLDOWN_PENDING"
	// StateWithdrawable: cooldown complete, ordinary withdrawal permitted.
	StateWithdrawable CooldownState = "WITHDRAWABLE"
)

func (s CooldownState) String() string {
	return string(s)
}

// CooldownStateOf derives the state of a position at the given time. The
// state is a pure function of the position timers and the pool cooldown
// period; nothing is persisted beyond cooldownStart.
func CooldownStateOf(pos *Position, pool *Pool, now int64) CooldownState {
	if now < pos.UnlockTime {
		return StateLocked
	}
	if pos.CooldownStart == 0 {
		return StateUnlocked
	}
	if now < pos.CooldownStart+pool.CooldownPeriod {
		return StateCooldownPending
	}
	return StateWithdrawable
}

// StartCooldown begins the withdrawal cooldown on an unlocked position.
// Legal only from the unlocked state: a still-locked position or an already
// running cooldown fails with CooldownActive.
func (l *Ledger) StartCooldown(staker string, poolID uint64, now int64) ([]event.Event, error) {
	pool, err := l.pool(poolID)
	if err != nil {
		return nil, err
	}
	pos, err := l.position(poolID, staker)
	if err != nil {
		return nil, err
	}

	switch CooldownStateOf(pos, pool, now) {
	case StateLocked:
		return nil, &CooldownActiveError{Message: "position is still locked"}
	case StateCooldownPending, StateWithdrawable:
		return nil, &CooldownActiveError{Message: "cooldown already started"}
	}

	pos.CooldownStart = now

	events := []event.Event{event.CooldownStarted{
		PoolID:       poolID,
		Staker:       staker,
		CooldownEnds: now + pool.CooldownPeriod,
		Timestamp:    now,
	}}
	return events, nil
}
