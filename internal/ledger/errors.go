package ledger

import (
	"errors"
	"fmt"
)

// NotAuthorizedError is returned when a caller lacks the operator role
// required for an administrative operation.
type NotAuthorizedError struct {
	Caller string
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("caller %s is not the pool operator", e.Caller)
}

func IsNotAuthorizedError(err error) bool {
	var target *NotAuthorizedError
	return errors.As(err, &target)
}

// PoolNotFoundError is returned for an unknown pool id.
type PoolNotFoundError struct {
	PoolID uint64
}

func (e *PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool %d not found", e.PoolID)
}

func IsPoolNotFoundError(err error) bool {
	var target *PoolNotFoundError
	return errors.As(err, &target)
}

// PositionNotFoundError is returned when no stake position exists for
// the (pool, staker) key.
type PositionNotFoundError struct {
	PoolID uint64
	Staker string
}

func (e *PositionNotFoundError) Error() string {
	if e.PoolID == 0 {
		return fmt.Sprintf("no staking activity for staker %s", e.Staker)
	}
	return fmt.Sprintf("no stake position for staker %s in pool %d", e.Staker, e.PoolID)
}

func IsPositionNotFoundError(err error) bool {
	var target *PositionNotFoundError
	return errors.As(err, &target)
}

// InvalidAmountError is returned for zero/negative rates and amounts,
// and for deposits below the pool minimum.
type InvalidAmountError struct {
	Message string
}

func (e *InvalidAmountError) Error() string {
	return e.Message
}

func IsInvalidAmountError(err error) bool {
	var target *InvalidAmountError
	return errors.As(err, &target)
}

// InsufficientStakeError is returned when a withdrawal exceeds the
// position balance.
type InsufficientStakeError struct {
	Requested string
	Available string
}

func (e *InsufficientStakeError) Error() string {
	return fmt.Sprintf("requested %s exceeds staked balance %s", e.Requested, e.Available)
}

func IsInsufficientStakeError(err error) bool {
	var target *InsufficientStakeError
	return errors.As(err, &target)
}

// CooldownActiveError covers every illegal interaction with the
// unlock/cooldown state machine: withdrawing while the cooldown has not
// completed, or starting a cooldown that is already running or on a
// still-locked position.
type CooldownActiveError struct {
	Message string
}

func (e *CooldownActiveError) Error() string {
	return e.Message
}

func IsCooldownActiveError(err error) bool {
	var target *CooldownActiveError
	return errors.As(err, &target)
}

// PoolInactiveError is returned on deposit/compound against a paused or
// time-expired pool.
type PoolInactiveError struct {
	PoolID uint64
	Status PoolStatus
}

func (e *PoolInactiveError) Error() string {
	return fmt.Sprintf("pool %d is not active (status %s)", e.PoolID, e.Status)
}

func IsPoolInactiveError(err error) bool {
	var target *PoolInactiveError
	return errors.As(err, &target)
}

// NoRewardsError is returned when a claim or compound has nothing to pay
// out, either because no rewards accrued since the last claim or because
// the pool reward balance cannot cover the payout.
type NoRewardsError struct {
	Message string
}

func (e *NoRewardsError) Error() string {
	return e.Message
}

func IsNoRewardsError(err error) bool {
	var target *NoRewardsError
	return errors.As(err, &target)
}

// LoyaltyDisabledError is returned by the tier-bonus claim path while the
// loyalty program is globally disabled.
type LoyaltyDisabledError struct{}

func (e *LoyaltyDisabledError) Error() string {
	return "loyalty program is disabled"
}

func IsLoyaltyDisabledError(err error) bool {
	var target *LoyaltyDisabledError
	return errors.As(err, &target)
}
