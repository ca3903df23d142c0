package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// Fee and penalty rates in basis points.
const (
	RewardFeeBps              = 1_000 // 10% of gross rewards
	EarlyWithdrawalPenaltyBps = 500   // 5% of the withdrawn amount
)

// RewardFee returns the protocol fee on gross rewards:
// floor(gross * 1000 / 10000).
func RewardFee(gross sdkmath.Int) sdkmath.Int {
	return gross.MulRaw(RewardFeeBps).QuoRaw(bpsDenominator)
}

// EarlyWithdrawalPenalty returns the penalty charged on a withdrawal that
// happens before the lock period elapses: floor(amount * 500 / 10000).
func EarlyWithdrawalPenalty(amount sdkmath.Int) sdkmath.Int {
	return amount.MulRaw(EarlyWithdrawalPenaltyBps).QuoRaw(bpsDenominator)
}

// TierDiscountedFee reduces a base fee by the tier's fee discount:
// baseFee - floor(baseFee * discountBps / 10000).
func TierDiscountedFee(baseFee sdkmath.Int, discountBps uint64) sdkmath.Int {
	discount := baseFee.MulRaw(int64(discountBps)).QuoRaw(bpsDenominator)
	return baseFee.Sub(discount)
}

// CalculateTierBonus returns the extra reward granted by a tier:
// floor(baseReward * bonusBps / 10000).
func CalculateTierBonus(baseReward sdkmath.Int, bonusBps uint64) sdkmath.Int {
	return baseReward.MulRaw(int64(bonusBps)).QuoRaw(bpsDenominator)
}
