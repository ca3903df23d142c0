package api

import (
	"encoding/json"
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

type createPoolRequest struct {
	Name           string      `json:"name"`
	DailyRateBps   uint64      `json:"daily_rate_bps"`
	MinStake       sdkmath.Int `json:"min_stake"`
	LockPeriod     int64       `json:"lock_period"`
	CooldownPeriod int64       `json:"cooldown_period"`
	Duration       int64       `json:"duration,omitempty"`
}

func (h *handler) createPool(w http.ResponseWriter, r *http.Request) {
	var req createPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.MinStake.IsNil() {
		req.MinStake = sdkmath.ZeroInt()
	}

	pool, err := h.svc.CreatePool(r.Context(), caller(r), ledger.CreatePoolParams{
		Name:           req.Name,
		DailyRateBps:   req.DailyRateBps,
		MinStake:       req.MinStake,
		LockPeriod:     req.LockPeriod,
		CooldownPeriod: req.CooldownPeriod,
		Duration:       req.Duration,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toPoolResponse(pool))
}

type amountRequest struct {
	Amount sdkmath.Int `json:"amount"`
}

// decodeAmount parses a request body carrying a single amount. A nil amount
// is normalized to zero so the core rejects it as invalid rather than the
// handler panicking on an uninitialized Int.
func decodeAmount(w http.ResponseWriter, r *http.Request) (sdkmath.Int, bool) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return sdkmath.Int{}, false
	}
	if req.Amount.IsNil() {
		req.Amount = sdkmath.ZeroInt()
	}
	return req.Amount, true
}

func (h *handler) fundPool(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	if err := h.svc.FundRewardPool(r.Context(), caller(r), id, amount); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nil)
}

func (h *handler) pausePool(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	if err := h.svc.PausePool(r.Context(), caller(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nil)
}

func (h *handler) resumePool(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	if err := h.svc.ResumePool(r.Context(), caller(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nil)
}

type tierBenefitRequest struct {
	Tier           string `json:"tier"`
	Name           string `json:"name"`
	RewardBonusBps uint64 `json:"reward_bonus_bps"`
	FeeDiscountBps uint64 `json:"fee_discount_bps"`
	MinDays        uint64 `json:"min_days"`
}

func (h *handler) setTierBenefits(w http.ResponseWriter, r *http.Request) {
	var req []tierBenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	benefits := make(map[ledger.Tier]ledger.Benefit, len(req))
	for _, row := range req {
		benefits[ledger.Tier(row.Tier)] = ledger.Benefit{
			Name:           row.Name,
			RewardBonusBps: row.RewardBonusBps,
			FeeDiscountBps: row.FeeDiscountBps,
			MinDays:        row.MinDays,
		}
	}
	if err := h.svc.SetTierBenefits(r.Context(), caller(r), benefits); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nil)
}
