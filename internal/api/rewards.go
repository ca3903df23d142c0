package api

import (
	"net/http"
)

func (h *handler) claim(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	result, err := h.svc.Claim(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, claimResponse{
		GrossRewards: result.GrossRewards.String(),
		Fee:          result.Fee.String(),
		NetRewards:   result.NetRewards.String(),
	})
}

func (h *handler) claimWithBonus(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	result, err := h.svc.ClaimWithTierBonus(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, bonusClaimResponse{
		GrossRewards: result.GrossRewards.String(),
		TierBonus:    result.TierBonus.String(),
		Fee:          result.Fee.String(),
		FeeDiscount:  result.FeeDiscount.String(),
		NetRewards:   result.NetRewards.String(),
	})
}

func (h *handler) compound(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	result, err := h.svc.Compound(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, claimResponse{
		GrossRewards: result.GrossRewards.String(),
		Fee:          result.Fee.String(),
		NetRewards:   result.NetRewards.String(),
	})
}

func (h *handler) checkTier(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	record, err := h.svc.CheckAndUpgradeTier(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toTierRecordResponse(record))
}
