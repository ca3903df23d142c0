package api

import (
	"net/http"
)

func (h *handler) deposit(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	pos, err := h.svc.Deposit(r.Context(), caller(r), id, amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toPositionResponse(pos))
}

func (h *handler) withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	result, err := h.svc.Withdraw(r.Context(), caller(r), id, amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, withdrawResponse{
		Amount:    result.Amount.String(),
		Penalty:   result.Penalty.String(),
		NetAmount: result.NetAmount.String(),
		Early:     result.Early,
		Remaining: result.Remaining.String(),
	})
}

func (h *handler) startCooldown(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	if err := h.svc.StartCooldown(r.Context(), caller(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, nil)
}
