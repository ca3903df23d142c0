// Package api exposes the ledger call surface over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps core error kinds onto HTTP statuses. Unknown errors are
// internal failures.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case ledger.IsNotAuthorizedError(err):
		status = http.StatusForbidden
	case ledger.IsPoolNotFoundError(err), ledger.IsPositionNotFoundError(err):
		status = http.StatusNotFound
	case ledger.IsInvalidAmountError(err),
		ledger.IsInsufficientStakeError(err),
		ledger.IsNoRewardsError(err),
		ledger.IsLoyaltyDisabledError(err):
		status = http.StatusBadRequest
	case ledger.IsCooldownActiveError(err), ledger.IsPoolInactiveError(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg("internal error handling request")
		writeJSON(w, r, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
