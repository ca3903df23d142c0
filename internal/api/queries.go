package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *handler) listPools(w http.ResponseWriter, r *http.Request) {
	pools := h.svc.ListPools(r.Context())
	resp := make([]poolResponse, 0, len(pools))
	for _, p := range pools {
		resp = append(resp, toPoolResponse(p))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *handler) getPool(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	pool, err := h.svc.GetPool(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toPoolResponse(pool))
}

func (h *handler) getPosition(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	pos, err := h.svc.GetPosition(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toPositionResponse(pos))
}

func (h *handler) getPendingRewards(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	pending, err := h.svc.GetPendingRewards(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"pending_rewards": pending.String()})
}

func (h *handler) getCooldownState(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	state, err := h.svc.GetCooldownState(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"state": state.String()})
}

func (h *handler) getTierStatus(w http.ResponseWriter, r *http.Request) {
	id, err := poolID(r)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid pool id"})
		return
	}
	status, err := h.svc.GetTierStatus(r.Context(), caller(r), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toTierStatusResponse(status))
}

func (h *handler) getUserStats(w http.ResponseWriter, r *http.Request) {
	staker := chi.URLParam(r, "staker")
	stats, err := h.svc.GetUserStats(r.Context(), staker)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toUserStatsResponse(stats))
}

func (h *handler) getVotingPower(w http.ResponseWriter, r *http.Request) {
	staker := chi.URLParam(r, "staker")
	power := h.svc.GetVotingPower(r.Context(), staker)
	writeJSON(w, r, http.StatusOK, map[string]string{"voting_power": power.String()})
}

func (h *handler) getProtocolStats(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.GetProtocolStats(r.Context())
	writeJSON(w, r, http.StatusOK, protocolStatsResponse{
		TotalStaked:        stats.TotalStaked.String(),
		TotalRewardsPaid:   stats.TotalRewardsPaid.String(),
		TotalFeesCollected: stats.TotalFeesCollected.String(),
		PoolCount:          stats.PoolCount,
		TierUpgrades:       stats.TierUpgrades,
	})
}
