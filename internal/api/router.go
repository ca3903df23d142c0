package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stakeforge-io/staking-ledger/internal/observability/metrics"
	"github.com/stakeforge-io/staking-ledger/internal/services"
)

// callerHeader carries the caller identity. The core decides whether that
// identity may perform the requested operation.
const callerHeader = "X-Caller-Address"

type handler struct {
	svc *services.Service
}

func (h *handler) routes(r chi.Router) {
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		// Pool administration
		r.Post("/pools", h.createPool)
		r.Post("/pools/{poolID}/fund", h.fundPool)
		r.Post("/pools/{poolID}/pause", h.pausePool)
		r.Post("/pools/{poolID}/resume", h.resumePool)
		r.Put("/tier-benefits", h.setTierBenefits)

		// Staking
		r.Post("/pools/{poolID}/deposit", h.deposit)
		r.Post("/pools/{poolID}/withdraw", h.withdraw)
		r.Post("/pools/{poolID}/cooldown", h.startCooldown)

		// Rewards
		r.Post("/pools/{poolID}/claim", h.claim)
		r.Post("/pools/{poolID}/claim-with-bonus", h.claimWithBonus)
		r.Post("/pools/{poolID}/compound", h.compound)
		r.Post("/pools/{poolID}/tier/check", h.checkTier)

		// Queries
		r.Get("/pools", h.listPools)
		r.Get("/pools/{poolID}", h.getPool)
		r.Get("/pools/{poolID}/position", h.getPosition)
		r.Get("/pools/{poolID}/rewards", h.getPendingRewards)
		r.Get("/pools/{poolID}/cooldown", h.getCooldownState)
		r.Get("/pools/{poolID}/tier", h.getTierStatus)
		r.Get("/stakers/{staker}/stats", h.getUserStats)
		r.Get("/stakers/{staker}/voting-power", h.getVotingPower)
		r.Get("/stats", h.getProtocolStats)
	})
}

// caller extracts the caller identity header, or empty when absent. An empty
// caller fails the core's authorization and existence checks naturally.
func caller(r *http.Request) string {
	return r.Header.Get(callerHeader)
}

func poolID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "poolID"), 10, 64)
}

// observeRequests records per-route request durations.
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		metrics.ObserveHttpRequest(r.Method, routePattern, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
