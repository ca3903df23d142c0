package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/config"
	"github.com/stakeforge-io/staking-ledger/internal/observability/tracing"
	"github.com/stakeforge-io/staking-ledger/internal/services"
)

// Server hosts the HTTP call surface in front of the service layer.
type Server struct {
	httpServer *http.Server
}

func New(cfg *config.ServerConfig, svc *services.Service) *Server {
	h := &handler{svc: svc}

	r := chi.NewRouter()
	r.Use(tracing.Middleware)
	r.Use(observeRequests)
	h.routes(r)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      r,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("starting API server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve API: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
