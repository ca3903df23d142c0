package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
	"github.com/stakeforge-io/staking-ledger/internal/observability/metrics"
	"github.com/stakeforge-io/staking-ledger/internal/utils/poller"
)

// startStatsPoller periodically flushes the protocol-wide aggregates into
// their read model.
func (s *Service) startStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		"overall-stats",
		s.cfg.Poller.StatsFlushInterval,
		s.flushOverallStats,
	)
	go statsPoller.Start(ctx)
}

func (s *Service) flushOverallStats(ctx context.Context) error {
	s.mu.RLock()
	stats := s.ledger.Stats()
	now := s.readNow()
	s.mu.RUnlock()

	doc := &model.OverallStatsDocument{
		ID:                 model.OverallStatsID,
		TotalStaked:        stats.TotalStaked.String(),
		TotalRewardsPaid:   stats.TotalRewardsPaid.String(),
		TotalFeesCollected: stats.TotalFeesCollected.String(),
		PoolCount:          stats.PoolCount,
		TierUpgrades:       stats.TierUpgrades,
		LastUpdated:        now,
	}
	return s.db.UpsertOverallStats(ctx, doc)
}

// startOutboxPoller periodically republishes events that failed to reach the
// queue on first attempt.
func (s *Service) startOutboxPoller(ctx context.Context) {
	outboxPoller := poller.NewPoller(
		"event-outbox",
		s.cfg.Poller.OutboxPollingInterval,
		s.republishOutbox,
	)
	go outboxPoller.Start(ctx)
}

func (s *Service) republishOutbox(ctx context.Context) error {
	events, err := s.db.FindUnpublishedEvents(ctx, s.cfg.Poller.OutboxBatchLimit)
	if err != nil {
		return err
	}
	metrics.RecordOutboxUnpublished(float64(len(events)))
	if len(events) == 0 {
		return nil
	}

	log.Ctx(ctx).Info().Int("count", len(events)).Msg("republishing unpublished events")

	for _, doc := range events {
		if err := s.publisher.Publish(ctx, doc.EventType, []byte(doc.Payload)); err != nil {
			metrics.RecordEventPublishError()
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", doc.EventType).
				Msg("failed to republish event")
			continue
		}
		if err := s.db.MarkEventPublished(ctx, doc.ID); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", doc.EventType).
				Msg("failed to mark event published")
		}
	}
	return nil
}
