package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/db/model"
	"github.com/stakeforge-io/staking-ledger/internal/event"
	"github.com/stakeforge-io/staking-ledger/internal/ledger"
	"github.com/stakeforge-io/staking-ledger/internal/observability/metrics"
)

// recordOp times one core operation for the metrics layer.
func recordOp(operation string, start time.Time, err error) {
	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
	}
	metrics.RecordLedgerOperation(operation, time.Since(start), outcome)
}

// emit writes the emitted events to the outbox and publishes them to the
// queue. The core state is already committed at this point: a failure here
// leaves the events unpublished in the outbox for the republisher and never
// rolls the operation back.
func (s *Service) emit(ctx context.Context, events []event.Event, now int64) {
	for _, ev := range events {
		metrics.RecordEventEmitted(ev.EventType().String())

		payload, err := json.Marshal(ev)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", ev.EventType().String()).
				Msg("failed to encode event")
			continue
		}

		doc := model.NewEventDocument(ev.EventType().String(), string(payload), now)
		if err := s.db.InsertEvents(ctx, []*model.EventDocument{doc}); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", doc.EventType).
				Msg("failed to record event in outbox")
			continue
		}

		if err := s.publisher.Publish(ctx, doc.EventType, []byte(doc.Payload)); err != nil {
			metrics.RecordEventPublishError()
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", doc.EventType).
				Msg("failed to publish event, left in outbox")
			continue
		}

		if err := s.db.MarkEventPublished(ctx, doc.ID); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("event_type", doc.EventType).
				Msg("failed to mark event published")
		}
	}
}

// syncPool mirrors a pool into its read model.
func (s *Service) syncPool(ctx context.Context, pool *ledger.Pool) {
	doc := &model.PoolDocument{
		ID:             pool.ID,
		Name:           pool.Name,
		DailyRateBps:   pool.DailyRateBps,
		MinStake:       pool.MinStake.String(),
		LockPeriod:     pool.LockPeriod,
		CooldownPeriod: pool.CooldownPeriod,
		TotalStaked:    pool.TotalStaked.String(),
		RewardsPaid:    pool.RewardsPaid.String(),
		StakerCount:    pool.StakerCount,
		CreatedAt:      pool.CreatedAt,
		EndsAt:         pool.EndsAt,
		Status:         pool.Status.String(),
		RewardBalance:  pool.RewardBalance.String(),
	}
	if err := s.db.UpsertPool(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("pool_id", pool.ID).Msg("failed to sync pool read model")
	}
}

// syncPosition mirrors a position into its read model, or deletes the
// document after a full withdrawal.
func (s *Service) syncPosition(ctx context.Context, poolID uint64, staker string) {
	pos, err := s.ledger.GetPosition(staker, poolID)
	if err != nil {
		if delErr := s.db.DeletePosition(ctx, poolID, staker); delErr != nil {
			log.Ctx(ctx).Error().Err(delErr).
				Uint64("pool_id", poolID).
				Str("staker", staker).
				Msg("failed to delete position read model")
		}
		return
	}

	doc := &model.PositionDocument{
		ID:            model.PositionID(poolID, staker),
		PoolID:        poolID,
		Staker:        staker,
		Amount:        pos.Amount.String(),
		StakedAt:      pos.StakedAt,
		LastClaimAt:   pos.LastClaimAt,
		RewardsEarned: pos.RewardsEarned.String(),
		UnlockTime:    pos.UnlockTime,
		CooldownStart: pos.CooldownStart,
	}
	if err := s.db.UpsertPosition(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Uint64("pool_id", poolID).
			Str("staker", staker).
			Msg("failed to sync position read model")
	}
}

// syncUser mirrors a staker's aggregates into their read model.
func (s *Service) syncUser(ctx context.Context, staker string) {
	stats, err := s.ledger.GetUserStats(staker)
	if err != nil {
		return
	}
	doc := &model.UserStatsDocument{
		ID:           staker,
		TotalStaked:  stats.TotalStaked.String(),
		TotalRewards: stats.TotalRewards.String(),
		TotalFees:    stats.TotalFees.String(),
		PoolsJoined:  stats.PoolsJoined,
		FirstStakeAt: stats.FirstStakeAt,
		LastActivity: stats.LastActivity,
	}
	if err := s.db.UpsertUserStats(ctx, doc); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("staker", staker).Msg("failed to sync user stats read model")
	}
}
