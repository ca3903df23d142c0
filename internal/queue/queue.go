package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/stakeforge-io/staking-ledger/internal/config"
)

// Publisher delivers ledger events to the broker consumed by the external
// indexer.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload []byte) error
	Shutdown()
}

type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	// durable queue, survives broker restarts
	if _, err := channel.QueueDeclare(cfg.QueueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish sends one event message to the queue, retrying transient broker
// failures per config.
func (qm *QueueManager) Publish(ctx context.Context, eventType string, payload []byte) error {
	publish := func() error {
		publishCtx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
		defer cancel()

		return qm.channel.PublishWithContext(
			publishCtx,
			"",                // default exchange
			qm.cfg.QueueName,  // routing key
			false,             // mandatory
			false,             // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    uuid.New().String(),
				Timestamp:    time.Now(),
				Type:         eventType,
				Body:         payload,
			},
		)
	}

	err := retry.Do(
		publish,
		retry.Attempts(qm.cfg.MaxRetryTimes),
		retry.Delay(qm.cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n+1).
				Str("event_type", eventType).
				Msg("retrying event publish")
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all
// resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")
	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue connection")
	}
}
