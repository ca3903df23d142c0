package config

import (
	"errors"
	"time"
)

type PollerConfig struct {
	StatsFlushInterval    time.Duration `mapstructure:"stats-flush-interval"`
	OutboxPollingInterval time.Duration `mapstructure:"outbox-polling-interval"`
	OutboxBatchLimit      int64         `mapstructure:"outbox-batch-limit"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.StatsFlushInterval <= 0 {
		return errors.New("stats-flush-interval must be positive")
	}
	if cfg.OutboxPollingInterval <= 0 {
		return errors.New("outbox-polling-interval must be positive")
	}
	if cfg.OutboxBatchLimit <= 0 {
		return errors.New("outbox-batch-limit must be positive")
	}
	return nil
}
