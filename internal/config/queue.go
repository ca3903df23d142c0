package config

import (
	"errors"
	"time"
)

type QueueConfig struct {
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Url            string        `mapstructure:"url"`
	QueueName      string        `mapstructure:"queue-name"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return errors.New("queue user is required")
	}
	if cfg.Password == "" {
		return errors.New("queue password is required")
	}
	if cfg.Url == "" {
		return errors.New("queue url is required")
	}
	if cfg.QueueName == "" {
		return errors.New("queue name is required")
	}
	if cfg.PublishTimeout <= 0 {
		return errors.New("queue publish-timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("queue max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("queue retry-interval must be positive")
	}
	return nil
}
