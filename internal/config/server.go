package config

import (
	"errors"
	"time"
)

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("server host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return errors.New("server port must be in (0, 65535]")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.New("server read-timeout must be positive")
	}
	if cfg.WriteTimeout <= 0 {
		return errors.New("server write-timeout must be positive")
	}
	return nil
}
