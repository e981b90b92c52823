package relay

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/config/env"
)

const (
	DefaultAddr           = ":6000"
	DefaultSubscriberHost = "127.0.0.1"
	DefaultDialTimeout    = 2 * time.Second
	DefaultReadTimeout    = 10 * time.Second
)

type Config struct {
	Addr    string
	Dialect operator.Dialect
	// SubscriberHost is the host registered ports are dialed on.
	SubscriberHost string
	DialTimeout    time.Duration
	ReadTimeout    time.Duration
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Dialect == "" {
		c.Dialect = operator.DefaultDialect
	}
	if c.SubscriberHost == "" {
		c.SubscriberHost = DefaultSubscriberHost
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	return c
}

func LoadConfig() (*Config, error) {
	dialect, err := operator.ParseDialect(env.String("RELAY_DIALECT", string(operator.DefaultDialect)))
	if err != nil {
		return nil, fmt.Errorf("invalid RELAY_DIALECT: %w", err)
	}

	dialTimeout, err := env.Duration("RELAY_DIAL_TIMEOUT", DefaultDialTimeout)
	if err != nil {
		return nil, err
	}
	readTimeout, err := env.Duration("RELAY_READ_TIMEOUT", DefaultReadTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:           env.String("RELAY_ADDR", DefaultAddr),
		Dialect:        dialect,
		SubscriberHost: env.String("RELAY_SUBSCRIBER_HOST", DefaultSubscriberHost),
		DialTimeout:    dialTimeout,
		ReadTimeout:    readTimeout,
	}, nil
}
