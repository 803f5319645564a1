// Package config loads process-level tunables for the ticker scheduler,
// the same way the teacher loads its database/HTTP tunables: env vars
// parsed by caarlos0/env and checked by go-playground/validator.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds the scheduler's process-wide tunables, for a demo/host
// binary (see cmd/tickerdemo). Individual schedulers can still override
// the TICKER_* tunables per-instance via ticker.Option values.
type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"required,oneof=debug info warn error"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	// WorkerCount sizes the worker pool (C4). 0 means hardware concurrency.
	WorkerCount int `env:"TICKER_WORKER_COUNT" envDefault:"0" validate:"min=0,max=1024"`

	// LargerGapMS bounds the runner's idle sleep (§4.7).
	LargerGapMS int `env:"TICKER_LARGER_GAP_MS" envDefault:"3000" validate:"min=1"`

	// WastageMS is subtracted from computed sleeps to pre-compensate for
	// scheduling overhead (§4.7).
	WastageMS int `env:"TICKER_WASTAGE_MS" envDefault:"0" validate:"min=0"`

	// GMT selects UTC calendar math in the recurrence engine (§4.6) instead
	// of local time. Fixed for the lifetime of a scheduler.
	GMT bool `env:"TICKER_GMT" envDefault:"false"`

	// PastWheelGraceMS bounds how long drained buckets are retained in the
	// past wheel before being pruned (§3).
	PastWheelGraceMS int `env:"TICKER_PAST_WHEEL_GRACE_MS" envDefault:"5000" validate:"min=0"`
}

// Load parses Config from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SlogLevel converts the LOG_LEVEL string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LargerGap returns the runner's idle-sleep bound as a Duration.
func (c *Config) LargerGap() time.Duration {
	return time.Duration(c.LargerGapMS) * time.Millisecond
}

// Wastage returns the scheduling-overhead pre-compensation as a Duration.
func (c *Config) Wastage() time.Duration {
	return time.Duration(c.WastageMS) * time.Millisecond
}

// PastWheelGrace returns the past-wheel prune window as a Duration.
func (c *Config) PastWheelGrace() time.Duration {
	return time.Duration(c.PastWheelGraceMS) * time.Millisecond
}
