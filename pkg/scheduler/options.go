package scheduler

import (
	"log/slog"
	"time"
)

// Config holds scheduler configuration.
type Config struct {
	Logger *slog.Logger

	// Now supplies the wall clock; tests substitute a fixed instant.
	Now func() time.Time

	// FireTimeout bounds the store and notifier work done for one fire.
	FireTimeout time.Duration

	// SweepSpec is a cron expression for the reconciliation sweep.
	// Empty disables the sweep.
	SweepSpec string
}

func defaultConfig() Config {
	return Config{
		Logger:      slog.Default(),
		Now:         time.Now,
		FireTimeout: 30 * time.Second,
	}
}

// Option modifies Config.
type Option interface {
	Apply(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) Apply(c *Config) { f(c) }

// WithLogger sets the logger used for fire handling and recovery.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *Config) {
		c.Logger = l
	})
}

// WithClock substitutes the wall-clock source.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *Config) {
		c.Now = now
	})
}

// WithFireTimeout bounds the work done for a single fire.
// Zero disables the bound.
func WithFireTimeout(d time.Duration) Option {
	return optionFunc(func(c *Config) {
		c.FireTimeout = d
	})
}

// WithSweep enables the periodic reconciliation sweep on a cron spec,
// e.g. "@hourly". The sweep re-arms any active reminder whose timer was
// lost, as a backstop behind replace-on-arm and the fire-time re-read.
func WithSweep(spec string) Option {
	return optionFunc(func(c *Config) {
		c.SweepSpec = spec
	})
}
