package scheduler

import (
	"time"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"

	"github.com/rise-and-shine/mediadevice/val"
)

// PoolConfig configures the Pool instance.
type PoolConfig struct {
	// Concurrency is the number of worker goroutines.
	// Default: 4.
	Concurrency int `yaml:"concurrency" default:"4" validate:"min=1,max=1000"`

	// QueueSize is the number of submitted tasks that may wait for a free worker.
	// Submit fails with ErrQueueFull beyond that.
	// Default: 256.
	QueueSize int `yaml:"queue_size" default:"256" validate:"min=1,max=100000"`

	// ShutdownTimeout is how long Stop waits for queued and running tasks.
	// Default: 30s.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

func preparePoolConfig(cfg *PoolConfig) error {
	if err := defaults.Set(cfg); err != nil {
		return errx.Wrap(err)
	}
	return errx.Wrap(val.ValidateSchema(cfg))
}
