package usecase

import (
	"github.com/rcrowley/go-metrics"

	"github.com/rise-and-shine/mediadevice/logger"
)

type options struct {
	logger   logger.Logger
	registry metrics.Registry
}

// Option configures an Executor.
type Option func(*options)

// WithLogger sets the logger used by the executor. Defaults to the global logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsRegistry sets the go-metrics registry the executor reports to.
// Defaults to metrics.DefaultRegistry.
func WithMetricsRegistry(r metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
