// Package alert reports operation failures to a monitoring backend.
//
// A Provider is selected by Config.Provider: "noop" drops alerts, "log" writes them
// through the logger and "sentinel" sends them to a Sentinel service over gRPC.
package alert

import (
	"context"
	"time"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/samber/lo"

	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/val"
)

const (
	ProviderNoop     = "noop"
	ProviderLog      = "log"
	ProviderSentinel = "sentinel"
)

// Config defines configuration options for the alert package.
type Config struct {
	// Provider selects the alert backend.
	Provider string `yaml:"provider" default:"noop" validate:"oneof=noop log sentinel"`

	// SentinelHost is the hostname or IP address of the Sentinel service.
	SentinelHost string `yaml:"sentinel_host" validate:"required_if=Provider sentinel"`

	// SentinelPort is the port number of the Sentinel service.
	SentinelPort int `yaml:"sentinel_port" validate:"required_if=Provider sentinel"`

	// SendTimeout bounds a single SendError call.
	SendTimeout time.Duration `yaml:"send_timeout" default:"3s"`
}

// Provider defines the interface for sending error alerts.
type Provider interface {
	// SendError sends an error alert.
	// errCode identifies the error, msg is human readable, operation names where it happened
	// and details carries additional context.
	SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error
}

// NewProvider builds the Provider selected by cfg. Zero config fields take their defaults.
func NewProvider(cfg Config, log logger.Logger) (Provider, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if err := val.ValidateSchema(cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if log == nil {
		log = logger.NewNop()
	}

	switch cfg.Provider {
	case ProviderLog:
		return &logProvider{logger: log.Named("alert")}, nil
	case ProviderSentinel:
		return NewSentinelProvider(cfg)
	default:
		return noOpProvider{}, nil
	}
}

type noOpProvider struct{}

func (noOpProvider) SendError(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}

// logProvider writes alerts as error log entries. Useful for local runs.
type logProvider struct {
	logger logger.Logger
}

func (p *logProvider) SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error {
	p.logger.WithContext(ctx).With(
		"code", errCode,
		"operation", operation,
		"details", withServiceDetails(details),
	).Error("[alert] " + msg)
	return nil
}

// withServiceDetails returns a copy of details with the service version added.
func withServiceDetails(details map[string]string) map[string]string {
	_, version := meta.Service()
	return lo.Assign(details, map[string]string{"service_version": version})
}
