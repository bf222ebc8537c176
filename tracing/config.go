package tracing

import "time"

const (
	reconnectionPeriod = 30 * time.Second
	maxQueueSize       = 10000
	batchTimeout       = 5 * time.Second
	maxExportBatchSize = 1024
)

// Config holds the configuration for the tracing system.
type Config struct {
	// Disable installs a no-op tracer provider. No spans are exported.
	Disable bool `yaml:"disable" default:"false"`

	// SampleRate is the fraction of root traces sampled, between 0 and 1.
	SampleRate float64 `yaml:"sample_rate" default:"1" validate:"gte=0,lte=1"`

	// ExporterHost is the hostname or IP address of the OTLP collector.
	ExporterHost string `yaml:"exporter_host" validate:"required_unless=Disable true"`

	// ExporterPort is the port number of the OTLP collector.
	ExporterPort int `yaml:"exporter_port" validate:"required_unless=Disable true"`

	// Tags are added as resource attributes to all spans.
	Tags map[string]string `yaml:"tags"`
}
