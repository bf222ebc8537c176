// Package tracing initializes OpenTelemetry tracing for the process and exports spans
// to an OTLP collector over gRPC.
package tracing

import (
	"context"
	"net"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.23.1"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/val"
)

// InitGlobalTracer installs a global tracer provider built from cfg and returns its
// shutdown function. Service name and version come from meta.Service.
//
// If cfg.Disable is true a no-op provider is installed.
func InitGlobalTracer(cfg Config) (func(context.Context) error, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if err := val.ValidateSchema(cfg); err != nil {
		return nil, errx.Wrap(err)
	}

	if cfg.Disable {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptrace.New(
		context.Background(),
		otlptracegrpc.NewClient(
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(net.JoinHostPort(cfg.ExporterHost, cast.ToString(cfg.ExporterPort))),
			otlptracegrpc.WithReconnectionPeriod(reconnectionPeriod),
		),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRate))),
		trace.WithBatcher(exporter,
			trace.WithMaxQueueSize(maxQueueSize),
			trace.WithBatchTimeout(batchTimeout),
			trace.WithMaxExportBatchSize(maxExportBatchSize),
		),
		trace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, resourceAttrs(cfg)...)),
	)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		return errx.Wrap(tp.Shutdown(ctx))
	}, nil
}

func resourceAttrs(cfg Config) []attribute.KeyValue {
	name, version := meta.Service()

	attrs := make([]attribute.KeyValue, 0, len(cfg.Tags)+2)
	for k, v := range cfg.Tags {
		attrs = append(attrs, attribute.String(k, v))
	}
	return append(attrs,
		semconv.ServiceNameKey.String(name),
		semconv.ServiceVersionKey.String(version),
	)
}
