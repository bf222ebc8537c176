package tracing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/mediadevice/tracing"
)

func TestInitGlobalTracer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     tracing.Config
		wantErr bool
	}{
		{name: "disabled", cfg: tracing.Config{Disable: true}},
		{name: "exporter required when enabled", cfg: tracing.Config{}, wantErr: true},
		{name: "sample rate out of range", cfg: tracing.Config{Disable: true, SampleRate: 2}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shutdown, err := tracing.InitGlobalTracer(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestGetStartingTraceID(t *testing.T) {
	id := tracing.GetStartingTraceID(context.Background())
	assert.True(t, strings.HasPrefix(id, "man-"), id)
	assert.NotEqual(t, id, tracing.GetStartingTraceID(context.Background()))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", tracing.GetStartingTraceID(ctx))
}
