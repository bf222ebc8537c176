package tracing

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// GetStartingTraceID returns the trace id of the span in ctx. Without a valid span,
// for example when tracing is disabled, it returns a generated "man-" prefixed id so
// logs can still be correlated.
func GetStartingTraceID(ctx context.Context) string {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID()
	if traceID.IsValid() {
		return traceID.String()
	}

	return "man-" + uuid.NewString()
}
