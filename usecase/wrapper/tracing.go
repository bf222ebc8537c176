package wrapper

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/usecase"
)

type tracingWrapper[P, R any] struct {
	base[P, R]
	tracer trace.Tracer
}

// NewTracing starts a span named after the operation id for every run.
func NewTracing[P, R any]() usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &tracingWrapper[P, R]{
			base:   base[P, R]{next: next},
			tracer: otel.Tracer("usecase"),
		}
	}
}

func (w *tracingWrapper[P, R]) Run(ctx context.Context, params P) (R, error) {
	ctx, span := w.tracer.Start(ctx, w.OperationID(),
		trace.WithAttributes(attribute.String("usecase.invocation_id", meta.Find(ctx, meta.InvocationID))),
	)
	defer span.End()

	result, err := w.next.Run(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}
