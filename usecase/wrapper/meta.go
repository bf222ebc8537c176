package wrapper

import (
	"context"

	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/tracing"
	"github.com/rise-and-shine/mediadevice/usecase"
)

type metaInjectWrapper[P, R any] struct {
	base[P, R]
}

// NewMetaInject adds the service name and version to the run context, and a trace id
// unless one is already present.
func NewMetaInject[P, R any]() usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &metaInjectWrapper[P, R]{base: base[P, R]{next: next}}
	}
}

func (w *metaInjectWrapper[P, R]) Run(ctx context.Context, params P) (R, error) {
	name, version := meta.Service()

	traceID := meta.Find(ctx, meta.TraceID)
	if traceID == "" {
		traceID = tracing.GetStartingTraceID(ctx)
	}

	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{ //nolint:exhaustive // only service keys
		meta.TraceID:        traceID,
		meta.ServiceName:    name,
		meta.ServiceVersion: version,
	})

	return w.next.Run(ctx, params)
}
