package wrapper

import (
	"context"
	"time"

	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/mask"
	"github.com/rise-and-shine/mediadevice/usecase"
)

type loggerWrapper[P, R any] struct {
	base[P, R]
	logger logger.Logger
}

// NewLogger logs every run with its masked params, duration and outcome.
func NewLogger[P, R any](log logger.Logger) usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &loggerWrapper[P, R]{
			base:   base[P, R]{next: next},
			logger: log.Named("usecase.logger").With("operation_id", next.OperationID()),
		}
	}
}

func (w *loggerWrapper[P, R]) Run(ctx context.Context, params P) (R, error) {
	start := time.Now()

	result, err := w.next.Run(ctx, params)

	log := w.logger.
		WithContext(ctx).
		With("execution_time", time.Since(start).String()).
		With("params", mask.StructToOrdMap(params))

	switch {
	case err == nil:
		log.Info("[usecase] operation completed")
	case cancelled(ctx, err):
		log.Debug("[usecase] operation cancelled")
	default:
		log.Errorx(err)
	}

	return result, err
}
