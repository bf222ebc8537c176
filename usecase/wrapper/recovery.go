package wrapper

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/usecase"
)

type recoveryWrapper[P, R any] struct {
	base[P, R]
	logger logger.Logger
}

// NewRecovery turns a panic in the wrapped operation into an error.
func NewRecovery[P, R any](log logger.Logger) usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &recoveryWrapper[P, R]{
			base:   base[P, R]{next: next},
			logger: log.Named("usecase.recovery").With("operation_id", next.OperationID()),
		}
	}
}

func (w *recoveryWrapper[P, R]) Run(ctx context.Context, params P) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			w.logger.
				WithContext(ctx).
				With("stack_trace", string(stackTrace)).
				With("panic_values", fmt.Sprintf("%v", r)).
				Error("panic recovered in recovery wrapper")

			var zero R
			result = zero
			err = errx.New("panic recovered in recovery wrapper", errx.WithDetails(errx.D{
				"stack_trace":  string(stackTrace),
				"panic_values": fmt.Sprintf("%v", r),
			}))
		}
	}()

	return w.next.Run(ctx, params)
}
