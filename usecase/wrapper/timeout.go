package wrapper

import (
	"context"
	"time"

	"github.com/rise-and-shine/mediadevice/usecase"
)

type timeoutWrapper[P, R any] struct {
	base[P, R]
	timeout time.Duration
}

// NewTimeout bounds each run of the wrapped operation by timeout.
func NewTimeout[P, R any](timeout time.Duration) usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &timeoutWrapper[P, R]{base: base[P, R]{next: next}, timeout: timeout}
	}
}

func (w *timeoutWrapper[P, R]) Run(ctx context.Context, params P) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	return w.next.Run(ctx, params)
}
