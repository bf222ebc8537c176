package wrapper

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/alert"
	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/usecase"
)

const (
	alertTimeout = 3 * time.Second
)

type alertWrapper[P, R any] struct {
	base[P, R]
	logger   logger.Logger
	provider alert.Provider
}

// NewAlert reports failures of the wrapped operation to provider. Validation errors
// and cancellations are not reported. Alerts are sent asynchronously and never change the result.
func NewAlert[P, R any](log logger.Logger, provider alert.Provider) usecase.WrapFunc[P, R] {
	return func(next usecase.UseCase[P, R]) usecase.UseCase[P, R] {
		return &alertWrapper[P, R]{
			base:     base[P, R]{next: next},
			logger:   log.Named("usecase.alerting"),
			provider: provider,
		}
	}
}

func (w *alertWrapper[P, R]) Run(ctx context.Context, params P) (R, error) {
	result, err := w.next.Run(ctx, params)
	if err == nil || cancelled(ctx, err) {
		return result, err
	}

	e := errx.AsErrorX(err)
	if e.Type() == errx.T_Validation {
		return result, err
	}

	details := make(map[string]string)
	for k, v := range meta.ExtractMetaFromContext(ctx) {
		details[string(k)] = v
	}

	alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)

	go func() {
		defer cancel()

		sendErr := w.provider.SendError(alertCtx, e.Code(), err.Error(), "usecase: "+w.OperationID(), details)
		if sendErr != nil {
			w.logger.With("alert_send_error", sendErr.Error()).Warn("failed to send error alert")
		}
	}()

	return result, err
}
