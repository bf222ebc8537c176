package alert

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/logger"
)

//nolint:gochecknoglobals // global alert provider singleton
var (
	global  atomic.Value // stores Provider
	setOnce sync.Once
)

// SetGlobal builds the global provider from cfg. Only the first call has effect;
// later calls return an error.
func SetGlobal(cfg Config, log logger.Logger) error {
	err := errx.New("[alert]: SetGlobal can only be called once")

	setOnce.Do(func() {
		var p Provider
		p, err = NewProvider(cfg, log)
		if err != nil {
			err = errx.Wrap(err)
			return
		}
		global.Store(&p)
	})

	return err
}

// Global returns the global provider, a no-op one until SetGlobal succeeded.
func Global() Provider {
	if p, ok := global.Load().(*Provider); ok {
		return *p
	}
	return noOpProvider{}
}

// SendError sends an alert through the global provider.
func SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error {
	return Global().SendError(ctx, errCode, msg, operation, details)
}
