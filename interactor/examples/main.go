// Command examples wires the SendSpsPps use case with the full runtime stack: config,
// logging, tracing, alerting, a worker pool, a delivery looper and a retrying
// repository. The repository is a loopback that simulates a device.
//
// Run from this directory with ENVIRONMENT=local.
package main

import (
	"context"
	"math/rand/v2"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/alert"
	"github.com/rise-and-shine/mediadevice/camera"
	"github.com/rise-and-shine/mediadevice/cfgloader"
	"github.com/rise-and-shine/mediadevice/interactor"
	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/scheduler"
	"github.com/rise-and-shine/mediadevice/tracing"
	"github.com/rise-and-shine/mediadevice/usecase"
	"github.com/rise-and-shine/mediadevice/usecase/wrapper"
)

type Config struct {
	ServiceName    string `yaml:"service_name"    validate:"required"`
	ServiceVersion string `yaml:"service_version" default:"dev"`

	Logger  logger.Config        `yaml:"logger"`
	Tracing tracing.Config       `yaml:"tracing"`
	Alert   alert.Config         `yaml:"alert"`
	Pool    scheduler.PoolConfig `yaml:"pool"`
	Retry   camera.RetryConfig   `yaml:"retry"`

	// OperationTimeout bounds a single SendSpsPps run.
	OperationTimeout time.Duration `yaml:"operation_timeout" default:"5s"`

	Devices []camera.Device `yaml:"devices" validate:"required,dive"`
}

func main() {
	cfg := cfgloader.MustLoad[Config]()

	meta.SetServiceInfo(cfg.ServiceName, cfg.ServiceVersion)
	logger.SetGlobal(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.Fatalx(err)
	}
}

func run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Named("examples")

	shutdownTracer, err := tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		return errx.Wrap(err)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	alerts, err := alert.NewProvider(cfg.Alert, log)
	if err != nil {
		return errx.Wrap(err)
	}

	pool, err := scheduler.NewPool(cfg.Pool, log)
	if err != nil {
		return errx.Wrap(err)
	}
	if err = pool.Start(); err != nil {
		return errx.Wrap(err)
	}
	defer func() { _ = pool.Stop(context.Background()) }()

	looper := scheduler.NewLooper(log)
	if err = looper.Start(); err != nil {
		return errx.Wrap(err)
	}
	defer func() { _ = looper.Stop(context.Background()) }()

	repo, err := camera.NewRetryRepository(newLoopbackRepository(), cfg.Retry, log)
	if err != nil {
		return errx.Wrap(err)
	}

	type (
		P = *interactor.SendSpsPpsParams
		R = bool
	)
	exec, err := interactor.NewSendSpsPpsExecutor(repo, pool, looper,
		[]usecase.WrapFunc[P, R]{
			wrapper.NewMetaInject[P, R](),
			wrapper.NewTracing[P, R](),
			wrapper.NewLogger[P, R](log),
			wrapper.NewAlert[P, R](log, alerts),
			wrapper.NewRecovery[P, R](log),
			wrapper.NewTimeout[P, R](cfg.OperationTimeout),
		},
		usecase.WithLogger(log),
	)
	if err != nil {
		return errx.Wrap(err)
	}
	defer exec.Dispose()

	var wg sync.WaitGroup
	for i, device := range cfg.Devices {
		wg.Add(1)
		_, err = exec.ExecuteContext(ctx, interactor.ParamsFor(device, i+1),
			func(ok bool) {
				defer wg.Done()
				log.With("device_id", device.ID, "acknowledged", ok).Info("[examples] sps/pps sent")
			},
			func(err error) {
				defer wg.Done()
				log.With("device_id", device.ID).Errorx(err)
			},
		)
		if err != nil {
			wg.Done()
			log.With("device_id", device.ID).Warnx(err)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Info("[examples] interrupted")
	}

	return nil
}

// loopbackRepository acknowledges every request after a short delay and fails
// transiently now and then, the way a busy device does.
type loopbackRepository struct{}

func newLoopbackRepository() camera.Repository {
	return loopbackRepository{}
}

func (loopbackRepository) SendSpsPps(ctx context.Context, device camera.Device, sessionID int) (bool, error) {
	select {
	case <-time.After(time.Duration(50+rand.IntN(100)) * time.Millisecond): //nolint:gosec // simulation only
	case <-ctx.Done():
		return false, errx.Wrap(ctx.Err())
	}

	if rand.IntN(4) == 0 { //nolint:gosec // simulation only
		return false, camera.Retryable(errx.Wrap(camera.ErrDeviceUnreachable, errx.WithDetails(errx.D{
			"device_id":  device.ID,
			"session_id": sessionID,
		})))
	}

	return true, nil
}
