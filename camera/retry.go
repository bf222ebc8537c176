package camera

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/code19m/errx"
	"github.com/creasty/defaults"

	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/val"
)

// RetryConfig configures RetryRepository.
type RetryConfig struct {
	// Attempts is the total number of calls, the first one included.
	Attempts uint `yaml:"attempts" default:"3" validate:"min=1,max=20"`

	// Delay is the base delay between attempts; it grows exponentially.
	Delay time.Duration `yaml:"delay" default:"200ms"`

	// MaxJitter is the maximum random jitter added to each delay.
	MaxJitter time.Duration `yaml:"max_jitter" default:"100ms"`
}

// RetryRepository retries calls of the wrapped Repository that fail with errors
// marked by Retryable. Other errors are returned after the first attempt.
type RetryRepository struct {
	next   Repository
	cfg    RetryConfig
	logger logger.Logger
}

// NewRetryRepository wraps next with the retry policy in cfg.
func NewRetryRepository(next Repository, cfg RetryConfig, log logger.Logger) (*RetryRepository, error) {
	if next == nil {
		return nil, errx.New("[camera.retry]: repository is required")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if err := val.ValidateSchema(cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &RetryRepository{
		next:   next,
		cfg:    cfg,
		logger: log.Named("camera.retry"),
	}, nil
}

// SendSpsPps calls the wrapped repository, retrying transient failures.
func (r *RetryRepository) SendSpsPps(ctx context.Context, device Device, sessionID int) (bool, error) {
	ok, err := retry.DoWithData(
		func() (bool, error) {
			return r.next.SendSpsPps(ctx, device, sessionID)
		},
		retry.Attempts(r.cfg.Attempts),
		retry.Delay(r.cfg.Delay),
		retry.MaxJitter(r.cfg.MaxJitter),
		retry.RetryIf(IsRetryable),
		retry.LastErrorOnly(true), // only return the last error
		retry.OnRetry(func(n uint, err error) {
			r.logger.WithContext(ctx).With(
				"attempt", n+1,
				"error", err.Error(),
			).Warn("[camera.retry] send sps/pps failed, retrying")
		}),
		retry.Context(ctx), // response to context cancellation
	)
	if err != nil {
		// returned as is so callers can match the repository's own errors
		return false, err
	}
	return ok, nil
}
