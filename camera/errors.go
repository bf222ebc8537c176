package camera

import (
	"errors"

	"github.com/code19m/errx"
)

const (
	CodeDeviceUnreachable = "DEVICE_UNREACHABLE"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
)

var (
	// ErrDeviceUnreachable is returned when the device does not answer.
	ErrDeviceUnreachable = errx.New("[camera]: device unreachable", errx.WithCode(CodeDeviceUnreachable))

	// ErrSessionNotFound is returned when the device has no such media session.
	ErrSessionNotFound = errx.New(
		"[camera]: session not found",
		errx.WithCode(CodeSessionNotFound),
		errx.WithType(errx.T_NotFound),
	)
)

type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }

func (e *retryableError) Unwrap() error { return e.err }

// Retryable marks err as transient so RetryRepository tries again.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

// IsRetryable reports whether err was marked with Retryable.
func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}
