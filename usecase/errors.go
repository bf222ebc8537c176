package usecase

import (
	"errors"
	"fmt"

	"github.com/code19m/errx"
)

// Error codes.
const (
	CodePreconditionFailed = "PRECONDITION_FAILED"
	CodeOperationFailed    = "OPERATION_FAILED"
	CodeExecutorDisposed   = "EXECUTOR_DISPOSED"
)

// ErrDisposed is returned by Execute once Dispose has been called.
var ErrDisposed = errx.New("[usecase]: executor disposed", errx.WithCode(CodeExecutorDisposed))

// PreconditionError reports missing or invalid parameters. It is returned
// synchronously by Execute and nothing is scheduled.
type PreconditionError struct {
	OperationID string
	Err         error
}

// NewPreconditionError builds a PreconditionError for the given operation.
// A nil cause means the parameters were nil.
func NewPreconditionError(operationID string, cause error) *PreconditionError {
	if cause == nil {
		cause = errx.New("params must not be nil", errx.WithCode(CodePreconditionFailed), errx.WithType(errx.T_Validation))
	}
	return &PreconditionError{OperationID: operationID, Err: cause}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("[usecase.%s]: precondition failed: %s", e.OperationID, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Code returns CodePreconditionFailed.
func (e *PreconditionError) Code() string {
	return CodePreconditionFailed
}

// OperationError reports a failure raised by the operation body. It is delivered
// asynchronously through the error callback.
type OperationError struct {
	OperationID  string
	InvocationID string
	Err          error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("[usecase.%s]: operation failed: %s", e.OperationID, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Code returns CodeOperationFailed.
func (e *OperationError) Code() string {
	return CodeOperationFailed
}

// IsPreconditionError reports whether err is or wraps a PreconditionError.
func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsOperationError reports whether err is or wraps an OperationError.
func IsOperationError(err error) bool {
	var oe *OperationError
	return errors.As(err, &oe)
}
