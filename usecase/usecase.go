// Package usecase runs parameterized units of asynchronous work and delivers exactly one
// terminal outcome per invocation.
//
// An Executor binds a UseCase (the operation body) to a background scheduler, where the
// operation runs, and to a delivery scheduler, onto which every callback is marshalled.
// Each call to Execute returns a Handle that can cancel the invocation; cancellation that
// wins the race against completion suppresses both callbacks.
package usecase

import (
	"context"

	"github.com/rise-and-shine/mediadevice/ucdef"
)

// UseCase is the operation body run by an Executor.
type UseCase[P, R any] = ucdef.BackgroundAction[P, R]

// Validator is implemented by parameter objects that can check their own validity.
// A failing Validate makes Execute fail with a PreconditionError.
type Validator interface {
	Validate() error
}

// WrapFunc decorates a UseCase with a cross-cutting concern.
type WrapFunc[P, R any] func(UseCase[P, R]) UseCase[P, R]

// Chain applies wraps to uc. The first wrap becomes the outermost one.
func Chain[P, R any](uc UseCase[P, R], wraps ...WrapFunc[P, R]) UseCase[P, R] {
	for i := len(wraps) - 1; i >= 0; i-- {
		uc = wraps[i](uc)
	}
	return uc
}

// Func adapts a plain function to the UseCase interface.
type Func[P, R any] struct {
	ID string
	Fn func(ctx context.Context, params P) (R, error)
}

// OperationID returns f.ID.
func (f Func[P, R]) OperationID() string {
	return f.ID
}

// Run calls f.Fn.
func (f Func[P, R]) Run(ctx context.Context, params P) (R, error) {
	return f.Fn(ctx, params)
}
