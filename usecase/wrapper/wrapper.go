// Package wrapper provides middleware for use case operation bodies.
//
// Each constructor returns a usecase.WrapFunc that can be combined with usecase.Chain.
// Wrappers run on the background scheduler as part of the operation and keep the
// wrapped operation id.
package wrapper

import (
	"context"
	"errors"

	"github.com/rise-and-shine/mediadevice/usecase"
)

// base holds the wrapped use case and forwards its id.
type base[P, R any] struct {
	next usecase.UseCase[P, R]
}

func (b base[P, R]) OperationID() string {
	return b.next.OperationID()
}

// cancelled reports whether err is the run observing cancellation of its own
// invocation rather than a failure. Deadlines still count as failures.
func cancelled(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) && ctx.Err() != nil
}
