package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/code19m/errx"
	"github.com/google/uuid"
)

// Handle controls a single invocation started by Executor.Execute.
//
// The state only moves forward. Every transition into a terminal state is a
// compare-and-swap, so exactly one of completion, failure or cancellation wins.
type Handle struct {
	id          string
	operationID string

	state  atomic.Int32
	cancel context.CancelFunc

	// release deregisters the handle from its executor; set before scheduling.
	release func(h *Handle, s State)

	doneOnce sync.Once
	done     chan struct{}
}

func newHandle(operationID string, cancel context.CancelFunc) *Handle {
	h := &Handle{
		id:          uuid.NewString(),
		operationID: operationID,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	h.state.Store(int32(StateCreated))
	return h
}

// ID returns the invocation id.
func (h *Handle) ID() string {
	return h.id
}

// OperationID returns the id of the use case this invocation belongs to.
func (h *Handle) OperationID() string {
	return h.operationID
}

// State returns the current state of the invocation.
func (h *Handle) State() State {
	return State(h.state.Load())
}

// Done returns a channel closed once the invocation reached a terminal state
// and its callback, if any, has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel requests cancellation. It reports whether this call moved the invocation
// to CANCELLED; false means it had already terminated and its outcome stands.
// Neither callback fires after a successful Cancel.
func (h *Handle) Cancel() bool {
	for {
		s := h.State()
		if s.Terminal() {
			return false
		}
		if h.transition(s, StateCancelled) {
			h.cancel()
			h.finish(StateCancelled)
			return true
		}
	}
}

// Wait blocks until the invocation terminates or ctx is done.
func (h *Handle) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-h.done:
		return outcomeOf(h.State()), nil
	case <-ctx.Done():
		return OutcomeNone, errx.Wrap(ctx.Err())
	}
}

func (h *Handle) transition(from, to State) bool {
	return h.state.CompareAndSwap(int32(from), int32(to))
}

// finish runs the terminal bookkeeping exactly once.
func (h *Handle) finish(s State) {
	h.doneOnce.Do(func() {
		if h.release != nil {
			h.release(h, s)
		}
		close(h.done)
	})
}
