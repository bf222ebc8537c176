package usecase

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/code19m/errx"
	"github.com/rcrowley/go-metrics"
	"github.com/samber/lo"

	"github.com/rise-and-shine/mediadevice/logger"
	"github.com/rise-and-shine/mediadevice/meta"
	"github.com/rise-and-shine/mediadevice/scheduler"
)

// Executor runs a UseCase on a background scheduler and delivers each outcome on a
// delivery scheduler. It is safe for concurrent use; invocations are independent.
type Executor[P, R any] struct {
	uc      UseCase[P, R]
	bg      scheduler.Background
	post    scheduler.Delivery
	logger  logger.Logger
	metrics *execMetrics

	mu       sync.Mutex
	live     map[string]*Handle
	disposed bool
}

// New creates an Executor for uc. All three collaborators are required.
func New[P, R any](
	uc UseCase[P, R],
	bg scheduler.Background,
	post scheduler.Delivery,
	opts ...Option,
) (*Executor[P, R], error) {
	if uc == nil {
		return nil, errx.New("[usecase]: use case is required")
	}
	if bg == nil {
		return nil, errx.New("[usecase]: background scheduler is required")
	}
	if post == nil {
		return nil, errx.New("[usecase]: delivery scheduler is required")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Global()
	}
	if o.registry == nil {
		o.registry = metrics.DefaultRegistry
	}

	return &Executor[P, R]{
		uc:      uc,
		bg:      bg,
		post:    post,
		logger:  o.logger.Named("usecase.executor").With("operation_id", uc.OperationID()),
		metrics: newExecMetrics(o.registry, uc.OperationID()),
		live:    make(map[string]*Handle),
	}, nil
}

// OperationID returns the id of the wrapped use case.
func (e *Executor[P, R]) OperationID() string {
	return e.uc.OperationID()
}

// Execute is ExecuteContext with a background parent context.
func (e *Executor[P, R]) Execute(params P, onResult func(R), onError func(error)) (*Handle, error) {
	return e.ExecuteContext(context.Background(), params, onResult, onError)
}

// ExecuteContext validates params, schedules the use case on the background scheduler
// and returns immediately. The outcome is posted to the delivery scheduler, where at
// most one of onResult or onError is called; none is called if the invocation is
// cancelled first. Cancelling parent cancels the invocation.
//
// A PreconditionError is returned when params are nil or fail their own validation.
// ErrDisposed is returned after Dispose. In both cases nothing is scheduled.
func (e *Executor[P, R]) ExecuteContext(
	parent context.Context,
	params P,
	onResult func(R),
	onError func(error),
) (*Handle, error) {
	if err := e.checkParams(params); err != nil {
		e.metrics.rejected.Inc(1)
		return nil, err
	}

	ctx, cancel := context.WithCancel(parent)
	h := newHandle(e.uc.OperationID(), cancel)
	h.release = func(h *Handle, s State) {
		e.mu.Lock()
		delete(e.live, h.id)
		e.mu.Unlock()
		e.metrics.terminal(s)
	}

	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		cancel()
		e.metrics.rejected.Inc(1)
		return nil, ErrDisposed
	}
	h.state.Store(int32(StateScheduled))
	e.live[h.id] = h
	e.mu.Unlock()

	// ctx is cancelled on every terminal transition, so the callback always runs
	// and is a no-op unless parent was cancelled first.
	context.AfterFunc(ctx, func() { h.Cancel() })

	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
		meta.OperationID:  e.uc.OperationID(),
		meta.InvocationID: h.id,
	})

	e.metrics.executed.Inc(1)

	err := e.bg.Submit(func() { e.run(ctx, h, params, onResult, onError) })
	if err != nil {
		if h.transition(StateScheduled, StateFailed) {
			cancel()
			h.finish(StateFailed)
		}
		e.logger.With("invocation_id", h.id).Warnx(err)
		return nil, errx.Wrap(err)
	}

	return h, nil
}

// Dispose cancels every in-flight invocation and makes later Execute calls fail with
// ErrDisposed. It is idempotent.
func (e *Executor[P, R]) Dispose() {
	e.mu.Lock()
	e.disposed = true
	handles := lo.Values(e.live)
	e.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}

	if len(handles) > 0 {
		e.logger.Debugf("[usecase.executor] disposed with %d in-flight invocations", len(handles))
	}
}

// InFlight returns the number of invocations that have not terminated yet.
func (e *Executor[P, R]) InFlight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.live)
}

// run executes on the background scheduler.
func (e *Executor[P, R]) run(ctx context.Context, h *Handle, params P, onResult func(R), onError func(error)) {
	if !h.transition(StateScheduled, StateRunning) {
		return
	}

	start := time.Now()
	result, err := e.runWithRecovery(ctx, params)
	e.metrics.duration.UpdateSince(start)

	if err != nil {
		err = &OperationError{OperationID: e.uc.OperationID(), InvocationID: h.id, Err: err}
	}

	postErr := e.post.Post(func() { e.deliver(h, result, err, onResult, onError) })
	if postErr != nil {
		// The delivery scheduler is gone; the outcome cannot reach the caller.
		if h.transition(StateRunning, StateFailed) {
			h.cancel()
			h.finish(StateFailed)
		}
		e.logger.WithContext(ctx).With("outcome_error", err).Errorx(postErr)
	}
}

// deliver executes on the delivery scheduler. The CAS decides between the outcome
// and a concurrent Cancel.
func (e *Executor[P, R]) deliver(h *Handle, result R, err error, onResult func(R), onError func(error)) {
	target := StateCompleted
	if err != nil {
		target = StateFailed
	}
	if !h.transition(StateRunning, target) {
		return
	}

	defer h.finish(target)
	h.cancel()

	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onResult != nil {
		onResult(result)
	}
}

func (e *Executor[P, R]) runWithRecovery(ctx context.Context, params P) (_ R, err error) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]
			err = errx.New("panic recovered in use case executor", errx.WithDetails(errx.D{
				"stack_trace":  string(stackTrace),
				"panic_values": fmt.Sprintf("%v", r),
			}))
		}
	}()

	return e.uc.Run(ctx, params)
}

func (e *Executor[P, R]) checkParams(params P) error {
	if isNil(params) {
		return NewPreconditionError(e.uc.OperationID(), nil)
	}

	if v, ok := any(params).(Validator); ok {
		if err := v.Validate(); err != nil {
			return NewPreconditionError(e.uc.OperationID(), err)
		}
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
