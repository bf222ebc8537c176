// Package scheduler provides the two execution contexts an asynchronous use case needs:
// a background scheduler where blocking work runs (Pool) and a delivery scheduler that
// runs callbacks one at a time on a single designated goroutine (Looper).
package scheduler

// Background runs tasks off the caller's goroutine, possibly in parallel.
type Background interface {
	// Submit hands task over for execution. It must not block on the task itself.
	Submit(task func()) error
}

// Delivery runs posted tasks sequentially on its designated goroutine.
type Delivery interface {
	// Post enqueues task for execution on the delivery goroutine.
	Post(task func()) error
}

// BackgroundFunc adapts a function to the Background interface.
type BackgroundFunc func(task func()) error

// Submit calls f(task).
func (f BackgroundFunc) Submit(task func()) error {
	return f(task)
}

// DeliveryFunc adapts a function to the Delivery interface.
type DeliveryFunc func(task func()) error

// Post calls f(task).
func (f DeliveryFunc) Post(task func()) error {
	return f(task)
}

// Immediate runs every task inline on the calling goroutine. It satisfies both
// Background and Delivery and is meant for tests and command line tools.
type Immediate struct{}

// Submit runs task and returns nil.
func (Immediate) Submit(task func()) error {
	task()
	return nil
}

// Post runs task and returns nil.
func (Immediate) Post(task func()) error {
	task()
	return nil
}
