package scheduler

import "github.com/code19m/errx"

const (
	CodeSchedulerStopped = "SCHEDULER_STOPPED"
	CodeQueueFull        = "SCHEDULER_QUEUE_FULL"
)

var (
	// ErrSchedulerStopped is returned when submitting to a stopped scheduler.
	ErrSchedulerStopped = errx.New("[scheduler]: scheduler stopped", errx.WithCode(CodeSchedulerStopped))

	// ErrQueueFull is returned when the pool queue cannot take more tasks.
	ErrQueueFull = errx.New("[scheduler.pool]: queue is full", errx.WithCode(CodeQueueFull), errx.WithType(errx.T_Throttling))

	// ErrAlreadyStarted is returned by Start when called twice.
	ErrAlreadyStarted = errx.New("[scheduler]: already started")
)
