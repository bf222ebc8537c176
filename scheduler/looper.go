package scheduler

import (
	"context"
	"sync"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/logger"
)

// Looper is a Delivery backed by one goroutine draining an unbounded FIFO queue,
// the equivalent of a UI main loop. Posted tasks never run concurrently with each
// other and run in the order they were posted.
type Looper struct {
	logger logger.Logger

	mu      sync.Mutex
	queue   []func()
	started bool
	stopped bool

	wake chan struct{}
	done chan struct{}
}

// NewLooper creates a Looper. Call Start to begin draining.
func NewLooper(log logger.Logger) *Looper {
	if log == nil {
		log = logger.NewNop()
	}
	return &Looper{
		logger: log.Named("scheduler.looper"),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start launches the loop goroutine.
func (l *Looper) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return ErrSchedulerStopped
	}
	if l.started {
		return ErrAlreadyStarted
	}
	l.started = true

	go l.loop()
	return nil
}

// Post appends task to the queue. It fails only after Stop.
func (l *Looper) Post(task func()) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrSchedulerStopped
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	l.signal()
	return nil
}

// Stop rejects new tasks, lets the loop drain what was already posted and waits
// for it to exit or for ctx to be done.
func (l *Looper) Stop(ctx context.Context) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil
	}
	l.stopped = true
	started := l.started
	l.mu.Unlock()

	if !started {
		return nil
	}

	l.signal()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return errx.Wrap(ctx.Err())
	}
}

func (l *Looper) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Looper) loop() {
	defer close(l.done)

	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		stopped := l.stopped
		l.mu.Unlock()

		for _, task := range batch {
			runTask(l.logger, task)
		}

		if len(batch) > 0 {
			continue
		}
		if stopped {
			return
		}
		<-l.wake
	}
}
