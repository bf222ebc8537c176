package scheduler

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/mediadevice/logger"
)

// Pool is a fixed-size worker pool implementing Background.
// Tasks submitted before Start wait in the queue until workers are running.
type Pool struct {
	cfg    PoolConfig
	logger logger.Logger

	mu      sync.RWMutex
	tasks   chan func()
	started bool
	stopped bool

	wg sync.WaitGroup
}

// NewPool creates a new Pool instance. Zero config fields take their defaults.
func NewPool(cfg PoolConfig, log logger.Logger) (*Pool, error) {
	if err := preparePoolConfig(&cfg); err != nil {
		return nil, errx.Wrap(err)
	}
	if log == nil {
		return nil, errx.New("[scheduler.pool]: logger is required")
	}

	return &Pool{
		cfg:    cfg,
		logger: log.Named("scheduler.pool"),
		tasks:  make(chan func(), cfg.QueueSize),
	}, nil
}

// Start launches the worker goroutines.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrSchedulerStopped
	}
	if p.started {
		return ErrAlreadyStarted
	}
	p.started = true

	for i := range p.cfg.Concurrency {
		p.wg.Add(1)
		go p.work(i)
	}

	p.logger.With(
		"concurrency", p.cfg.Concurrency,
		"queue_size", p.cfg.QueueSize,
	).Info("[scheduler.pool] started")

	return nil
}

// Submit enqueues task without blocking.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrSchedulerStopped
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop rejects new tasks and waits for queued and running ones to finish,
// bounded by ctx and the configured ShutdownTimeout.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.tasks)
	started := p.started
	p.mu.Unlock()

	if !started {
		return nil
	}

	p.logger.Info("[scheduler.pool] stopping")

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(p.cfg.ShutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
		p.logger.Info("[scheduler.pool] stopped")
		return nil
	case <-timer.C:
		return errx.New("[scheduler.pool]: shutdown timeout exceeded")
	case <-ctx.Done():
		return errx.Wrap(ctx.Err())
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		runTask(p.logger.With("worker_id", id), task)
	}
}

// runTask keeps a panicking task from killing its goroutine.
func runTask(log logger.Logger, task func()) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			log.
				With("stack_trace", string(stackTrace)).
				With("panic_values", fmt.Sprintf("%v", r)).
				Error("[scheduler] panic recovered in task")
		}
	}()

	task()
}
