package usecase

import (
	"github.com/rcrowley/go-metrics"
)

// execMetrics holds the per-operation instruments. Names are
// usecase.<operation_id>.<instrument>.
type execMetrics struct {
	executed  metrics.Counter
	completed metrics.Counter
	failed    metrics.Counter
	cancelled metrics.Counter
	rejected  metrics.Counter
	duration  metrics.Timer
}

func newExecMetrics(r metrics.Registry, operationID string) *execMetrics {
	prefix := "usecase." + operationID + "."
	return &execMetrics{
		executed:  metrics.GetOrRegisterCounter(prefix+"executed", r),
		completed: metrics.GetOrRegisterCounter(prefix+"completed", r),
		failed:    metrics.GetOrRegisterCounter(prefix+"failed", r),
		cancelled: metrics.GetOrRegisterCounter(prefix+"cancelled", r),
		rejected:  metrics.GetOrRegisterCounter(prefix+"rejected", r),
		duration:  metrics.GetOrRegisterTimer(prefix+"duration", r),
	}
}

func (m *execMetrics) terminal(s State) {
	switch s { //nolint:exhaustive // only terminal states are counted
	case StateCompleted:
		m.completed.Inc(1)
	case StateFailed:
		m.failed.Inc(1)
	case StateCancelled:
		m.cancelled.Inc(1)
	}
}
