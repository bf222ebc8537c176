package usecase

// State is the lifecycle state of a single invocation.
type State int32

const (
	StateCreated State = iota
	StateScheduled
	StateRunning
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateScheduled:
		return "SCHEDULED"
	case StateRunning:
		return "RUNNING"
	case StateCompleted:
		return "COMPLETED"
	case StateFailed:
		return "FAILED"
	case StateCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transition is possible from s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// Outcome is the terminal result of an invocation as seen by Handle.Wait.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeFailed
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func outcomeOf(s State) Outcome {
	switch s { //nolint:exhaustive // non-terminal states have no outcome
	case StateCompleted:
		return OutcomeCompleted
	case StateFailed:
		return OutcomeFailed
	case StateCancelled:
		return OutcomeCancelled
	default:
		return OutcomeNone
	}
}
