package app

// Phase represents the lifecycle phase of a drain run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDraining
	PhaseLimitReached
	PhaseExhausted
	PhaseCompleted
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDraining:
		return "Draining"
	case PhaseLimitReached:
		return "LimitReached"
	case PhaseExhausted:
		return "Exhausted"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// canTransition reports whether a phase edge is legal. Valid transitions:
//   - Idle -> Draining
//   - Draining -> LimitReached, Exhausted
//   - LimitReached, Exhausted -> Completed
//
// Receive errors abort the run mid-Draining, so there is no failed edge.
func canTransition(from, to Phase) bool {
	switch from {
	case PhaseIdle:
		return to == PhaseDraining
	case PhaseDraining:
		return to == PhaseLimitReached || to == PhaseExhausted
	case PhaseLimitReached, PhaseExhausted:
		return to == PhaseCompleted
	default:
		return false
	}
}
