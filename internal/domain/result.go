package domain

// Outcome distinguishes the successful terminal states of a drain.
// Both exit the process with a success status; the distinction matters only
// for logging and for callers embedding the engine.
type Outcome int

const (
	// OutcomeNone is the zero value, present only on error returns.
	OutcomeNone Outcome = iota

	// OutcomeExhausted means a receive window elapsed with zero messages:
	// the queue is drained as far as this invocation can observe.
	OutcomeExhausted

	// OutcomeLimitReached means the configured limit was met before the
	// queue was observed empty.
	OutcomeLimitReached
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeLimitReached:
		return "limit-reached"
	default:
		return "none"
	}
}

// Result reports what a drain run deleted. Nothing else is recorded: there
// is no persisted checkpoint and no audit trail beyond console output.
type Result struct {
	// Deleted is the total number of messages removed. On an error return it
	// holds the partial count accumulated before the failure.
	Deleted int

	// Outcome is the successful terminal state, OutcomeNone on error.
	Outcome Outcome

	// Target is the queue the run operated on.
	Target Target
}
