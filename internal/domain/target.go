package domain

// Queue selects which sub-queue of a subscription a drain operates on.
type Queue int

const (
	// QueueDeadLetter is the dead-letter sub-queue. The default drain target;
	// purging it is total and ignores any limit.
	QueueDeadLetter Queue = iota

	// QueueActive is the live subscription queue.
	QueueActive
)

// String returns a human-readable representation of the queue selector.
func (q Queue) String() string {
	switch q {
	case QueueDeadLetter:
		return "dead-letter"
	case QueueActive:
		return "active"
	default:
		return "unknown"
	}
}

// Target identifies the subscription queue a drain operates on.
// Existence is not verified locally; the service rejects an unknown
// topic/subscription at receive time.
type Target struct {
	Topic        string
	Subscription string
	Queue        Queue
}

// NewTarget builds a Target, requiring non-empty topic and subscription names.
func NewTarget(topic, subscription string, queue Queue) (Target, error) {
	if topic == "" || subscription == "" {
		return Target{}, ErrMissingTarget
	}
	return Target{Topic: topic, Subscription: subscription, Queue: queue}, nil
}

// Path returns the namespace-relative path of the target for log output.
func (t Target) Path() string {
	return t.Topic + "/" + t.Subscription
}
