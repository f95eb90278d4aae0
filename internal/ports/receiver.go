package ports

import (
	"context"
	"time"

	"github.com/sbtools/sbdrain/internal/domain"
)

// BusClient owns a connection to a Service Bus namespace and hands out
// receivers scoped to one subscription queue.
type BusClient interface {
	// OpenReceiver creates a receiver for the target, selecting the
	// dead-letter sub-queue when the target asks for it. Receivers operate
	// in receive-and-delete mode: receipt removes the message.
	OpenReceiver(target domain.Target) (BatchReceiver, error)

	// Close releases the connection. Must be called on every exit path.
	Close(ctx context.Context) error
}

// BatchReceiver pulls bounded message batches from one subscription queue.
// Receiving a message deletes it; there is no acknowledge step and no way to
// put a received message back.
type BatchReceiver interface {
	// ReceiveBatch requests up to maxMessages, waiting at most maxWait for
	// the first one, and returns how many arrived (and were thereby
	// deleted). A zero count with a nil error means the wait window elapsed
	// with the queue empty.
	ReceiveBatch(ctx context.Context, maxMessages int, maxWait time.Duration) (int, error)

	// Close releases the receiver link. Must be called on every exit path.
	Close(ctx context.Context) error
}
