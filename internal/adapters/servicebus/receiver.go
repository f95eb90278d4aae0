package servicebus

import (
	"context"
	"errors"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"github.com/sbtools/sbdrain/pkg/log"
)

// batchReceiver adapts an azservicebus.Receiver to the engine's batch
// contract: one receive call per batch, bounded by a wait window. In
// receive-and-delete mode delivery is deletion, so the count of messages
// received is the count deleted.
type batchReceiver struct {
	inner  *azservicebus.Receiver
	logger log.Logger

	// recv is the receive call, a field so tests can stand in for the SDK.
	recv func(ctx context.Context, maxMessages int) (int, error)
}

func newBatchReceiver(receiver *azservicebus.Receiver, logger log.Logger) *batchReceiver {
	b := &batchReceiver{inner: receiver, logger: logger}
	b.recv = func(ctx context.Context, maxMessages int) (int, error) {
		messages, err := receiver.ReceiveMessages(ctx, maxMessages, nil)
		return len(messages), err
	}
	return b
}

// ReceiveBatch receives up to maxMessages within maxWait. The window
// elapsing on an empty queue is not an error: it reports a zero count so
// the engine can conclude the queue is exhausted. A done parent context
// still surfaces as an error.
func (b *batchReceiver) ReceiveBatch(ctx context.Context, maxMessages int, maxWait time.Duration) (int, error) {
	rctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	n, err := b.recv(rctx, maxMessages)
	if err != nil && isWindowExpiry(ctx, rctx, err) {
		b.logger.Debug("receive window elapsed", log.Int("received", n))
		return n, nil
	}
	return n, err
}

// isWindowExpiry reports whether err is the batch window running out rather
// than a real failure: a context error on the window's context while the
// caller's context is still live.
func isWindowExpiry(parent, window context.Context, err error) bool {
	if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return false
	}
	return parent.Err() == nil && window.Err() != nil
}

// Close settles the receiver link.
func (b *batchReceiver) Close(ctx context.Context) error {
	return b.inner.Close(ctx)
}
