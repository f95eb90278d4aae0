package drain_test

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/sbtools/sbdrain/pkg/drain"
	"github.com/sbtools/sbdrain/pkg/log"
)

// ExampleRun demonstrates draining a subscription's dead-letter sub-queue
// with a SAS connection string.
func ExampleRun() {
	cfg := drain.DefaultConfig()
	cfg.ConnectionString = "Endpoint=sb://mybus.servicebus.windows.net/;SharedAccessKeyName=RootManageSharedAccessKey;SharedAccessKey=<key>"
	cfg.Topic = "orders"
	cfg.Subscription = "billing-sub"

	result, err := drain.Run(context.Background(), cfg)
	if err != nil {
		fmt.Printf("drain failed: %v\n", err)
		return
	}
	fmt.Printf("deleted %d messages\n", result.Deleted)
}

// ExampleRun_activeQueue drains the live queue with a deletion cap, using
// Entra ID credentials against the namespace.
func ExampleRun_activeQueue() {
	cfg := drain.DefaultConfig()
	cfg.Namespace = "mybus"
	cfg.Topic = "orders"
	cfg.Subscription = "billing-sub"
	cfg.Queue = drain.QueueActive
	cfg.Limit = 500

	result, err := drain.Run(context.Background(), cfg)
	if err != nil {
		fmt.Printf("drain failed: %v\n", err)
		return
	}
	fmt.Printf("deleted %d messages (%s)\n", result.Deleted, result.Outcome)
}

// Example_withLogger demonstrates structured log output during a drain.
func Example_withLogger() {
	logger := log.NewZerologAdapter()

	cfg := drain.DefaultConfig()
	cfg.Namespace = "mybus"
	cfg.Topic = "orders"
	cfg.Subscription = "audit-sub"

	if _, err := drain.Run(context.Background(), cfg, drain.WithLogger(logger)); err != nil {
		fmt.Printf("drain failed: %v\n", err)
	}
}

// Example_withClientFactory demonstrates dependency injection for testing.
func Example_withClientFactory() {
	backlog := &exampleReceiver{queued: 42}
	factory := func(conn drain.Connection, cred azcore.TokenCredential, logger log.Logger) (drain.BusClient, error) {
		return &exampleClient{receiver: backlog}, nil
	}

	cfg := drain.DefaultConfig()
	cfg.ConnectionString = "Endpoint=sb://demo.servicebus.windows.net/;SharedAccessKeyName=demo;SharedAccessKey=demo"
	cfg.Topic = "orders"
	cfg.Subscription = "billing-sub"

	result, err := drain.Run(context.Background(), cfg, drain.WithClientFactory(factory))
	if err != nil {
		fmt.Printf("drain failed: %v\n", err)
		return
	}
	fmt.Printf("deleted %d messages (%s)\n", result.Deleted, result.Outcome)

	// Output: deleted 42 messages (exhausted)
}

// exampleReceiver hands out a fixed backlog, standing in for a live queue.
type exampleReceiver struct {
	queued int
}

func (r *exampleReceiver) ReceiveBatch(ctx context.Context, maxMessages int, maxWait time.Duration) (int, error) {
	n := r.queued
	if n > maxMessages {
		n = maxMessages
	}
	r.queued -= n
	return n, nil
}

func (r *exampleReceiver) Close(ctx context.Context) error { return nil }

// exampleClient implements drain.BusClient over the fixed backlog.
type exampleClient struct {
	receiver *exampleReceiver
}

func (c *exampleClient) OpenReceiver(target drain.Target) (drain.BatchReceiver, error) {
	return c.receiver, nil
}

func (c *exampleClient) Close(ctx context.Context) error { return nil }
