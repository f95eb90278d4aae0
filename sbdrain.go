// Package sbdrain drains Azure Service Bus topic subscriptions in batches.
//
// Example usage:
//
//	cfg := sbdrain.DefaultConfig()
//	cfg.ConnectionString = os.Getenv("SERVICE_BUS_CONNECTION_STR")
//	cfg.Topic = "orders"
//	cfg.Subscription = "billing-sub"
//	result, err := sbdrain.Run(context.Background(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("deleted %d messages\n", result.Deleted)
package sbdrain

import (
	"context"

	"github.com/sbtools/sbdrain/pkg/drain"
	"github.com/sbtools/sbdrain/pkg/log"
)

// Config describes one drain run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = drain.Config

// Result reports what a drain run did, including the deleted count.
type Result = drain.Result

// Outcome distinguishes how a run ended.
type Outcome = drain.Outcome

// Queue selects the active queue or the dead-letter sub-queue.
type Queue = drain.Queue

// Option configures optional behavior of Run.
type Option = drain.Option

const (
	QueueDeadLetter = drain.QueueDeadLetter
	QueueActive     = drain.QueueActive

	OutcomeExhausted    = drain.OutcomeExhausted
	OutcomeLimitReached = drain.OutcomeLimitReached
)

// Run drains the configured subscription queue until it is empty, the
// deletion limit is reached, or a receive fails. Messages are received in
// receive-and-delete mode, so the drain is irreversible.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	return drain.Run(ctx, cfg, opts...)
}

// DefaultConfig returns a Config draining the dead-letter sub-queue with
// no deletion limit. At minimum, set Topic, Subscription, and either
// ConnectionString or Namespace before calling Run.
func DefaultConfig() Config {
	return drain.DefaultConfig()
}

// WithLogger sets the logger used throughout the drain run.
func WithLogger(logger log.Logger) Option {
	return drain.WithLogger(logger)
}

// WithCredentialProvider replaces the credential chain used for
// namespace-based authentication.
func WithCredentialProvider(provider drain.CredentialProvider) Option {
	return drain.WithCredentialProvider(provider)
}

// WithClientFactory replaces the Service Bus client constructor.
func WithClientFactory(factory drain.ClientFactory) Option {
	return drain.WithClientFactory(factory)
}
