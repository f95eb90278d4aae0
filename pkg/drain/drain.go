package drain

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/sbtools/sbdrain/internal/adapters/identity"
	"github.com/sbtools/sbdrain/internal/app"
	"github.com/sbtools/sbdrain/internal/domain"
	"github.com/sbtools/sbdrain/pkg/log"
)

// Config describes one drain run. Start from DefaultConfig and override
// what you need; a zero Config is rejected by Run.
type Config struct {
	// ConnectionString is a SAS connection string. When set it is used
	// unconditionally, even if Namespace is also set.
	ConnectionString string

	// Namespace is the Service Bus namespace, either as a bare name or a
	// full FQDN. Used with Entra ID authentication when ConnectionString
	// is empty.
	Namespace string

	// Topic and Subscription identify the subscription to drain.
	Topic        string
	Subscription string

	// Queue selects the active queue or the dead-letter sub-queue.
	Queue Queue

	// BatchSize is the maximum number of messages requested per receive.
	BatchSize int

	// MaxWait bounds how long a single receive waits for messages.
	MaxWait time.Duration

	// Limit caps total deletions on the active queue. Negative means no
	// limit; zero deletes nothing. The limit is ignored for dead-letter
	// drains.
	Limit int
}

// DefaultConfig returns a Config draining the dead-letter sub-queue with
// no deletion limit.
func DefaultConfig() Config {
	return Config{
		Queue:     QueueDeadLetter,
		BatchSize: DefaultBatchSize,
		MaxWait:   DefaultMaxWait,
		Limit:     -1,
	}
}

// ResolveConnection applies the connection-source precedence and namespace
// normalization without running a drain.
func ResolveConnection(connectionString, namespace string) (Connection, error) {
	return domain.ResolveConnection(connectionString, namespace)
}

// Run drains the configured subscription queue until it is empty, the
// deletion limit is reached, or a receive fails. The returned Result
// carries the deleted count even when err is non-nil.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger

	conn, err := domain.ResolveConnection(cfg.ConnectionString, cfg.Namespace)
	if err != nil {
		return Result{}, err
	}
	logger.Info("connection resolved",
		log.String("auth", conn.Mode.String()),
		log.String("namespace", conn.Label()),
	)

	target, err := domain.NewTarget(cfg.Topic, cfg.Subscription, cfg.Queue)
	if err != nil {
		return Result{}, err
	}

	policy := domain.Policy{
		BatchSize: cfg.BatchSize,
		MaxWait:   cfg.MaxWait,
		Limit:     cfg.Limit,
		Limited:   cfg.Limit >= 0,
	}
	if err := policy.Validate(); err != nil {
		return Result{}, err
	}

	var cred azcore.TokenCredential
	if conn.Mode == domain.AuthIdentity {
		provider := o.credentials
		if provider == nil {
			provider = identity.NewProvider(identity.ServiceBusScope, true, logger)
		}
		var mechanism string
		cred, mechanism, err = provider.Acquire(ctx)
		if err != nil {
			return Result{}, err
		}
		logger.Info("credential acquired", log.String("mechanism", mechanism))
	}

	client, err := o.clientFactory(conn, cred, logger)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := client.Close(context.Background()); cerr != nil {
			logger.Warn("close client", log.Err(cerr))
		}
	}()

	drainer := app.NewDrainer(app.DrainerConfig{
		Target:    target,
		Policy:    policy,
		Namespace: conn.Label(),
	}, client, logger)
	return drainer.Run(ctx)
}
