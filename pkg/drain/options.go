package drain

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/sbtools/sbdrain/internal/adapters/servicebus"
	"github.com/sbtools/sbdrain/internal/domain"
	"github.com/sbtools/sbdrain/internal/ports"
	"github.com/sbtools/sbdrain/pkg/log"
)

// CredentialProvider acquires an Azure credential for namespace-based
// authentication. Acquire returns the credential together with the name of
// the mechanism that produced it, for log output.
type CredentialProvider interface {
	Acquire(ctx context.Context) (azcore.TokenCredential, string, error)
}

// ClientFactory builds the bus client a drain runs against. The credential
// is nil when the connection authenticates with a SAS connection string.
type ClientFactory func(conn Connection, cred azcore.TokenCredential, logger log.Logger) (BusClient, error)

// Option configures optional behavior of Run.
type Option func(*options)

type options struct {
	logger        log.Logger
	credentials   CredentialProvider
	clientFactory ClientFactory
}

func defaultOptions() *options {
	return &options{
		logger: log.NewNoopLogger(),
		clientFactory: func(conn Connection, cred azcore.TokenCredential, logger log.Logger) (BusClient, error) {
			return servicebus.Open(conn, cred, logger)
		},
	}
}

// WithLogger sets the logger used throughout the drain run. The default
// discards all output.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCredentialProvider replaces the credential chain used for
// namespace-based authentication. The default tries non-interactive
// sources first and falls back to an interactive browser sign-in.
func WithCredentialProvider(provider CredentialProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.credentials = provider
		}
	}
}

// WithClientFactory replaces the Service Bus client constructor, mainly
// for tests.
func WithClientFactory(factory ClientFactory) Option {
	return func(o *options) {
		if factory != nil {
			o.clientFactory = factory
		}
	}
}

// Aliases re-exporting the core types, so embedding a drain does not
// require importing internal packages.
type (
	// Result reports what a drain run did.
	Result = domain.Result
	// Outcome distinguishes how a run ended.
	Outcome = domain.Outcome
	// Queue selects the active queue or the dead-letter sub-queue.
	Queue = domain.Queue
	// Connection is a resolved connection source.
	Connection = domain.Connection
	// AuthMode is the authentication mode of a Connection.
	AuthMode = domain.AuthMode
	// Target identifies a subscription queue.
	Target = domain.Target
	// BusClient is the messaging client a drain runs against.
	BusClient = ports.BusClient
	// BatchReceiver receives batches from a single subscription queue.
	BatchReceiver = ports.BatchReceiver
)

const (
	QueueDeadLetter = domain.QueueDeadLetter
	QueueActive     = domain.QueueActive

	AuthSAS      = domain.AuthSAS
	AuthIdentity = domain.AuthIdentity

	OutcomeNone         = domain.OutcomeNone
	OutcomeExhausted    = domain.OutcomeExhausted
	OutcomeLimitReached = domain.OutcomeLimitReached

	// DefaultBatchSize is the request size used by DefaultConfig.
	DefaultBatchSize = domain.DefaultBatchSize
	// DefaultMaxWait is the per-batch wait window used by DefaultConfig.
	DefaultMaxWait = domain.DefaultMaxWait
)

var (
	// ErrMalformedConnString reports a connection string without a usable
	// Endpoint segment.
	ErrMalformedConnString = domain.ErrMalformedConnString
	// ErrMissingNamespace reports that neither a connection string nor a
	// namespace was configured.
	ErrMissingNamespace = domain.ErrMissingNamespace
	// ErrMissingTarget reports a missing topic or subscription name.
	ErrMissingTarget = domain.ErrMissingTarget
	// ErrInvalidPolicy reports an unusable batch size, wait, or limit.
	ErrInvalidPolicy = domain.ErrInvalidPolicy
	// ErrAuthUnavailable reports that no credential source produced a token.
	ErrAuthUnavailable = domain.ErrAuthUnavailable
)
