package servicebus

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"github.com/sbtools/sbdrain/internal/domain"
	"github.com/sbtools/sbdrain/internal/ports"
	"github.com/sbtools/sbdrain/pkg/log"
)

// Client wraps an azservicebus.Client as a ports.BusClient.
type Client struct {
	inner  *azservicebus.Client
	logger log.Logger
}

// Open builds a Service Bus client for the resolved connection: from the
// SAS connection string when the connection carries one, otherwise against
// the namespace FQDN with the supplied credential. Nothing is dialed here;
// AMQP links come up on the first receive.
func Open(conn domain.Connection, cred azcore.TokenCredential, logger log.Logger) (*Client, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	var (
		inner *azservicebus.Client
		err   error
	)
	switch conn.Mode {
	case domain.AuthSAS:
		inner, err = azservicebus.NewClientFromConnectionString(conn.ConnectionString, nil)
	case domain.AuthIdentity:
		inner, err = azservicebus.NewClient(conn.FQDN, cred, nil)
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", conn.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("create service bus client: %w", err)
	}
	return &Client{inner: inner, logger: logger}, nil
}

// OpenReceiver opens a receive-and-delete receiver for the target
// subscription, pointed at the dead-letter sub-queue when the target
// selects it.
func (c *Client) OpenReceiver(target domain.Target) (ports.BatchReceiver, error) {
	opts := &azservicebus.ReceiverOptions{
		ReceiveMode: azservicebus.ReceiveModeReceiveAndDelete,
	}
	if target.Queue == domain.QueueDeadLetter {
		opts.SubQueue = azservicebus.SubQueueDeadLetter
	}

	receiver, err := c.inner.NewReceiverForSubscription(target.Topic, target.Subscription, opts)
	if err != nil {
		return nil, fmt.Errorf("open receiver for %s: %w", target.Path(), err)
	}
	return newBatchReceiver(receiver, c.logger), nil
}

// Close releases the underlying AMQP connection.
func (c *Client) Close(ctx context.Context) error {
	return c.inner.Close(ctx)
}
