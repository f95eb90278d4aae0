// Package drain empties Azure Service Bus topic subscriptions in batches.
//
// A drain receives messages in receive-and-delete mode, so every received
// message is gone from the broker. By default it targets the dead-letter
// sub-queue of a subscription and runs until the queue is empty; the active
// queue can be drained instead, optionally capped by a deletion limit.
//
// The entry point is [Run]. Authentication follows the connection-source
// precedence: a SAS connection string wins unconditionally, and a bare
// namespace falls back to Entra ID credentials, trying non-interactive
// sources before an interactive browser sign-in.
//
// Options exist to inject a logger, a credential provider, or a client
// factory; the defaults are silent logging, the standard credential chain,
// and a real Service Bus client.
package drain
