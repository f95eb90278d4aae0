package domain

import (
	"fmt"
	"time"
)

// Default batch policy values.
const (
	DefaultBatchSize = 1000
	DefaultMaxWait   = 5 * time.Second
)

// Policy bounds a drain run: how many messages to request per batch, how long
// to wait for the first message of a batch, and an optional cap on the total.
// A limit only applies to active-queue drains; dead-letter drains are total.
type Policy struct {
	// BatchSize is the maximum number of messages requested per receive.
	BatchSize int

	// MaxWait bounds the wait for the first message of each batch. A batch
	// that stays empty for the whole window means the queue is drained.
	MaxWait time.Duration

	// Limit caps the total number of messages deleted when Limited is true.
	// Zero means delete nothing.
	Limit int

	// Limited reports whether Limit is in effect at all.
	Limited bool
}

// DefaultPolicy returns an unlimited policy with the stock batch bounds.
func DefaultPolicy() Policy {
	return Policy{BatchSize: DefaultBatchSize, MaxWait: DefaultMaxWait}
}

// Validate checks the policy bounds.
func (p Policy) Validate() error {
	if p.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidPolicy, p.BatchSize)
	}
	if p.MaxWait < 0 {
		return fmt.Errorf("%w: max wait must not be negative, got %v", ErrInvalidPolicy, p.MaxWait)
	}
	if p.Limited && p.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidPolicy, p.Limit)
	}
	return nil
}

// EffectiveFor normalizes the policy for a queue selector. Limits are
// meaningless for dead-letter drains and are cleared rather than rejected,
// preserving the "DLQ purge is total" semantic.
func (p Policy) EffectiveFor(q Queue) Policy {
	if q == QueueDeadLetter {
		p.Limit = 0
		p.Limited = false
	}
	return p
}

// NextBatchSize computes the request size for the next receive given how many
// messages are already deleted: min(BatchSize, Limit-deleted) under a limit,
// else BatchSize. A non-positive return means the limit is spent.
func (p Policy) NextBatchSize(deleted int) int {
	if !p.Limited {
		return p.BatchSize
	}
	remaining := p.Limit - deleted
	if remaining < p.BatchSize {
		return remaining
	}
	return p.BatchSize
}
