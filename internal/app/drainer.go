package app

import (
	"context"
	"fmt"

	"github.com/sbtools/sbdrain/internal/domain"
	"github.com/sbtools/sbdrain/internal/ports"
	"github.com/sbtools/sbdrain/pkg/log"
)

// DrainerConfig contains the settings for one drain run.
type DrainerConfig struct {
	// Target identifies the subscription queue to drain.
	Target domain.Target

	// Policy controls batch sizing, the per-batch wait window, and the
	// optional deletion limit.
	Policy domain.Policy

	// Namespace is the resolved namespace label, used in log output only.
	Namespace string
}

// Drainer executes the receive-and-delete loop against a single
// subscription queue. A Drainer runs once; create a new one for each run.
type Drainer struct {
	config DrainerConfig
	client ports.BusClient
	logger log.Logger

	// policy is the configured policy normalized for the target queue.
	policy domain.Policy
	phase  Phase
}

// NewDrainer creates a drainer for the given target and policy. The client
// is used to open a receiver when Run is called; it is not touched before
// then and is not closed by the drainer.
func NewDrainer(config DrainerConfig, client ports.BusClient, logger log.Logger) *Drainer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Drainer{
		config: config,
		client: client,
		logger: logger,
		policy: config.Policy.EffectiveFor(config.Target.Queue),
		phase:  PhaseIdle,
	}
}

// Phase returns the current phase of the run.
func (d *Drainer) Phase() Phase {
	return d.phase
}

// Run drains the target queue until it is empty, the deletion limit is
// reached, or a receive fails. Receive errors are fatal: the loop does not
// retry, and the returned Result carries the count deleted up to that
// point. The receiver is closed on every exit path.
func (d *Drainer) Run(ctx context.Context) (domain.Result, error) {
	result := domain.Result{Target: d.config.Target}

	if err := d.policy.Validate(); err != nil {
		return result, err
	}
	if err := d.transitionTo(PhaseDraining); err != nil {
		return result, err
	}

	if d.config.Policy.Limited && d.config.Target.Queue == domain.QueueDeadLetter {
		d.logger.Warn("deletion limit ignored for dead-letter drain",
			log.Int("limit", d.config.Policy.Limit),
		)
	}

	d.logger.Info("draining",
		log.String("queue", d.config.Target.Queue.String()),
		log.String("namespace", d.config.Namespace),
		log.String("target", d.config.Target.Path()),
	)
	if d.policy.Limited {
		d.logger.Info("deletion limit in effect", log.Int("limit", d.policy.Limit))
	}

	receiver, err := d.client.OpenReceiver(d.config.Target)
	if err != nil {
		return result, fmt.Errorf("open receiver: %w", err)
	}
	defer func() {
		// Close with a fresh context so cleanup still runs when ctx is done.
		if cerr := receiver.Close(context.Background()); cerr != nil {
			d.logger.Warn("close receiver", log.Err(cerr))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		// The limit check runs before the receive, so limit 0 deletes
		// nothing and issues no receive calls at all.
		if d.policy.Limited && result.Deleted >= d.policy.Limit {
			if err := d.transitionTo(PhaseLimitReached); err != nil {
				return result, err
			}
			break
		}

		size := d.policy.NextBatchSize(result.Deleted)
		n, err := receiver.ReceiveBatch(ctx, size, d.policy.MaxWait)
		if err != nil {
			d.logger.Error("receive failed",
				log.Err(err),
				log.Int("deleted", result.Deleted),
			)
			return result, fmt.Errorf("receive batch: %w", err)
		}
		if n == 0 {
			if err := d.transitionTo(PhaseExhausted); err != nil {
				return result, err
			}
			break
		}

		result.Deleted += n
		d.logger.Info("deleted batch",
			log.Int("count", n),
			log.Int("deleted", result.Deleted),
		)
	}

	switch d.phase {
	case PhaseLimitReached:
		result.Outcome = domain.OutcomeLimitReached
	case PhaseExhausted:
		result.Outcome = domain.OutcomeExhausted
	}

	if err := d.transitionTo(PhaseCompleted); err != nil {
		return result, err
	}

	d.logger.Info("drain complete",
		log.Int("deleted", result.Deleted),
		log.String("queue", d.config.Target.Queue.String()),
		log.String("namespace", d.config.Namespace),
		log.String("target", d.config.Target.Path()),
		log.String("outcome", result.Outcome.String()),
	)
	return result, nil
}

// transitionTo moves the run to the next phase, validating the edge.
func (d *Drainer) transitionTo(to Phase) error {
	if !canTransition(d.phase, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrPhaseTransition, d.phase, to)
	}
	from := d.phase
	d.phase = to
	d.logger.Debug("phase transition",
		log.String("from", from.String()),
		log.String("to", to.String()),
	)
	return nil
}
