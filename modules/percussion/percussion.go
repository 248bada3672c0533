package percussion

import (
	"context"
	"log/slog"
	"time"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
	"golang.org/x/time/rate"
)

// MaxInterval caps the pause between ticks.
const MaxInterval = 50 * time.Millisecond

// Policy maps the observed state to an action.
type Policy func(ctx context.Context, state section.Score) (map[string]any, error)

// Percussion paces work and applies a control policy.
type Percussion struct {
	name     string
	interval time.Duration
	policy   Policy
	limiter  *rate.Limiter
}

// New builds a Percussion with no interval and no policy.
func New(name string) *Percussion {
	return &Percussion{name: name}
}

// Name returns the instance name.
func (p *Percussion) Name() string { return p.name }

// Interval returns the effective tick interval.
func (p *Percussion) Interval() time.Duration { return p.interval }

// Configure sets the tick interval, capped at MaxInterval, and the policy.
// Negative intervals mean no pause.
func (p *Percussion) Configure(interval time.Duration, policy Policy) {
	p.interval = min(max(interval, 0), MaxInterval)
	p.policy = policy
	p.limiter = nil
	if p.interval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(p.interval), 1)
		// Drain the initial token so the first tick also waits.
		p.limiter.Allow()
	}
}

// Tick waits for the next slot of the limiter.
func (p *Percussion) Tick(ctx context.Context) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	p.logger(ctx).Debug("tick()")
	return nil
}

// Perform ticks once and applies the policy to the score.
func (p *Percussion) Perform(ctx context.Context, score section.Score) error {
	logger := p.logger(ctx)
	logger.Info("Performing control loop...", "interval", p.interval, "policy", p.policy != nil)

	if err := p.Tick(ctx); err != nil {
		return err
	}
	if p.policy != nil {
		action, err := p.policy(ctx, score)
		if err != nil {
			return err
		}
		logger.Info("Applied policy.", "action", action)
	}

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (p *Percussion) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", p.name, "kind", Kind)
}
