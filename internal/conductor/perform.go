package conductor

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
	"golang.org/x/sync/errgroup"
)

// Perform runs one pass over every registered section, passing each the same
// score. A nil score is replaced by an empty one. Perform never returns an
// error itself; failures are collected in the Report.
func (c *Conductor) Perform(ctx context.Context, score section.Score) *Report {
	if score == nil {
		score = section.Score{}
	}
	entries := c.snapshot()
	report := &Report{
		ID:      uuid.New(),
		Started: time.Now(),
		Results: make([]Result, len(entries)),
	}

	logger := ctxlog.FromContext(ctx).With("performance", report.ID.String())
	ctx = ctxlog.WithLogger(ctx, logger)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	logger.Info("Beginning orchestral performance...", "sections", len(entries), "concurrency", c.concurrency)
	if c.concurrency > 1 {
		c.performConcurrently(ctx, entries, score, report.Results)
	} else {
		c.performSequentially(ctx, entries, score, report.Results)
	}
	report.Duration = time.Since(report.Started)

	if c.recorder != nil {
		c.recorder.ObservePerformance(report)
	}
	logger.Info("Performance complete.",
		"succeeded", len(report.Succeeded()),
		"skipped", len(report.Skipped()),
		"failed", len(report.Failed()),
		"duration", report.Duration,
	)
	return report
}

func (c *Conductor) performSequentially(ctx context.Context, entries []*entry, score section.Score, results []Result) {
	aborted := false
	for i, e := range entries {
		switch {
		case aborted:
			results[i] = c.skip(ctx, e, ErrAborted)
		case ctx.Err() != nil:
			results[i] = c.skip(ctx, e, ctx.Err())
		default:
			results[i] = c.cue(ctx, ctx, e, score)
			aborted = c.failFast && results[i].Outcome == Failed
		}
	}
}

func (c *Conductor) performConcurrently(ctx context.Context, entries []*entry, score section.Score, results []Result) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, e := range entries {
		g.Go(func() error {
			if gctx.Err() != nil {
				reason := ctx.Err()
				if reason == nil {
					reason = ErrAborted
				}
				results[i] = c.skip(ctx, e, reason)
				return nil
			}
			// Each slot is written by exactly one goroutine.
			results[i] = c.cue(gctx, ctx, e, score)
			if c.failFast && results[i].Outcome == Failed {
				return results[i].Err
			}
			return nil
		})
	}
	_ = g.Wait()
}

// cue performs a single section and turns its outcome into a Result. ctx is
// the context the section runs under and parent the performance's own; a
// cancellation of ctx that parent did not see comes from a fail-fast abort,
// and the interrupted section is reported as skipped rather than failed.
func (c *Conductor) cue(ctx, parent context.Context, e *entry, score section.Score) Result {
	logger := ctxlog.FromContext(ctx).With("section", e.name)
	if e.section == nil {
		logger.Warn("Section has no Perform method; skipping.")
		return c.observe(Result{Name: e.name, Outcome: Skipped, Err: ErrNotPerformable})
	}

	logger.Info("Cueing section.")
	start := time.Now()
	err := invoke(ctxlog.WithLogger(ctx, logger), e.section, score)
	res := Result{Name: e.name, Outcome: Succeeded, Duration: time.Since(start)}
	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil && parent.Err() == nil {
		logger.Warn("Section interrupted by fail-fast abort.", "duration", res.Duration)
		res.Outcome, res.Err = Skipped, ErrAborted
		return c.observe(res)
	}
	if err != nil {
		res.Outcome = Failed
		res.Err = &SectionError{Name: e.name, Err: err}
		logger.Error("Section failed.", "error", err, "duration", res.Duration)
	} else {
		logger.Debug("Section finished.", "duration", res.Duration)
	}
	return c.observe(res)
}

func (c *Conductor) skip(ctx context.Context, e *entry, reason error) Result {
	ctxlog.FromContext(ctx).Warn("Section skipped.", "section", e.name, "reason", reason)
	return c.observe(Result{Name: e.name, Outcome: Skipped, Err: reason})
}

func (c *Conductor) observe(res Result) Result {
	if c.recorder != nil {
		c.recorder.ObserveSection(res.Name, res.Outcome, res.Duration)
	}
	return res
}

// invoke calls s.Perform, converting panics into *PanicError. When ctx can be
// cancelled the call runs on its own goroutine so that a deadline stops the
// wait even if the section ignores its context; the buffered channel lets
// that goroutine finish without a reader.
func invoke(ctx context.Context, s section.Section, score section.Score) error {
	if ctx.Done() == nil {
		return performSafely(ctx, s, score)
	}

	done := make(chan error, 1)
	go func() {
		done <- performSafely(ctx, s, score)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		select {
		case err := <-done:
			return err
		default:
			return ctx.Err()
		}
	}
}

func performSafely(ctx context.Context, s section.Section, score section.Score) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return s.Perform(ctx, score)
}
