package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/orchestraigo/internal/conductor"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Run performs the loaded score once and prints the summary and results to
// the app's output. The report is always returned; the error is non-nil when
// any section failed.
func (a *App) Run(ctx context.Context) (*conductor.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.conductor.Len() == 0 {
		a.logger.Warn("No sections registered, performance not required.")
	}

	a.logger.Info("🎼 Starting performance...", "sections", a.conductor.Len())
	report := a.conductor.Perform(ctx, section.Score(a.model.Score))
	a.logger.Info("🏁 Performance finished.",
		"id", report.ID,
		"succeeded", len(report.Succeeded()),
		"skipped", len(report.Skipped()),
		"failed", len(report.Failed()),
		"duration", report.Duration,
	)

	a.conductor.Summary(a.outW)
	writeResults(a.outW, report)

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%d of %d sections failed: %w", len(failed), len(report.Results), report.Err())
	}
	a.logger.Debug("App.Run method finished.")
	return report, nil
}

func writeResults(w io.Writer, r *conductor.Report) {
	for _, res := range r.Results {
		line := fmt.Sprintf("  %-10s %-20s %s", res.Outcome, res.Name, res.Duration)
		if res.Err != nil {
			line += "  " + res.Err.Error()
		}
		fmt.Fprintln(w, line)
	}
}
