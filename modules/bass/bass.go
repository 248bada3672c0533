package bass

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
	"github.com/specialistvlad/orchestraigo/internal/stats"
)

var defaultValues = []float64{0.1, 0.2, 0.3, 0.4}

// Bass runs statistical checks over the score.
type Bass struct {
	name string
	bins int
}

// New builds a Bass section. The "bins" option sets the drift histogram
// resolution.
func New(name string, opts section.Options) *Bass {
	return &Bass{name: name, bins: opts.Int("bins", stats.DefaultBins)}
}

// Name returns the instance name.
func (b *Bass) Name() string { return b.name }

// Describe returns descriptive statistics for values.
func (b *Bass) Describe(ctx context.Context, values []float64) stats.Summary {
	logger := b.logger(ctx)
	if len(values) == 0 {
		logger.Warn("describe() received empty values.")
	}
	s := stats.Describe(values)
	logger.Info("describe()", "count", s.Count, "mean", s.Mean, "std", s.Std, "min", s.Min, "max", s.Max)
	return s
}

// TTest runs Welch's unequal-variance t-test.
func (b *Bass) TTest(ctx context.Context, a, c []float64) stats.TTest {
	logger := b.logger(ctx)
	if len(a) < 2 || len(c) < 2 {
		logger.Warn("ttest() needs at least 2 samples per group.")
	}
	res := stats.WelchTTest(a, c)
	logger.Info("ttest()", "t", res.T, "df", res.DF, "p_value", res.PValue)
	return res
}

// Calibrate passes probabilities through, clamped to [0,1].
func (b *Bass) Calibrate(ctx context.Context, probs []float64) []float64 {
	b.logger(ctx).Info("calibrate() pass-through.", "n", len(probs))
	return stats.Calibrate(probs)
}

// CalibrateIsotonic fits a monotone calibrator on scores and their observed
// labels, then applies it to probs.
func (b *Bass) CalibrateIsotonic(ctx context.Context, scores, labels, probs []float64) ([]float64, error) {
	iso, err := stats.FitIsotonic(scores, labels)
	if err != nil {
		return nil, fmt.Errorf("failed to fit isotonic calibrator: %w", err)
	}
	out := iso.Apply(probs)
	b.logger(ctx).Info("calibrate() isotonic.", "n", len(probs), "fit_size", len(scores))
	return out, nil
}

// DriftScore returns the population stability index of current against
// reference.
func (b *Bass) DriftScore(ctx context.Context, reference, current []float64) float64 {
	logger := b.logger(ctx)
	if len(reference) == 0 || len(current) == 0 {
		logger.Warn("drift_score() received empty lists.")
	}
	psi := stats.DriftScore(reference, current, b.bins)
	logger.Info("drift_score()", "psi", psi, "bins", b.bins)
	return psi
}

// Perform describes score["values"], and runs the drift, t-test and
// calibration checks when their inputs are present. Calibration is isotonic
// when score["calibration_scores"] and score["calibration_labels"] are given.
func (b *Bass) Perform(ctx context.Context, score section.Score) error {
	logger := b.logger(ctx)
	logger.Info("Performing statistical checks...")

	b.Describe(ctx, score.Float64s("values", defaultValues))
	if score.Has("reference") && score.Has("current") {
		b.DriftScore(ctx, score.Float64s("reference", nil), score.Float64s("current", nil))
	}
	if score.Has("a") && score.Has("b") {
		b.TTest(ctx, score.Float64s("a", nil), score.Float64s("b", nil))
	}
	if score.Has("probs") {
		probs := score.Float64s("probs", nil)
		if score.Has("calibration_scores") && score.Has("calibration_labels") {
			if _, err := b.CalibrateIsotonic(ctx, score.Float64s("calibration_scores", nil), score.Float64s("calibration_labels", nil), probs); err != nil {
				return err
			}
		} else {
			b.Calibrate(ctx, probs)
		}
	}

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (b *Bass) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", b.name, "kind", Kind)
}
