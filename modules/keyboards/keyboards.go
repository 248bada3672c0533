package keyboards

import (
	"context"
	"log/slog"
	"maps"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

var (
	defaultA = []float64{0.1, 0.2}
	defaultB = []float64{0.3, 0.4}
)

// Keyboards glues features and embeddings together.
type Keyboards struct {
	name   string
	config map[string]any
}

// New builds a Keyboards section. All options are kept as configuration.
func New(name string, opts section.Options) *Keyboards {
	return &Keyboards{name: name, config: maps.Clone(map[string]any(opts))}
}

// Name returns the instance name.
func (k *Keyboards) Name() string { return k.name }

// Configure replaces the configuration.
func (k *Keyboards) Configure(ctx context.Context, cfg map[string]any) {
	k.config = maps.Clone(cfg)
	k.logger(ctx).Info("Configured.", "config", cfg)
}

// Fuse concatenates the feature vectors in order.
func (k *Keyboards) Fuse(ctx context.Context, features ...[]float64) []float64 {
	n := 0
	for _, f := range features {
		n += len(f)
	}
	out := make([]float64, 0, n)
	for _, f := range features {
		out = append(out, f...)
	}
	k.logger(ctx).Info("Fused vectors.", "vectors", len(features), "dim", len(out))
	return out
}

// Perform fuses score["a"] and score["b"].
func (k *Keyboards) Perform(ctx context.Context, score section.Score) error {
	logger := k.logger(ctx)
	logger.Info("Performing fusion task...")

	k.Fuse(ctx, score.Float64s("a", defaultA), score.Float64s("b", defaultB))

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (k *Keyboards) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", k.name, "kind", Kind)
}
