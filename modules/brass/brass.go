package brass

import (
	"context"
	"log/slog"
	"maps"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Estimator is a fitted tabular model.
type Estimator interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}

var defaultX = [][]float64{{0, 1}, {1, 0}}

// Brass makes crisp decisions on tabular data.
type Brass struct {
	name      string
	modelType string
	config    map[string]any
	model     Estimator
}

// New builds a Brass section. "model_type" selects the estimator family;
// every other option is kept as estimator configuration.
func New(name string, opts section.Options) *Brass {
	cfg := maps.Clone(map[string]any(opts))
	delete(cfg, "model_type")
	return &Brass{name: name, modelType: opts.String("model_type", "forest"), config: cfg}
}

// Name returns the instance name.
func (b *Brass) Name() string { return b.name }

// LoadModel attaches an estimator of the given family.
func (b *Brass) LoadModel(ctx context.Context, modelType string, model Estimator) {
	b.modelType = modelType
	b.model = model
	b.logger(ctx).Info("Model set.", "model_type", modelType, "config", b.config)
}

// Fit trains the loaded estimator. Without one it only warns.
func (b *Brass) Fit(ctx context.Context, X [][]float64, y []float64) error {
	logger := b.logger(ctx)
	if b.model == nil {
		logger.Warn("No model loaded. Use LoadModel() first.")
		return nil
	}
	logger.Info("Fitting.", "model_type", b.modelType, "rows", len(X))
	return b.model.Fit(X, y)
}

// Predict returns one prediction per row; zeros when no estimator is loaded.
func (b *Brass) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	logger := b.logger(ctx)
	if b.model == nil {
		logger.Warn("No model loaded. Returning zeros.")
		return make([]float64, len(X)), nil
	}
	logger.Info("Predicting.", "model_type", b.modelType, "rows", len(X))
	return b.model.Predict(X)
}

// Perform predicts score["X"].
func (b *Brass) Perform(ctx context.Context, score section.Score) error {
	logger := b.logger(ctx)
	logger.Info("Performing decision task...", "model_type", b.modelType)

	preds, err := b.Predict(ctx, score.Matrix("X", defaultX))
	if err != nil {
		return err
	}
	logger.Debug("Predictions.", "values", preds)

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (b *Brass) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", b.name, "kind", Kind)
}
