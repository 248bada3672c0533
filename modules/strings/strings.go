package strings

import (
	"context"
	"log/slog"
	"maps"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Model is a trained sequence model.
type Model interface {
	Fit(X, y any) error
	Predict(X any) ([]string, error)
}

// Strings handles patterns that unfold over time.
type Strings struct {
	name      string
	modelType string
	config    map[string]any
	model     Model
}

// New builds a Strings section. "model_type" names the model family and the
// remaining options are kept as its configuration.
func New(name string, opts section.Options) *Strings {
	cfg := maps.Clone(map[string]any(opts))
	delete(cfg, "model_type")
	return &Strings{name: name, modelType: opts.String("model_type", "transformer"), config: cfg}
}

// Name returns the instance name.
func (s *Strings) Name() string { return s.name }

// LoadModel attaches a model of the given family.
func (s *Strings) LoadModel(ctx context.Context, modelType string, model Model) {
	s.modelType = modelType
	s.model = model
	s.logger(ctx).Info("Model configured.", "model_type", modelType, "config", s.config)
}

// Fit trains the loaded model. Without one it only warns.
func (s *Strings) Fit(ctx context.Context, X, y any) error {
	logger := s.logger(ctx)
	if s.model == nil {
		logger.Warn("No model loaded. Use LoadModel() first.")
		return nil
	}
	logger.Info("Training model.", "model_type", s.modelType)
	return s.model.Fit(X, y)
}

// Predict generates sequences. Without a model it warns and returns nil.
func (s *Strings) Predict(ctx context.Context, X any) ([]string, error) {
	logger := s.logger(ctx)
	if s.model == nil {
		logger.Warn("No model loaded.")
		return nil, nil
	}
	logger.Info("Predicting.", "model_type", s.modelType)
	return s.model.Predict(X)
}

// Perform reports the score it was handed.
func (s *Strings) Perform(ctx context.Context, score section.Score) error {
	logger := s.logger(ctx)
	logger.Info("Performing sequence task...", "model_type", s.modelType)

	if len(score) > 0 {
		logger.Info("Received score.", "keys", score.Keys())
	} else {
		logger.Info("No score provided.")
	}

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (s *Strings) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", s.name, "kind", Kind)
}
