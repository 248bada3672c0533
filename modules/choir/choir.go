package choir

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// MetricSink receives every metric a choir logs. *metrics.Metrics satisfies it.
type MetricSink interface {
	SetMetric(section, key string, value float64)
}

var defaultMetrics = map[string]any{"accuracy": 0.0}

// Choir records evaluation metrics.
type Choir struct {
	name string
	sink MetricSink

	mu      sync.Mutex
	metrics map[string]float64
}

// New builds a Choir. sink may be nil.
func New(name string, sink MetricSink) *Choir {
	return &Choir{name: name, sink: sink, metrics: make(map[string]float64)}
}

// Name returns the instance name.
func (c *Choir) Name() string { return c.name }

// LogMetric stores value under key, replacing any previous value.
func (c *Choir) LogMetric(ctx context.Context, key string, value float64) {
	c.mu.Lock()
	c.metrics[key] = value
	c.mu.Unlock()
	if c.sink != nil {
		c.sink.SetMetric(c.name, key, value)
	}
	c.logger(ctx).Info("metric", "key", key, "value", value)
}

// Report returns a copy of every metric logged so far.
func (c *Choir) Report(ctx context.Context) map[string]float64 {
	c.mu.Lock()
	out := maps.Clone(c.metrics)
	c.mu.Unlock()
	c.logger(ctx).Info("report", "metrics", out)
	return out
}

// Perform logs every numeric entry of score["metrics"] and reports.
func (c *Choir) Perform(ctx context.Context, score section.Score) error {
	logger := c.logger(ctx)
	logger.Info("Performing evaluation step...")

	provided := section.Values(score.Map("metrics", defaultMetrics))
	for _, key := range provided.Keys() {
		v, ok := section.ToFloat(provided[key])
		if !ok {
			logger.Warn("Ignoring non-numeric metric.", "key", key)
			continue
		}
		c.LogMetric(ctx, key, v)
	}
	c.Report(ctx)

	ctxlog.Success(ctx, logger, "Section completed performance.")
	return nil
}

func (c *Choir) logger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("section", c.name, "kind", Kind)
}
