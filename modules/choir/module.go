// Package choir provides the evaluation section: a per-instance metric
// registry that can mirror every logged metric into an external sink.
package choir

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "choir"

// Module implements the registry.Module interface for this package. Sink is
// optional; when set every choir instance publishes its metrics to it.
type Module struct {
	Sink MetricSink
}

// Register registers the choir section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "evaluation metrics and reporting",
		New: func(name string, _ section.Options) (section.Section, error) {
			return New(name, m.Sink), nil
		},
	})
}
