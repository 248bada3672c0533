// Package brass provides the decision-forest section. Estimator backends are
// not wired; predictions are placeholders with the right shape.
package brass

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "brass"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the brass section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "decision forests and boosting on tabular data",
		New: func(name string, opts section.Options) (section.Section, error) {
			return New(name, opts), nil
		},
	})
}
