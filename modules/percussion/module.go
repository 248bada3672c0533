// Package percussion provides the timing and control section: a paced tick
// followed by an optional policy applied to the score.
package percussion

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "percussion"

// Module implements the registry.Module interface for this package. Policy,
// when set, is installed on every percussion instance.
type Module struct {
	Policy Policy
}

// Register registers the percussion section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "timing, scheduling and control policies",
		New: func(name string, opts section.Options) (section.Section, error) {
			p := New(name)
			p.Configure(opts.Duration("interval", 0), m.Policy)
			return p, nil
		},
	})
}
