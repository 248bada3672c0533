// Package bass provides the statistics section: descriptive statistics,
// Welch's t-test, probability calibration and drift scores over score data.
package bass

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "bass"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the bass section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "statistics: describe, Welch t-test, calibration, drift",
		New: func(name string, opts section.Options) (section.Section, error) {
			return New(name, opts), nil
		},
	})
}
