// Package keyboards provides the integration section that fuses feature
// vectors from other sections.
package keyboards

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "keyboards"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the keyboards section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "feature integration and late fusion",
		New: func(name string, opts section.Options) (section.Section, error) {
			return New(name, opts), nil
		},
	})
}
