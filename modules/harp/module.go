// Package harp provides the generative media section. Generation backends
// are not wired; each mode returns a placeholder artifact description.
package harp

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "harp"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the harp section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "generative media: text, image, audio",
		New: func(name string, opts section.Options) (section.Section, error) {
			return New(name, opts), nil
		},
	})
}
