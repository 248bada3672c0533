// Package strings provides the sequence-model section. Model backends are
// not wired; the section reports what it received.
package strings

import (
	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Kind is the section kind used in score files.
const Kind = "strings"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the strings section kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSection(Kind, &registry.RegisteredSection{
		Description: "sequence and contextual models",
		New: func(name string, opts section.Options) (section.Section, error) {
			return New(name, opts), nil
		},
	})
}
