package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Module is the interface that all section modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredSection holds the compiled Go parts of a section kind.
type RegisteredSection struct {
	// Description is a one-line summary shown by `orchestraigo sections`.
	Description string
	// New builds one section instance from its declared options.
	New func(name string, opts section.Options) (section.Section, error)
}

// Registry holds all the registered section kinds for a single application
// instance.
type Registry struct {
	sections map[string]*RegisteredSection
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		sections: make(map[string]*RegisteredSection),
	}
}

// RegisterSection registers the factory for a section kind.
func (r *Registry) RegisterSection(kind string, rs *RegisteredSection) {
	if kind == "" {
		panic("section kind must not be empty")
	}
	if rs == nil || rs.New == nil {
		panic(fmt.Sprintf("section kind '%s' registered without a factory", kind))
	}
	if _, exists := r.sections[kind]; exists {
		panic(fmt.Sprintf("section kind '%s' already registered", kind))
	}
	slog.Debug("Registering section kind.", "kind", kind)
	r.sections[kind] = rs
}

// Lookup returns the registration for kind.
func (r *Registry) Lookup(kind string) (*RegisteredSection, bool) {
	rs, ok := r.sections[kind]
	return rs, ok
}

// Kinds returns every registered kind in lexical order.
func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.sections))
}
