package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/orchestraigo/internal/conductor"
	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Validate checks every declared section against the catalog. Unknown kinds
// are errors; reusing an instance name is only a warning because the later
// declaration replaces the earlier one.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]string, len(model.Sections))
	for _, spec := range model.Sections {
		if _, ok := r.sections[spec.Kind]; !ok {
			errs = append(errs, fmt.Sprintf("section '%s' (%s): unknown kind '%s', known kinds: %s",
				spec.Name, spec.Source, spec.Kind, strings.Join(r.Kinds(), ", ")))
		}
		if prev, dup := seen[spec.Name]; dup {
			logger.Warn("Section name declared more than once; the later declaration replaces the earlier one.",
				"section", spec.Name, "first", prev, "second", spec.Source)
		}
		seen[spec.Name] = spec.Source
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Populate instantiates every declared section and registers it with c under
// its instance name, in declaration order.
func (r *Registry) Populate(ctx context.Context, model *config.Model, c *conductor.Conductor) error {
	logger := ctxlog.FromContext(ctx)
	for _, spec := range model.Sections {
		rs, ok := r.sections[spec.Kind]
		if !ok {
			return fmt.Errorf("section '%s': unknown kind '%s'", spec.Name, spec.Kind)
		}
		s, err := rs.New(spec.Name, section.Options(spec.Options))
		if err != nil {
			return fmt.Errorf("failed to build section '%s' of kind '%s': %w", spec.Name, spec.Kind, err)
		}
		c.Register(spec.Name, s)
		logger.Debug("Section instantiated.", "section", spec.Name, "kind", spec.Kind)
	}
	return nil
}
