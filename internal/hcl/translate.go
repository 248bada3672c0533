package hcl

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/schema"
)

// translate converts the HCL-specific schema of one file into the agnostic model.
func translate(source string, sf *schema.ScoreFile) (*config.Model, error) {
	model := config.NewModel()

	switch len(sf.Conductors) {
	case 0:
	case 1:
		settings, err := translateConductor(source, sf.Conductors[0])
		if err != nil {
			return nil, err
		}
		model.Conductor = settings
	default:
		return nil, fmt.Errorf("%s: at most one conductor block is allowed, found %d", source, len(sf.Conductors))
	}

	for _, s := range sf.Sections {
		opts, err := bodyToNative(s.Options)
		if err != nil {
			return nil, fmt.Errorf("%s: section %q %q: %w", source, s.Kind, s.Name, err)
		}
		model.Sections = append(model.Sections, &config.SectionSpec{
			Kind:    s.Kind,
			Name:    s.Name,
			Options: opts,
			Source:  source,
		})
	}

	for _, sc := range sf.Scores {
		values, err := bodyToNative(sc.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: score: %w", source, err)
		}
		for k, v := range values {
			model.Score[k] = v
		}
	}
	return model, nil
}

func translateConductor(source string, c *schema.Conductor) (*config.ConductorSettings, error) {
	settings := &config.ConductorSettings{Concurrency: 1, Source: source}
	if c.Concurrency != nil {
		if *c.Concurrency < 1 {
			return nil, fmt.Errorf("%s: conductor concurrency must be at least 1, got %d", source, *c.Concurrency)
		}
		settings.Concurrency = *c.Concurrency
	}
	if c.FailFast != nil {
		settings.FailFast = *c.FailFast
	}
	if c.Timeout != nil {
		d, err := time.ParseDuration(*c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid conductor timeout: %w", source, err)
		}
		settings.Timeout = d
	}
	return settings, nil
}

// bodyToNative evaluates every attribute of a block body without variables
// or functions and converts the results to Go values.
func bodyToNative(body hcl.Body) (map[string]any, error) {
	out := make(map[string]any)
	if body == nil {
		return out, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", name, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = native
	}
	return out, nil
}
