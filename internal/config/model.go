package config

import (
	"fmt"
	"maps"
	"time"
)

// Model is the unified, format-agnostic representation of one or more score
// files.
type Model struct {
	// Conductor is nil when no file declared conductor settings.
	Conductor *ConductorSettings
	// Sections keep declaration order, which is the performance order.
	Sections []*SectionSpec
	// Score is the payload shared by all sections.
	Score map[string]any
}

// ConductorSettings mirror the conductor package options.
type ConductorSettings struct {
	Concurrency int
	FailFast    bool
	Timeout     time.Duration
	Source      string
}

// SectionSpec declares one section instance.
type SectionSpec struct {
	Kind    string
	Name    string
	Options map[string]any
	// Source is the file the declaration came from, for error messages.
	Source string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Score: make(map[string]any)}
}

// Merge folds other into m. Sections are appended, score keys from other
// win, and declaring conductor settings twice is an error.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.Conductor != nil {
		if m.Conductor != nil {
			return fmt.Errorf("conductor settings declared twice (in %s and %s)", m.Conductor.Source, other.Conductor.Source)
		}
		m.Conductor = other.Conductor
	}
	m.Sections = append(m.Sections, other.Sections...)
	if m.Score == nil {
		m.Score = make(map[string]any, len(other.Score))
	}
	maps.Copy(m.Score, other.Score)
	return nil
}
