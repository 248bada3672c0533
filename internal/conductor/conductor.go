package conductor

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/specialistvlad/orchestraigo/internal/section"
)

// Recorder receives metrics about performances. See internal/metrics.
type Recorder interface {
	ObserveSection(name string, outcome Outcome, d time.Duration)
	ObservePerformance(r *Report)
}

// Option configures a Conductor.
type Option func(*Conductor)

// WithConcurrency sets how many sections may perform at once. Values below
// two keep the default synchronous, one-at-a-time pass.
func WithConcurrency(n int) Option {
	return func(c *Conductor) { c.concurrency = n }
}

// WithFailFast makes the first failed section abort the rest of the pass.
func WithFailFast(enabled bool) Option {
	return func(c *Conductor) { c.failFast = enabled }
}

// WithTimeout bounds a whole pass. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Conductor) { c.timeout = d }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Conductor) { c.recorder = r }
}

// WithLogger sets the logger used outside of a performance, i.e. for
// registration notices. Performances log to the logger found in their
// context.
func WithLogger(l *slog.Logger) Option {
	return func(c *Conductor) { c.logger = l }
}

type entry struct {
	name  string
	value any
	// section is nil when value lacks the capability.
	section section.Section
}

// Conductor is the registry of named sections.
type Conductor struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]int

	concurrency int
	failFast    bool
	timeout     time.Duration
	recorder    Recorder
	logger      *slog.Logger
}

// New creates an empty conductor.
func New(opts ...Option) *Conductor {
	c := &Conductor{
		index:       make(map[string]int),
		concurrency: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds s under name. Registering an existing name replaces the
// previous section but keeps its position. Values that do not implement
// section.Section are kept and reported as skipped on every pass.
func (c *Conductor) Register(name string, s any) {
	if name == "" {
		panic("conductor: section name must not be empty")
	}

	e := &entry{name: name, value: s}
	if sec, ok := s.(section.Section); ok {
		e.section = sec
	} else {
		c.logger.Warn("Registered value does not implement Perform; it will be skipped.", "section", name, "type", fmt.Sprintf("%T", s))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, exists := c.index[name]; exists {
		c.logger.Warn("Replacing previously registered section.", "section", name)
		c.entries[i] = e
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, e)
	c.logger.Debug("Registered section.", "section", name)
}

// Unregister removes name and reports whether it was present.
func (c *Conductor) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].name] = j
	}
	return true
}

// Lookup returns the value registered under name.
func (c *Conductor) Lookup(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].value, true
}

// Len returns the number of registered sections.
func (c *Conductor) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sections yields registered names in registration order. Each iteration
// takes a fresh snapshot, so the sequence can be ranged over repeatedly.
func (c *Conductor) Sections() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range c.snapshot() {
			if !yield(e.name) {
				return
			}
		}
	}
}

// Summary writes the list of registered sections to w.
func (c *Conductor) Summary(w io.Writer) {
	fmt.Fprintln(w, "=== Orchestra Summary ===")
	for _, e := range c.snapshot() {
		if e.section == nil {
			fmt.Fprintf(w, "🎵 Section: %s (not performable)\n", e.name)
			continue
		}
		fmt.Fprintf(w, "🎵 Section: %s\n", e.name)
	}
	fmt.Fprintln(w, "=========================")
}

func (c *Conductor) snapshot() []*entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entry, len(c.entries))
	copy(out, c.entries)
	return out
}
