package conductor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotPerformable marks an entry that does not implement section.Section.
	ErrNotPerformable = errors.New("conductor: section does not implement Perform")
	// ErrAborted marks sections skipped because an earlier one failed in
	// fail-fast mode.
	ErrAborted = errors.New("conductor: performance aborted after a section failed")
)

// Outcome classifies the result of cueing one section.
type Outcome int

const (
	Succeeded Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// SectionError wraps an error returned by (or raised inside) a section.
type SectionError struct {
	Name string
	Err  error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q: %v", e.Name, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// PanicError is recorded when a section panics during Perform.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Result is the outcome of one section in one pass.
type Result struct {
	Name     string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Report aggregates one performance pass. Results follow registration order.
type Report struct {
	ID       uuid.UUID
	Started  time.Time
	Duration time.Duration
	Results  []Result
}

// Succeeded returns the names of sections that completed without error.
func (r *Report) Succeeded() []string { return r.names(Succeeded) }

// Skipped returns the names of sections that were not performed.
func (r *Report) Skipped() []string { return r.names(Skipped) }

// Failed returns the names of sections whose Perform returned an error,
// panicked, or ran past the pass deadline.
func (r *Report) Failed() []string { return r.names(Failed) }

// Result looks up the result for a section name.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Err joins the errors of every failed section, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Outcome == Failed {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Report) names(o Outcome) []string {
	var out []string
	for _, res := range r.Results {
		if res.Outcome == o {
			out = append(out, res.Name)
		}
	}
	return out
}
