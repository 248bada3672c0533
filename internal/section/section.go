// Package section defines the capability contract every orchestral section
// implements, and the loosely typed value maps (scores and options) that
// flow into sections from score files.
package section

import "context"

// Section is the single capability the conductor relies on. Perform is
// called once per performance pass with the shared score. Implementations
// must treat the score as read-only and fall back to documented defaults for
// missing keys.
type Section interface {
	Perform(ctx context.Context, score Score) error
}

// Named is implemented by sections that carry their own display name.
type Named interface {
	Name() string
}

// Func adapts an ordinary function into a Section.
type Func func(ctx context.Context, score Score) error

// Perform calls f(ctx, score).
func (f Func) Perform(ctx context.Context, score Score) error {
	return f(ctx, score)
}
