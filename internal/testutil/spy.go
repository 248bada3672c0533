package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
)

// SpyKind is the section kind registered by SpyModule.
const SpyKind = "spy"

// SpyModule registers a "spy" section kind that records every performance.
// Options shape its behaviour:
//
//	fail  = "message"  return an error with this message
//	panic = "message"  panic with this message
//	sleep = "50ms"     wait this long, or until the context is done
type SpyModule struct {
	mu        sync.Mutex
	calls     []string
	scores    []section.Score
	active    int
	maxActive int
}

// Register registers the spy section kind.
func (m *SpyModule) Register(r *registry.Registry) {
	r.RegisterSection(SpyKind, &registry.RegisteredSection{
		Description: "records performances for tests",
		New: func(name string, opts section.Options) (section.Section, error) {
			if raw, ok := opts["sleep"].(string); ok {
				if _, err := time.ParseDuration(raw); err != nil {
					return nil, fmt.Errorf("invalid sleep %q: %w", raw, err)
				}
			}
			return &spySection{
				module:   m,
				name:     name,
				failMsg:  opts.String("fail", ""),
				panicMsg: opts.String("panic", ""),
				sleep:    opts.Duration("sleep", 0),
			}, nil
		},
	})
}

// Calls returns instance names in the order their Perform started.
func (m *SpyModule) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Scores returns the score each call received, aligned with Calls.
func (m *SpyModule) Scores() []section.Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]section.Score(nil), m.scores...)
}

// MaxActive returns the highest number of spies seen performing at once.
func (m *SpyModule) MaxActive() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxActive
}

func (m *SpyModule) enter(name string, score section.Score) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	m.scores = append(m.scores, score)
	m.active++
	m.maxActive = max(m.maxActive, m.active)
}

func (m *SpyModule) leave() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active--
}

type spySection struct {
	module   *SpyModule
	name     string
	failMsg  string
	panicMsg string
	sleep    time.Duration
}

func (s *spySection) Perform(ctx context.Context, score section.Score) error {
	s.module.enter(s.name, score)
	defer s.module.leave()

	if s.sleep > 0 {
		select {
		case <-time.After(s.sleep):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.failMsg != "" {
		return errors.New(s.failMsg)
	}
	return nil
}
