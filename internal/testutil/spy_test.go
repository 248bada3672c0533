package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/orchestraigo/internal/registry"
	"github.com/specialistvlad/orchestraigo/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpy(t *testing.T, m *SpyModule, name string, opts section.Options) section.Section {
	t.Helper()
	r := registry.New()
	m.Register(r)
	rs, ok := r.Lookup(SpyKind)
	require.True(t, ok)
	s, err := rs.New(name, opts)
	require.NoError(t, err)
	return s
}

func TestSpyModule(t *testing.T) {
	m := &SpyModule{}
	score := section.Score{"k": 1}

	require.NoError(t, newSpy(t, m, "ok", nil).Perform(context.Background(), score))
	assert.EqualError(t, newSpy(t, m, "bad", section.Options{"fail": "nope"}).Perform(context.Background(), nil), "nope")
	assert.PanicsWithValue(t, "boom", func() {
		_ = newSpy(t, m, "wild", section.Options{"panic": "boom"}).Perform(context.Background(), nil)
	})

	assert.Equal(t, []string{"ok", "bad", "wild"}, m.Calls())
	assert.Equal(t, score, m.Scores()[0])
	assert.Equal(t, 1, m.MaxActive())
}

func TestSpyModule_SleepHonorsContext(t *testing.T) {
	m := &SpyModule{}
	s := newSpy(t, m, "slow", section.Options{"sleep": "1s"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Perform(ctx, nil), context.DeadlineExceeded)
}
