package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/orchestraigo/internal/config"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullScore = `
conductor {
  concurrency = 2
  fail_fast   = true
  timeout     = "1500ms"
}

section "bass" "Bass" {
  bins = 5
}

section "woodwinds" "Lyrics" {
  mode          = "embedding"
  embedding_dim = 4
}

score {
  values  = [1, 2.5, 3]
  X       = [[0, 1], [1, 0]]
  query   = "What is orchestraigo?"
  metrics = { accuracy = 0.9, loss = 0.1 }
  enabled = true
}
`

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadBytes_FullScore(t *testing.T) {
	model, err := NewLoader().LoadBytes([]byte(fullScore), "score.hcl")
	require.NoError(t, err)

	want := &config.Model{
		Conductor: &config.ConductorSettings{Concurrency: 2, FailFast: true, Timeout: 1500 * time.Millisecond, Source: "score.hcl"},
		Sections: []*config.SectionSpec{
			{Kind: "bass", Name: "Bass", Options: map[string]any{"bins": 5.0}, Source: "score.hcl"},
			{Kind: "woodwinds", Name: "Lyrics", Options: map[string]any{"mode": "embedding", "embedding_dim": 4.0}, Source: "score.hcl"},
		},
		Score: map[string]any{
			"values":  []any{1.0, 2.5, 3.0},
			"X":       []any{[]any{0.0, 1.0}, []any{1.0, 0.0}},
			"query":   "What is orchestraigo?",
			"metrics": map[string]any{"accuracy": 0.9, "loss": 0.1},
			"enabled": true,
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBytes_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"syntax error": {
			src:  `section "bass" "Bass" {`,
			want: "failed to parse",
		},
		"two conductor blocks": {
			src:  "conductor {}\nconductor {}",
			want: "at most one conductor block",
		},
		"bad timeout": {
			src:  `conductor { timeout = "soon" }`,
			want: "invalid conductor timeout",
		},
		"zero concurrency": {
			src:  `conductor { concurrency = 0 }`,
			want: "concurrency must be at least 1",
		},
		"missing label": {
			src:  `section "bass" {}`,
			want: "failed to decode",
		},
		"variable reference": {
			src:  `score { values = var.values }`,
			want: "attribute \"values\"",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_DirectoryMergesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"01-sections.hcl": `
section "bass" "Bass" {}
score { prompt = "first" }
`,
		"02-more.hcl": `
section "harp" "Harp" { mode = "image" }
score {
  prompt = "second"
  values = [4]
}
`,
		"readme.md": "not a score",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	model, err := NewLoader().Load(testContext(), dir)
	require.NoError(t, err)

	require.Len(t, model.Sections, 2)
	assert.Equal(t, "Bass", model.Sections[0].Name)
	assert.Equal(t, "Harp", model.Sections[1].Name)
	assert.Equal(t, "second", model.Score["prompt"])
	assert.Equal(t, []any{4.0}, model.Score["values"])
	assert.Nil(t, model.Conductor)
}

func TestLoad_ConductorAcrossFilesConflicts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte("conductor {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte("conductor {}"), 0o644))

	_, err := NewLoader().Load(testContext(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared twice")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	model, err := NewLoader().Load(testContext(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, model.Sections)
	assert.Empty(t, model.Score)
}
