package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_ListsKinds(t *testing.T) {
	_, out, err := execute(t, "sections")
	require.NoError(t, err)

	for _, kind := range []string{"bass", "brass", "choir", "harp", "keyboards", "percussion", "strings", "woodwinds"} {
		assert.Contains(t, out, kind)
	}
	assert.Contains(t, out, "KIND")
}

func TestSections_ListsDeclared(t *testing.T) {
	score := filepath.Join(t.TempDir(), "score.hcl")
	require.NoError(t, os.WriteFile(score, []byte(`
section "bass" "Bass" {}
section "harp" "Art" { mode = "image" }
`), 0o644))

	_, out, err := execute(t, "--log-level", "error", "sections", score)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `Art\s+harp\s+`, out)
}

func TestSections_UnknownKind(t *testing.T) {
	score := filepath.Join(t.TempDir(), "score.hcl")
	require.NoError(t, os.WriteFile(score, []byte(`section "tuba" "T" {}`), 0o644))

	_, _, err := execute(t, "--log-level", "error", "sections", score)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind 'tuba'")
}

func TestPaths(t *testing.T) {
	root := t.TempDir()
	_, out, err := execute(t, "--root", root, "paths", "--ensure")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Orchestraigo Paths ===")
	assert.Contains(t, out, filepath.Join(root, "models"))
	assert.DirExists(t, filepath.Join(root, "experiments"))
}

func TestStats(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"describe": {
			args: []string{"stats", "describe", "1", "2,3", "4"},
			want: []string{"count: 4", "mean: 2.5", "min: 1", "max: 4"},
		},
		"describe empty": {
			args: []string{"stats", "describe"},
			want: []string{"count: 0", "mean: NaN"},
		},
		"ttest": {
			args: []string{"stats", "ttest", "--a", "1,2,3,4", "--b", "1,2,3,4"},
			want: []string{"t: 0", "p_value: 1"},
		},
		"ttest too few": {
			args: []string{"stats", "ttest", "--a", "1", "--b", "1,2"},
			want: []string{"t: NaN", "df: NaN", "p_value: NaN"},
		},
		"drift identical": {
			args: []string{"stats", "drift", "--reference", "1,2,3", "--current", "1,2,3", "--bins", "3"},
			want: []string{"psi: 0", "mean_shift: 0"},
		},
		"describe negatives": {
			args: []string{"stats", "describe", "-1", "-3", "2"},
			want: []string{"count: 3", "min: -3", "max: 2"},
		},
		"describe separator": {
			args: []string{"stats", "describe", "--", "-2", "2"},
			want: []string{"count: 2", "mean: 0"},
		},
		"describe help": {
			args: []string{"stats", "describe", "--help"},
			want: []string{"Count, mean, sample standard deviation"},
		},
		"calibrate": {
			args: []string{"stats", "calibrate", "--", "-0.5", "0.25", "1.5"},
			want: []string{"0 0.25 1"},
		},
		"calibrate isotonic": {
			args: []string{"stats", "calibrate", "--fit-scores", "0.1,0.4,0.6,0.9", "--fit-labels", "0,0,1,1", "0.2", "0.8"},
			want: []string{"0 1"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, out, err := execute(t, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestStats_CalibrateFitMismatch(t *testing.T) {
	_, _, err := execute(t, "stats", "calibrate", "--fit-scores", "0.1,0.2", "--fit-labels", "1", "0.5")
	requireExitCode(t, err, 2)
	assert.Contains(t, err.Error(), "failed to fit isotonic calibrator")
}
