package app

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/orchestraigo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreLoader_MixedFormats(t *testing.T) {
	dir := writeScore(t, map[string]string{
		"a.hcl":  `section "bass" "Bass" {}`,
		"b.yaml": "sections: [{kind: choir, name: Choir}]\nscore: {prompt: hi}",
	})
	var buf testutil.SafeBuffer

	model, err := NewScoreLoader().Load(testutil.LogContext(&buf), dir)
	require.NoError(t, err)
	require.Len(t, model.Sections, 2)
	assert.Equal(t, "Bass", model.Sections[0].Name)
	assert.Equal(t, "Choir", model.Sections[1].Name)
	assert.Equal(t, "hi", model.Score["prompt"])
}

func TestScoreLoader_MixedFormatsFollowFileOrder(t *testing.T) {
	dir := writeScore(t, map[string]string{
		"1-winds.yaml":  "sections: [{kind: woodwinds, name: Flute}]",
		"2-strings.hcl": `section "strings" "Violin" {}`,
		"3-brass.yml":   "sections: [{kind: brass, name: Horn}]",
		"4-keys/kb.hcl": `section "keyboards" "Organ" {}`,
	})
	var buf testutil.SafeBuffer

	model, err := NewScoreLoader().Load(testutil.LogContext(&buf), dir)
	require.NoError(t, err)

	var names []string
	for _, s := range model.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Flute", "Violin", "Horn", "Organ"}, names)
}

func TestScoreLoader_ExplicitFiles(t *testing.T) {
	dir := writeScore(t, map[string]string{
		"one.yml":   "sections: [{kind: harp, name: Harp}]",
		"notes.txt": "hello",
	})
	var buf testutil.SafeBuffer
	ctx := testutil.LogContext(&buf)

	model, err := NewScoreLoader().Load(ctx, filepath.Join(dir, "one.yml"))
	require.NoError(t, err)
	assert.Len(t, model.Sections, 1)

	_, err = NewScoreLoader().Load(ctx, filepath.Join(dir, "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported score file")

	_, err = NewScoreLoader().Load(ctx, filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
}

func TestScoreLoader_WarnsWhenEmpty(t *testing.T) {
	var buf testutil.SafeBuffer
	_, err := NewScoreLoader().Load(testutil.LogContext(&buf), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No sections declared")
}
