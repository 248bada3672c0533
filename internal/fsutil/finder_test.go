package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# test"), 0o644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "notes.txt", "nested/c.hcl")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "dir/one.yaml", "dir/two.yaml", "dir/skip.hcl", "explicit.yml")

	files, err := CollectFiles([]string{filepath.Join(root, "explicit.yml"), filepath.Join(root, "dir")}, ".yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "explicit.yml"),
		filepath.Join(root, "dir", "one.yaml"),
		filepath.Join(root, "dir", "two.yaml"),
	}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "missing.hcl")}, ".hcl")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectFiles_MultipleExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.yml", "a.yaml", "c.json")

	files, err := CollectFiles([]string{root}, ".yaml", ".yml")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "b.yml"),
	}, files)
}
