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
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# test"), 0644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "nested/c.hcl", "notes.txt")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.hcl", "notes.txt")

	files, err := FindFilesByExtension(filepath.Join(root, "a.hcl"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.hcl")}, files)

	files, err = FindFilesByExtension(filepath.Join(root, "notes.txt"), ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.ErrorContains(t, err, "error accessing path")
}

func TestFindAll_Deduplicates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.hcl", "b.hcl")

	files, err := FindAll([]string{filepath.Join(root, "b.hcl"), root}, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "a.hcl"),
	}, files)
}
