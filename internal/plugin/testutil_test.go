package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// writeFiles creates each path (relative to root) with the given content.
func writeFiles(t *testing.T, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
}

// readFile returns the content of path, failing the test if it cannot be read.
func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}

// relPaths strips root from every path and converts to slash form.
func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func fileMode(t *testing.T, fsys afero.Fs, path string) os.FileMode {
	t.Helper()
	info, err := fsys.Stat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}
