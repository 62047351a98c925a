package analyzer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibernatus-hacker/deepwalker/internal/analyzer"
)

func TestNormalizeExtensions(t *testing.T) {
	t.Run("adds leading dot", func(t *testing.T) {
		set := analyzer.NormalizeExtensions([]string{"js", "mjs"})
		assert.True(t, set[".js"])
		assert.True(t, set[".mjs"])
	})

	t.Run("keeps existing dot", func(t *testing.T) {
		set := analyzer.NormalizeExtensions([]string{".ts"})
		assert.True(t, set[".ts"])
		assert.Len(t, set, 1)
	})

	t.Run("lowercases", func(t *testing.T) {
		set := analyzer.NormalizeExtensions([]string{"JS", ".MJS"})
		assert.True(t, set[".js"])
		assert.True(t, set[".mjs"])
	})

	t.Run("drops empty entries", func(t *testing.T) {
		set := analyzer.NormalizeExtensions([]string{"", "  ", "js"})
		assert.Len(t, set, 1)
	})
}

func TestFindSourceFiles(t *testing.T) {
	write := func(t *testing.T, root, rel string) string {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
		return path
	}

	t.Run("finds matching files recursively in lexical order", func(t *testing.T) {
		root := t.TempDir()
		b := write(t, root, "b.js")
		nested := write(t, root, "a/nested.mjs")
		write(t, root, "a/readme.md")
		write(t, root, "c.txt")

		files, err := analyzer.FindSourceFiles(root, []string{"js", "mjs"})
		require.NoError(t, err)
		assert.Equal(t, []string{nested, b}, files)
	})

	t.Run("matches extensions case-insensitively", func(t *testing.T) {
		root := t.TempDir()
		upper := write(t, root, "APP.JS")

		files, err := analyzer.FindSourceFiles(root, []string{"js"})
		require.NoError(t, err)
		assert.Equal(t, []string{upper}, files)
	})

	t.Run("empty directory yields no files", func(t *testing.T) {
		files, err := analyzer.FindSourceFiles(t.TempDir(), []string{"js"})
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := analyzer.FindSourceFiles(filepath.Join(t.TempDir(), "missing"), []string{"js"})
		require.Error(t, err)
	})
}
