package analyzer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// NormalizeExtensions lowercases each extension and ensures a leading dot,
// so "JS", ".js" and "js" all match the same files. Empty entries are
// dropped.
func NormalizeExtensions(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// FindSourceFiles walks root recursively and returns every regular file
// whose extension is in exts, in lexical (directory-traversal) order.
func FindSourceFiles(root string, exts []string) ([]string, error) {
	set := NormalizeExtensions(exts)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if set[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}
	return files, nil
}
