package file

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

func (fc *FileContext) indexPath() string {
	return filepath.Join(fc.RepoDir, config.IndexFile)
}

// LoadIndex returns the tracked paths in insertion order.
// Blank lines, repeated paths and paths outside the working tree or inside
// the repository dir are skipped.
func (fc *FileContext) LoadIndex() ([]string, error) {
	data, err := fc.FS.ReadFile(fc.indexPath())
	if err != nil {
		if fc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var paths []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		p := strings.TrimSuffix(line, "\r")
		if p == "" {
			continue
		}
		rel, err := fc.checkRelative(p)
		if err != nil {
			continue
		}
		p = filepath.ToSlash(rel)
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths, nil
}

// SaveIndex overwrites the index with paths, one per line.
func (fc *FileContext) SaveIndex(paths []string) error {
	if err := fc.FS.MkdirAll(fc.RepoDir, 0o755); err != nil {
		return fmt.Errorf("mkdir index dir: %w", err)
	}
	data := []byte(strings.Join(paths, "\n"))
	if err := fs.WriteFileAtomic(fc.FS, fc.indexPath(), data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// AddToIndex appends path to the index unless it is already tracked.
// It reports whether the index changed.
func (fc *FileContext) AddToIndex(path string) (bool, error) {
	paths, err := fc.LoadIndex()
	if err != nil {
		return false, err
	}
	if slices.Contains(paths, path) {
		return false, nil
	}
	return true, fc.SaveIndex(append(paths, path))
}
