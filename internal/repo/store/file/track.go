package file

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrOutsideTree = errors.New("path is outside the working tree")
	ErrInRepoDir   = errors.New("path is inside the repository directory")
	ErrNotRegular  = errors.New("path is not a regular file")
)

// Resolve turns a user-supplied path into the slash-separated form stored in the index.
// The path must name a regular file inside the working tree and outside the repository dir.
func (fc *FileContext) Resolve(path string) (string, error) {
	rel := path
	if filepath.IsAbs(path) {
		r, err := filepath.Rel(fc.WorkingTreeDir, path)
		if err != nil {
			return "", fmt.Errorf("%q: %w", path, ErrOutsideTree)
		}
		rel = r
	}
	rel, err := fc.checkRelative(rel)
	if err != nil {
		return "", fmt.Errorf("%q: %w", path, err)
	}

	full := filepath.Join(fc.WorkingTreeDir, rel)

	info, err := fc.FS.Stat(full)
	if err != nil {
		return "", fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%q: %w", path, ErrNotRegular)
	}

	return filepath.ToSlash(rel), nil
}

// checkRelative cleans a working-tree relative path and rejects paths that
// leave the tree or point into the repository dir.
func (fc *FileContext) checkRelative(rel string) (string, error) {
	rel = filepath.Clean(filepath.FromSlash(rel))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", ErrOutsideTree
	}
	if inRepo, err := within(fc.RepoDir, filepath.Join(fc.WorkingTreeDir, rel)); err == nil && inRepo {
		return "", ErrInRepoDir
	}
	return rel, nil
}

// within reports whether target is dir or below it.
func within(dir, target string) (bool, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absDir, absTarget)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}
