package snapshot

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/keshon/svcs/internal/fingerprint"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
)

const stagingPrefix = ".staging-"

var (
	ErrNotFound = errors.New("snapshot not found")
	ErrExists   = errors.New("snapshot already exists")
	ErrBadPath  = errors.New("path escapes the snapshot")
)

// SnapshotContext stores snapshots as one directory per fingerprint under Root.
type SnapshotContext struct {
	Root string // commits dir
	FS   fs.FS
}

// NewSnapshotContext creates a new SnapshotContext.
func NewSnapshotContext(root string, fs fs.FS) *SnapshotContext {
	return &SnapshotContext{Root: root, FS: fs}
}

func (sc *SnapshotContext) dir(fp string) string {
	return filepath.Join(sc.Root, fp)
}

// Exists reports whether a snapshot is stored for fp.
func (sc *SnapshotContext) Exists(fp string) bool {
	return fingerprint.Valid(fp) && sc.FS.IsDir(sc.dir(fp))
}

// Create copies the files at paths (relative to srcRoot) into a new snapshot for fp.
// The copy is staged in a hidden directory and published with a single rename,
// so Exists never observes a partially written snapshot.
func (sc *SnapshotContext) Create(fp, srcRoot string, paths []string) error {
	if !fingerprint.Valid(fp) {
		return fmt.Errorf("invalid fingerprint %q", fp)
	}
	if sc.Exists(fp) {
		return fmt.Errorf("snapshot %s: %w", fp, ErrExists)
	}
	for _, p := range paths {
		if !contained(p) {
			return fmt.Errorf("store %q: %w", p, ErrBadPath)
		}
	}

	staging := filepath.Join(sc.Root, stagingPrefix+uuid.NewString())
	if err := sc.FS.MkdirAll(staging, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	published := false
	defer func() {
		if !published {
			sc.FS.RemoveAll(staging)
		}
	}()

	for _, p := range paths {
		rel := filepath.FromSlash(p)
		if err := fs.CopyFileAtomic(sc.FS, filepath.Join(srcRoot, rel), filepath.Join(staging, rel)); err != nil {
			return fmt.Errorf("store %q: %w", p, err)
		}
	}

	if err := sc.FS.Rename(staging, sc.dir(fp)); err != nil {
		if sc.Exists(fp) {
			return fmt.Errorf("snapshot %s: %w", fp, ErrExists)
		}
		return fmt.Errorf("publish snapshot %s: %w", fp, err)
	}
	published = true
	return nil
}

// Read returns every file of the snapshot for fp, sorted by path.
func (sc *SnapshotContext) Read(fp string) ([]file.Entry, error) {
	if !sc.Exists(fp) {
		return nil, fmt.Errorf("snapshot %q: %w", fp, ErrNotFound)
	}

	root := sc.dir(fp)
	var files []file.Entry
	err := sc.walk(root, "", func(rel string) error {
		full := filepath.Join(root, filepath.FromSlash(rel))
		info, err := sc.FS.Stat(full)
		if err != nil {
			return fmt.Errorf("stat %q: %w", full, err)
		}
		data, err := sc.FS.ReadFile(full)
		if err != nil {
			return fmt.Errorf("read %q: %w", full, err)
		}
		files = append(files, file.Entry{Path: rel, Data: data, Mode: info.Mode().Perm()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", fp, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// List returns the fingerprints of all stored snapshots, sorted.
func (sc *SnapshotContext) List() ([]string, error) {
	entries, err := sc.FS.ReadDir(sc.Root)
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() && fingerprint.Valid(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// CleanupStaging removes staging directories left behind by an interrupted Create.
func (sc *SnapshotContext) CleanupStaging() error {
	entries, err := sc.FS.ReadDir(sc.Root)
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), stagingPrefix) {
			if err := sc.FS.RemoveAll(filepath.Join(sc.Root, e.Name())); err != nil {
				return fmt.Errorf("remove %q: %w", e.Name(), err)
			}
		}
	}
	return nil
}

// contained reports whether the relative path p stays below the directory it is joined to.
func contained(p string) bool {
	rel := filepath.Clean(filepath.FromSlash(p))
	return rel != "." && rel != ".." && !filepath.IsAbs(rel) &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (sc *SnapshotContext) walk(dir, rel string, fn func(rel string) error) error {
	entries, err := sc.FS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}
	for _, e := range entries {
		childRel := path.Join(rel, e.Name())
		if e.IsDir() {
			if err := sc.walk(filepath.Join(dir, e.Name()), childRel, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(childRel); err != nil {
			return err
		}
	}
	return nil
}
