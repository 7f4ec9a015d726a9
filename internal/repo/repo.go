package repo

import (
	"errors"
	"fmt"
	"io"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/progress"
	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

var (
	ErrMissingMessage = errors.New("message was not passed")
	ErrNotFound       = snapshot.ErrNotFound
	ErrFileNotFound   = errors.New("file not found")
)

// Repository represents an opened repository.
type Repository struct {
	Config *config.RepoConfig
	Store  *store.StoreContext
	Meta   *meta.MetaContext

	// Progress receives the spinner of long operations. Nil disables it.
	Progress io.Writer
}

// OpenAt wires a repository for cfg without touching the disk.
// A nil fsys selects the OS filesystem.
func OpenAt(cfg *config.RepoConfig, fsys fs.FS) (*Repository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if fsys == nil {
		fsys = fs.NewOSFS()
	}

	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: fsys})
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}
	mc, err := meta.NewMeta(cfg, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to init meta: %w", err)
	}

	return &Repository{Config: cfg, Store: st, Meta: mc}, nil
}

// InitAt opens the repository for cfg and creates whatever part of its layout is missing.
// Returns (*Repository, created, error).
func InitAt(cfg *config.RepoConfig, fsys fs.FS) (*Repository, bool, error) {
	r, err := OpenAt(cfg, fsys)
	if err != nil {
		return nil, false, err
	}
	created, err := r.Store.EnsureLayout()
	if err != nil {
		return nil, false, err
	}
	return r, created, nil
}

func (r *Repository) bar(total int, message string) *progress.ProgressTracker {
	return progress.NewProgress(r.Progress, total, message)
}

// Log returns the commit log, newest first.
func (r *Repository) Log() ([]meta.Entry, error) {
	return r.Meta.ReadLog()
}

// Tracked returns the tracked paths in the order they were added.
func (r *Repository) Tracked() ([]string, error) {
	return r.Store.FileCtx.LoadIndex()
}

// Track adds path to the index and returns the path as stored there.
// It reports whether the path was not tracked before.
func (r *Repository) Track(path string) (string, bool, error) {
	rel, err := r.Store.FileCtx.Resolve(path)
	if err != nil {
		if r.Store.FS.IsNotExist(err) ||
			errors.Is(err, file.ErrOutsideTree) ||
			errors.Is(err, file.ErrInRepoDir) ||
			errors.Is(err, file.ErrNotRegular) {
			return "", false, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return "", false, err
	}
	added, err := r.Store.FileCtx.AddToIndex(rel)
	if err != nil {
		return "", false, err
	}
	return rel, added, nil
}
