package store

import (
	"fmt"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// StoreContext is the high-level store abstraction that unifies the index and snapshot subsystems.
type StoreContext struct {
	Config      *config.RepoConfig
	FS          fs.FS
	FileCtx     *file.FileContext
	SnapshotCtx *snapshot.SnapshotContext
}

// NewStoreOptions allows optional dependency injection
type NewStoreOptions struct {
	FS          fs.FS
	FileCtx     *file.FileContext
	SnapshotCtx *snapshot.SnapshotContext
}

// NewStoreDefault creates a store on the OS filesystem
func NewStoreDefault(cfg *config.RepoConfig) (*StoreContext, error) {
	return NewStore(cfg, nil)
}

// NewStore creates a store with optional dependencies
func NewStore(cfg *config.RepoConfig, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}

	// Resolve FS
	fsys := fs.FS(&fs.OSFS{})
	if opts != nil && opts.FS != nil {
		fsys = opts.FS
	}

	// Resolve FileContext
	fileCtx := file.NewFileContext(cfg.WorkingTreeDir, cfg.RepoDir, fsys)
	if opts != nil && opts.FileCtx != nil {
		fileCtx = opts.FileCtx
	}

	// Resolve SnapshotContext
	snapshotCtx := snapshot.NewSnapshotContext(cfg.CommitsDir(), fsys)
	if opts != nil && opts.SnapshotCtx != nil {
		snapshotCtx = opts.SnapshotCtx
	}

	return &StoreContext{
		Config:      cfg,
		FS:          fsys,
		FileCtx:     fileCtx,
		SnapshotCtx: snapshotCtx,
	}, nil
}

// EnsureLayout creates the repository directories and empty metadata files that are missing.
// It reports whether the repository directory had to be created.
func (s *StoreContext) EnsureLayout() (bool, error) {
	created := !s.FS.IsDir(s.Config.RepoDir)

	dirs := []string{
		s.Config.RepoDir,
		s.Config.CommitsDir(),
	}
	for _, d := range dirs {
		if err := s.FS.MkdirAll(d, 0o755); err != nil {
			return false, fmt.Errorf("create store dir %q: %w", d, err)
		}
	}

	files := []string{
		s.Config.ConfigFile(),
		s.Config.IndexFile(),
		s.Config.LogFile(),
	}
	for _, f := range files {
		if s.FS.Exists(f) {
			continue
		}
		if err := s.FS.WriteFile(f, nil, 0o644); err != nil {
			return false, fmt.Errorf("create store file %q: %w", f, err)
		}
	}

	if err := s.SnapshotCtx.CleanupStaging(); err != nil {
		return false, fmt.Errorf("cleanup staging: %w", err)
	}
	return created, nil
}
