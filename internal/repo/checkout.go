package repo

import (
	"fmt"
)

// Checkout copies every file of the snapshot fp into the working tree.
// Existing files are overwritten; files the snapshot does not contain are kept.
// An unknown or malformed fp returns ErrNotFound before anything is written.
func (r *Repository) Checkout(fp string) error {
	if !r.Store.SnapshotCtx.Exists(fp) {
		return fmt.Errorf("commit %q: %w", fp, ErrNotFound)
	}

	entries, err := r.Store.SnapshotCtx.Read(fp)
	if err != nil {
		return err
	}

	bar := r.bar(len(entries), "Restoring files")
	return r.Store.FileCtx.RestoreFilesToWorkingTree(entries, bar)
}
