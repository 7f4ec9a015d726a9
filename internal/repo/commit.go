package repo

import (
	"fmt"

	"github.com/keshon/svcs/internal/fingerprint"
	"github.com/keshon/svcs/internal/repo/meta"
)

// Outcome is the result of a commit attempt that did not fail.
type Outcome int

const (
	Committed Outcome = iota
	NothingToCommit
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case NothingToCommit:
		return "nothing to commit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Commit snapshots the tracked files and records message in the log.
// If the tracked set is empty, or its fingerprint already has a snapshot,
// nothing is written and NothingToCommit is returned.
func (r *Repository) Commit(message string) (Outcome, string, error) {
	if message == "" {
		return NothingToCommit, "", ErrMissingMessage
	}

	paths, err := r.Tracked()
	if err != nil {
		return NothingToCommit, "", err
	}
	if len(paths) == 0 {
		return NothingToCommit, fingerprint.None, nil
	}

	fp, err := fingerprint.Compute(r.Store.FS, r.Config.WorkingTreeDir, paths)
	if err != nil {
		return NothingToCommit, "", fmt.Errorf("fingerprint: %w", err)
	}
	if r.Store.SnapshotCtx.Exists(fp) {
		return NothingToCommit, fp, nil
	}

	author, err := r.Meta.Author()
	if err != nil {
		return NothingToCommit, "", err
	}

	if err := r.Store.SnapshotCtx.Create(fp, r.Config.WorkingTreeDir, paths); err != nil {
		return NothingToCommit, "", err
	}
	if err := r.Meta.AppendLog(meta.Entry{Fingerprint: fp, Author: author, Message: message}); err != nil {
		return NothingToCommit, "", err
	}
	return Committed, fp, nil
}
