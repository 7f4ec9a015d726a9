package repo

import (
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/keshon/svcs/internal/fingerprint"
)

// FileStatus describes a tracked file relative to the last snapshot.
type FileStatus string

const (
	Unchanged FileStatus = "unchanged"
	Modified  FileStatus = "modified"
	New       FileStatus = "new"
	Missing   FileStatus = "missing"
)

// PathStatus is the status of one tracked path.
type PathStatus struct {
	Path   string
	Status FileStatus
}

// StatusReport compares the working tree with the newest commit.
type StatusReport struct {
	LastCommit string // empty when there are no commits
	Files      []PathStatus
	// Fingerprint of the working tree, empty when nothing is tracked or a tracked file is missing.
	Fingerprint string
	// CommitNoop is true when a commit now would record nothing.
	CommitNoop bool
}

// Status reports per tracked file whether it differs from the newest commit's snapshot.
func (r *Repository) Status() (*StatusReport, error) {
	report := &StatusReport{}

	last, err := r.Meta.LastEntry()
	if err != nil {
		return nil, err
	}

	committed := map[string]xxh3.Uint128{}
	if last != nil {
		report.LastCommit = last.Fingerprint
		if r.Store.SnapshotCtx.Exists(last.Fingerprint) {
			entries, err := r.Store.SnapshotCtx.Read(last.Fingerprint)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				committed[e.Path] = xxh3.Hash128(e.Data)
			}
		}
	}

	paths, err := r.Tracked()
	if err != nil {
		return nil, err
	}

	anyMissing := false
	for _, p := range paths {
		st := r.fileStatus(p, committed)
		if st == Missing {
			anyMissing = true
		}
		report.Files = append(report.Files, PathStatus{Path: p, Status: st})
	}

	switch {
	case len(paths) == 0:
		report.CommitNoop = true
	case !anyMissing:
		fp, err := fingerprint.Compute(r.Store.FS, r.Config.WorkingTreeDir, paths)
		if err != nil {
			return nil, err
		}
		report.Fingerprint = fp
		report.CommitNoop = r.Store.SnapshotCtx.Exists(fp)
	}

	return report, nil
}

func (r *Repository) fileStatus(path string, committed map[string]xxh3.Uint128) FileStatus {
	data, err := r.Store.FS.ReadFile(filepath.Join(r.Config.WorkingTreeDir, filepath.FromSlash(path)))
	if err != nil {
		return Missing
	}
	sum, ok := committed[path]
	switch {
	case !ok:
		return New
	case sum != xxh3.Hash128(data):
		return Modified
	default:
		return Unchanged
	}
}
