package repo

import (
	"fmt"
	"sort"
	"sync"

	"github.com/keshon/svcs/internal/fingerprint"
	"github.com/keshon/svcs/internal/util"
)

// Problem is one inconsistency found by Verify.
type Problem struct {
	Fingerprint string
	Reason      string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Fingerprint, p.Reason)
}

// VerifyReport lists every problem found across the stored snapshots and the log.
type VerifyReport struct {
	Snapshots int
	Problems  []Problem
}

// OK reports whether no problems were found.
func (v *VerifyReport) OK() bool { return len(v.Problems) == 0 }

// Verify recomputes the fingerprint of every stored snapshot from its own files and
// checks that each log entry still has its snapshot. It never writes.
func (r *Repository) Verify() (*VerifyReport, error) {
	ids, err := r.Store.SnapshotCtx.List()
	if err != nil {
		return nil, err
	}
	report := &VerifyReport{Snapshots: len(ids)}

	var mu sync.Mutex
	addProblem := func(fp, reason string) {
		mu.Lock()
		report.Problems = append(report.Problems, Problem{Fingerprint: fp, Reason: reason})
		mu.Unlock()
	}

	bar := r.bar(len(ids), "Verifying snapshots")
	err = util.Parallel(ids, util.WorkerCount(), func(fp string) error {
		defer bar.Increment()

		entries, err := r.Store.SnapshotCtx.Read(fp)
		if err != nil {
			addProblem(fp, fmt.Sprintf("unreadable snapshot: %v", err))
			return nil
		}
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}

		got, err := fingerprint.Compute(r.Store.FS, r.Config.CommitDir(fp), paths)
		if err != nil {
			addProblem(fp, fmt.Sprintf("unreadable snapshot: %v", err))
			return nil
		}
		if got != fp {
			addProblem(fp, fmt.Sprintf("content fingerprint is %q", got))
		}
		return nil
	})
	bar.Finish()
	if err != nil {
		return nil, err
	}

	entries, err := r.Log()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !r.Store.SnapshotCtx.Exists(e.Fingerprint) {
			addProblem(e.Fingerprint, "logged commit has no snapshot")
		}
	}

	sort.SliceStable(report.Problems, func(i, j int) bool {
		return report.Problems[i].Fingerprint < report.Problems[j].Fingerprint
	})
	return report, nil
}
