package file

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/progress"
)

// RestoreFilesToWorkingTree writes entries into the working tree, overwriting existing files.
// Files that are not among entries are left untouched.
func (fc *FileContext) RestoreFilesToWorkingTree(entries []Entry, bar *progress.ProgressTracker) error {
	defer bar.Finish()

	for _, e := range entries {
		if err := fc.restoreFile(e); err != nil {
			return fmt.Errorf("restore %q: %w", e.Path, err)
		}
		bar.Increment()
	}
	return nil
}

func (fc *FileContext) restoreFile(e Entry) error {
	target := filepath.Join(fc.WorkingTreeDir, filepath.FromSlash(e.Path))
	if err := fc.FS.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	mode := e.Mode
	if mode == 0 {
		mode = 0o644
	}
	return fs.WriteFileAtomic(fc.FS, target, e.Data, mode)
}
