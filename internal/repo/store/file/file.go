package file

import (
	"os"

	"github.com/keshon/svcs/internal/fs"
)

// Entry is one file's content addressed by its slash-separated path relative to the working tree.
type Entry struct {
	Path string
	Data []byte
	Mode os.FileMode
}

// FileContext manages the tracked-file index and writes into the working tree.
type FileContext struct {
	WorkingTreeDir string
	RepoDir        string
	FS             fs.FS
}

// NewFileContext creates a new FileContext.
func NewFileContext(workingTreeDir, repoDir string, fs fs.FS) *FileContext {
	return &FileContext{WorkingTreeDir: workingTreeDir, RepoDir: repoDir, FS: fs}
}
