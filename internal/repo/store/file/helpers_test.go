package file_test

import (
	"testing"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
)

func newTestFC(t *testing.T) (*file.FileContext, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("work/vcs", 0o755); err != nil {
		t.Fatal(err)
	}
	return file.NewFileContext("work", "work/vcs", m), m
}
