package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temp file next to path and renames it into place.
// The parent directory must exist.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, tmpPath, err := fsys.CreateTempFile(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %q: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fsys.Remove(tmpPath)
		return fmt.Errorf("write %q: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("close %q: %w", tmpPath, err)
	}

	if err := fsys.Chmod(tmpPath, perm); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("chmod %q: %w", tmpPath, err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("rename %q to %q: %w", tmpPath, path, err)
	}
	return nil
}

// CopyFileAtomic streams src into a temp file next to dst and renames it into place.
// The copy keeps the permission bits of src.
func CopyFileAtomic(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %q: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("copy %q: is a directory", src)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open %q: %w", src, err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure dir for %q: %w", dst, err)
	}

	tmp, tmpPath, err := fsys.CreateTempFile(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %q: %w", dir, err)
	}

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		fsys.Remove(tmpPath)
		return fmt.Errorf("copy %q: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("close %q: %w", tmpPath, err)
	}
	if err := fsys.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("chmod %q: %w", tmpPath, err)
	}
	if err := fsys.Rename(tmpPath, dst); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("rename %q to %q: %w", tmpPath, dst, err)
	}
	return nil
}
