package repo_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo"
)

const (
	fpHello  = "59cf4ed07faff74096d2be40c3acbdea62c357484b265c8a6d922e2b0ca48602"
	fpHello2 = "d2c0380a758962dccfc99369da61cc9600170c752fe17bf451c70e4c7460df39"
)

func newTestRepo(t *testing.T) (*repo.Repository, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("work", 0o755); err != nil {
		t.Fatal(err)
	}
	r, created, err := repo.InitAt(config.NewRepoConfig("work"), m)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected repository to be created")
	}
	return r, m
}

func writeFile(t *testing.T, m *fs.MemoryFS, rel, content string) {
	t.Helper()
	p := filepath.Join("work", rel)
	if err := m.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, m *fs.MemoryFS, rel string) string {
	t.Helper()
	data, err := m.ReadFile(filepath.Join("work", rel))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func track(t *testing.T, r *repo.Repository, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if _, _, err := r.Track(p); err != nil {
			t.Fatalf("Track(%q): %v", p, err)
		}
	}
}

func mustCommit(t *testing.T, r *repo.Repository, msg string) (repo.Outcome, string) {
	t.Helper()
	out, fp, err := r.Commit(msg)
	if err != nil {
		t.Fatalf("Commit(%q): %v", msg, err)
	}
	return out, fp
}

func TestInitAtCreatesLayout(t *testing.T) {
	r, m := newTestRepo(t)
	cfg := r.Config

	for _, d := range []string{cfg.RepoDir, cfg.CommitsDir()} {
		if !m.IsDir(d) {
			t.Errorf("missing dir %s", d)
		}
	}
	for _, f := range []string{cfg.ConfigFile(), cfg.IndexFile(), cfg.LogFile()} {
		if !m.Exists(f) {
			t.Errorf("missing file %s", f)
		}
	}

	// leftovers of an interrupted commit are removed by the next setup
	staging := filepath.Join(cfg.CommitsDir(), ".staging-leftover")
	if err := m.MkdirAll(staging, 0o755); err != nil {
		t.Fatal(err)
	}
	_, created, err := repo.InitAt(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second InitAt reported created")
	}
	if m.Exists(staging) {
		t.Error("staging dir was not cleaned up")
	}
}

func TestCommitCheckoutScenario(t *testing.T) {
	r, m := newTestRepo(t)
	if err := r.Meta.SetAuthor("alice"); err != nil {
		t.Fatal(err)
	}

	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")

	out, f1 := mustCommit(t, r, "init")
	if out != repo.Committed || f1 != fpHello {
		t.Fatalf("first commit = %v %s, want committed %s", out, f1, fpHello)
	}

	writeFile(t, m, "a.txt", "hello!")
	out, f2 := mustCommit(t, r, "update")
	if out != repo.Committed || f2 != fpHello2 {
		t.Fatalf("second commit = %v %s, want committed %s", out, f2, fpHello2)
	}

	if err := r.Checkout(f1); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, m, "a.txt"); got != "hello" {
		t.Errorf("a.txt after checkout = %q, want hello", got)
	}

	entries, err := r.Log()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("log has %d entries, want 2", len(entries))
	}
	if entries[0].Fingerprint != f2 || entries[0].Message != "update" || entries[0].Author != "alice" {
		t.Errorf("newest entry = %+v", entries[0])
	}
	if entries[1].Fingerprint != f1 || entries[1].Message != "init" {
		t.Errorf("oldest entry = %+v", entries[1])
	}
}

func TestCommitIdempotent(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")

	if out, _ := mustCommit(t, r, "one"); out != repo.Committed {
		t.Fatalf("first commit outcome = %v", out)
	}
	out, fp := mustCommit(t, r, "two")
	if out != repo.NothingToCommit {
		t.Fatalf("second commit outcome = %v", out)
	}
	if fp != fpHello {
		t.Errorf("no-op commit fingerprint = %s", fp)
	}

	ids, err := r.Store.SnapshotCtx.List()
	if err != nil {
		t.Fatal(err)
	}
	entries, _ := r.Log()
	if len(ids) != 1 || len(entries) != 1 {
		t.Errorf("snapshots=%d log=%d, want 1 and 1", len(ids), len(entries))
	}
}

func TestCommitEmptyIndex(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")

	out, fp := mustCommit(t, r, "nothing")
	if out != repo.NothingToCommit || fp != "" {
		t.Fatalf("Commit = %v %q, want nothing to commit", out, fp)
	}
	ids, _ := r.Store.SnapshotCtx.List()
	entries, _ := r.Log()
	if len(ids) != 0 || len(entries) != 0 {
		t.Errorf("snapshots=%d log=%d, want none", len(ids), len(entries))
	}
}

func TestCommitMissingMessage(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")

	if _, _, err := r.Commit(""); !errors.Is(err, repo.ErrMissingMessage) {
		t.Fatalf("Commit(\"\") err = %v, want ErrMissingMessage", err)
	}
	if ids, _ := r.Store.SnapshotCtx.List(); len(ids) != 0 {
		t.Errorf("snapshot created without message")
	}
}

func TestCommitUnreadableTrackedFile(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")
	if err := m.Remove("work/a.txt"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := r.Commit("broken"); err == nil {
		t.Fatal("expected error for missing tracked file")
	}
	entries, _ := r.Log()
	if len(entries) != 0 {
		t.Errorf("log written on failed commit")
	}
	dirents, err := m.ReadDir(r.Config.CommitsDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(dirents) != 0 {
		t.Errorf("commits dir not empty after failed commit: %d entries", len(dirents))
	}
}

func TestCheckoutNotFound(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")
	mustCommit(t, r, "init")
	writeFile(t, m, "a.txt", "changed")

	for _, fp := range []string{
		"",
		"nope",
		strings.Repeat("0", 64),
		strings.ToUpper(fpHello),
		"../../a.txt",
	} {
		if err := r.Checkout(fp); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("Checkout(%q) err = %v, want ErrNotFound", fp, err)
		}
	}
	if got := readFile(t, m, "a.txt"); got != "changed" {
		t.Errorf("working tree modified by failed checkout: %q", got)
	}
}

func TestCheckoutIsAdditive(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "one")
	writeFile(t, m, "dir/b.txt", "two")
	track(t, r, "a.txt", "dir/b.txt")
	_, fp := mustCommit(t, r, "init")

	writeFile(t, m, "a.txt", "edited")
	writeFile(t, m, "dir/b.txt", "edited")
	writeFile(t, m, "untracked.txt", "keep me")
	writeFile(t, m, "c.txt", "later")
	track(t, r, "c.txt")

	if err := r.Checkout(fp); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"a.txt":         "one",
		"dir/b.txt":     "two",
		"untracked.txt": "keep me",
		"c.txt":         "later",
	}
	for p, content := range want {
		if got := readFile(t, m, p); got != content {
			t.Errorf("%s = %q, want %q", p, got, content)
		}
	}
}

func TestTrack(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")

	rel, added, err := r.Track("a.txt")
	if err != nil || !added || rel != "a.txt" {
		t.Fatalf("Track = %q %v %v", rel, added, err)
	}
	if _, added, _ = r.Track("./a.txt"); added {
		t.Error("re-tracking reported added")
	}

	for _, p := range []string{"missing.txt", "vcs/log.txt", "../outside.txt", "."} {
		if _, _, err := r.Track(p); !errors.Is(err, repo.ErrFileNotFound) {
			t.Errorf("Track(%q) err = %v, want ErrFileNotFound", p, err)
		}
	}

	paths, err := r.Tracked()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "a.txt" {
		t.Errorf("Tracked = %v", paths)
	}
}

func statusOf(t *testing.T, report *repo.StatusReport, path string) repo.FileStatus {
	t.Helper()
	for _, f := range report.Files {
		if f.Path == path {
			return f.Status
		}
	}
	t.Fatalf("no status for %s", path)
	return ""
}

func TestStatus(t *testing.T) {
	r, m := newTestRepo(t)

	report, err := r.Status()
	if err != nil {
		t.Fatal(err)
	}
	if report.LastCommit != "" || len(report.Files) != 0 || !report.CommitNoop {
		t.Errorf("empty repo status = %+v", report)
	}

	writeFile(t, m, "a.txt", "hello")
	writeFile(t, m, "b.txt", "bee")
	track(t, r, "a.txt", "b.txt")

	report, _ = r.Status()
	if statusOf(t, report, "a.txt") != repo.New || report.CommitNoop {
		t.Errorf("before commit: %+v", report)
	}

	_, fp := mustCommit(t, r, "init")
	report, _ = r.Status()
	if report.LastCommit != fp || report.Fingerprint != fp || !report.CommitNoop {
		t.Errorf("after commit: %+v", report)
	}
	if statusOf(t, report, "a.txt") != repo.Unchanged {
		t.Errorf("a.txt status = %s", statusOf(t, report, "a.txt"))
	}

	writeFile(t, m, "a.txt", "hello!")
	if err := m.Remove("work/b.txt"); err != nil {
		t.Fatal(err)
	}
	report, _ = r.Status()
	if got := statusOf(t, report, "a.txt"); got != repo.Modified {
		t.Errorf("a.txt status = %s, want modified", got)
	}
	if got := statusOf(t, report, "b.txt"); got != repo.Missing {
		t.Errorf("b.txt status = %s, want missing", got)
	}
	if report.CommitNoop || report.Fingerprint != "" {
		t.Errorf("status with missing file = %+v", report)
	}
}

func TestVerify(t *testing.T) {
	r, m := newTestRepo(t)
	writeFile(t, m, "a.txt", "hello")
	track(t, r, "a.txt")
	_, f1 := mustCommit(t, r, "init")
	writeFile(t, m, "a.txt", "hello!")
	_, f2 := mustCommit(t, r, "update")

	report, err := r.Verify()
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() || report.Snapshots != 2 {
		t.Fatalf("clean verify = %+v", report)
	}

	if err := m.WriteFile(filepath.Join(r.Config.CommitDir(f1), "a.txt"), []byte("tampered"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveAll(r.Config.CommitDir(f2)); err != nil {
		t.Fatal(err)
	}

	report, err = r.Verify()
	if err != nil {
		t.Fatal(err)
	}
	if report.Snapshots != 1 || len(report.Problems) != 2 {
		t.Fatalf("verify = %+v, want 1 snapshot and 2 problems", report)
	}
	found := map[string]bool{}
	for _, p := range report.Problems {
		found[p.Fingerprint] = true
	}
	if !found[f1] || !found[f2] {
		t.Errorf("problems = %v", report.Problems)
	}
}

func TestRepositoryOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewRepoConfig(dir)
	r, _, err := repo.InitAt(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	osfs := fs.NewOSFS()
	target := filepath.Join(dir, "a.txt")
	if err := osfs.WriteFile(target, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	track(t, r, "a.txt")
	_, fp := mustCommit(t, r, "init")
	if fp != fpHello {
		t.Fatalf("fingerprint = %s", fp)
	}

	if err := osfs.WriteFile(target, []byte("bye"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.Checkout(fp); err != nil {
		t.Fatal(err)
	}
	data, err := osfs.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("a.txt = %q, want hello", data)
	}
}

func TestCommitIgnoresEscapingIndexEntries(t *testing.T) {
	r, m := newTestRepo(t)
	if err := m.WriteFile("secret.txt", []byte("outside"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeFile(t, m, "a.txt", "hello")
	index := "../secret.txt\na.txt\n/secret.txt\n"
	if err := m.WriteFile(r.Config.IndexFile(), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}

	out, fp := mustCommit(t, r, "init")
	if out != repo.Committed || fp != fpHello {
		t.Fatalf("Commit = %v %s, want committed %s", out, fp, fpHello)
	}
	if m.Exists(filepath.Join(r.Config.CommitsDir(), "secret.txt")) {
		t.Fatal("index entry escaped the snapshot")
	}

	writeFile(t, m, "a.txt", "changed")
	if err := r.Checkout(fp); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, m, "a.txt"); got != "hello" {
		t.Errorf("a.txt after checkout = %q, want hello", got)
	}
}
