package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"

	_ "github.com/keshon/svcs/internal/command/add"
	_ "github.com/keshon/svcs/internal/command/checkout"
	_ "github.com/keshon/svcs/internal/command/commit"
	_ "github.com/keshon/svcs/internal/command/config"
	_ "github.com/keshon/svcs/internal/command/help"
	_ "github.com/keshon/svcs/internal/command/log"
	_ "github.com/keshon/svcs/internal/command/status"
	_ "github.com/keshon/svcs/internal/command/verify"
)

const (
	fpHello  = "59cf4ed07faff74096d2be40c3acbdea62c357484b265c8a6d922e2b0ca48602"
	fpHello2 = "d2c0380a758962dccfc99369da61cc9600170c752fe17bf451c70e4c7460df39"
)

type result struct {
	out, err string
	code     int
}

func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := command.Execute(args, command.Context{
		Config: config.NewRepoConfig(dir),
		FS:     fs.NewOSFS(),
		Stdout: &out,
		Stderr: &errOut,
	})
	return result{out: out.String(), err: errOut.String(), code: code}
}

func expect(t *testing.T, dir string, want string, args ...string) {
	t.Helper()
	res := run(t, dir, args...)
	if res.code != 0 {
		t.Fatalf("%v exited %d: %s", args, res.code, res.err)
	}
	if res.out != want {
		t.Errorf("%v printed %q, want %q", args, res.out, want)
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestHelpAndUnknown(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{nil, {"--help"}, {"help"}} {
		res := run(t, dir, args...)
		if res.code != 0 || !strings.HasPrefix(res.out, "These are SVCS commands:\n") {
			t.Errorf("%v = %+v", args, res)
		}
		if !strings.Contains(res.out, "commit     Save changes.\n") {
			t.Errorf("%v missing commit line:\n%s", args, res.out)
		}
	}

	expect(t, dir, "'frobnicate' is not a SVCS command.\n", "frobnicate")
	expect(t, dir, "'frobnicate' is not a SVCS command.\n", "help", "frobnicate")

	res := run(t, dir, "help", "commit")
	if !strings.HasPrefix(res.out, "Usage: commit") || !strings.Contains(res.out, "Aliases: ci") {
		t.Errorf("help commit = %q", res.out)
	}

	res = run(t, dir, "commit", "--help")
	if res.code != 0 || !strings.Contains(res.out, "Usage: commit") {
		t.Errorf("commit --help = %+v", res)
	}
}

func TestSetupCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	expect(t, dir, "No commits yet.\n", "log")

	for _, p := range []string{"vcs/commits", "vcs/config.txt", "vcs/index.txt", "vcs/log.txt"} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	expect(t, dir, "Please, tell me who you are.\n", "config")
	expect(t, dir, "The username is alice.\n", "config", "alice")
	expect(t, dir, "The username is alice.\n", "config")
	expect(t, dir, "Unsupported operation!\n", "config", "a", "b")
}

func TestAddCommand(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "hello")

	expect(t, dir, "Add a file to the index.\n", "add")
	expect(t, dir, "Can't find 'missing.txt'.\n", "add", "missing.txt")
	expect(t, dir, "The file 'a.txt' is tracked.\n", "add", "a.txt")
	expect(t, dir, "The file 'a.txt' is tracked.\n", "add", "a.txt")
	expect(t, dir, "Tracked files:\na.txt\n", "add")
	expect(t, dir, "Unsupported operation!\n", "add", "a.txt", "b.txt")
}

func TestCommitLogCheckout(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "hello")
	write(t, dir, "notes.txt", "untracked")

	expect(t, dir, "The username is alice.\n", "config", "alice")
	expect(t, dir, "Nothing to commit.\n", "commit", "empty")
	expect(t, dir, "The file 'a.txt' is tracked.\n", "add", "a.txt")

	expect(t, dir, "Message was not passed.\n", "commit")
	expect(t, dir, "Unsupported operation!\n", "commit", "one", "two")
	expect(t, dir, "Unsupported operation!\n", "commit", "-m", "one", "two")

	expect(t, dir, "Changes are committed.\n", "commit", "init")
	expect(t, dir, "Nothing to commit.\n", "commit", "-m", "again")

	write(t, dir, "a.txt", "hello!")
	expect(t, dir, "Changes are committed.\n", "commit", "-m", "update")

	wantLog := "commit " + fpHello2 + "\nAuthor: alice\nupdate\n\n" +
		"commit " + fpHello + "\nAuthor: alice\ninit\n\n"
	expect(t, dir, wantLog, "log")
	expect(t, dir, fpHello2+" update\n", "log", "--oneline", "-n", "1")

	expect(t, dir, "Commit id was not passed.\n", "checkout")
	expect(t, dir, "Commit does not exist.\n", "checkout", "deadbeef")
	expect(t, dir, "Switched to commit "+fpHello+".\n", "checkout", fpHello)

	if got := read(t, dir, "a.txt"); got != "hello" {
		t.Errorf("a.txt = %q, want hello", got)
	}
	if got := read(t, dir, "notes.txt"); got != "untracked" {
		t.Errorf("notes.txt = %q, want untracked", got)
	}
}

func TestStatusCommand(t *testing.T) {
	dir := t.TempDir()
	expect(t, dir, "No commits yet.\n\nNo files are tracked.\n", "status")

	write(t, dir, "a.txt", "hello")
	run(t, dir, "add", "a.txt")
	run(t, dir, "commit", "init")

	want := "Last commit: " + fpHello + "\n\nTracked files:\n  unchanged: a.txt\n\nNothing to commit.\n"
	expect(t, dir, want, "status")

	write(t, dir, "a.txt", "changed")
	expect(t, dir, "M a.txt\n", "status", "-s")
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "hello")
	run(t, dir, "add", "a.txt")
	run(t, dir, "commit", "init")

	expect(t, dir, "Repository OK (1 snapshots).\n", "verify")

	write(t, filepath.Join(dir, "vcs", "commits", fpHello), "a.txt", "tampered")
	res := run(t, dir, "verify")
	if res.code != 1 {
		t.Fatalf("verify exit = %d, want 1", res.code)
	}
	if !strings.HasPrefix(res.out, fpHello+": ") {
		t.Errorf("verify output = %q", res.out)
	}
	if !strings.HasPrefix(res.err, "Error: repository verification failed") {
		t.Errorf("verify stderr = %q", res.err)
	}
}

func TestArgumentsThatLookLikeFlags(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "hello")

	expect(t, dir, "The username is -bob.\n", "config", "-bob")
	expect(t, dir, "The file 'a.txt' is tracked.\n", "add", "a.txt")
	expect(t, dir, "Can't find '-x.txt'.\n", "add", "-x.txt")

	expect(t, dir, "Changes are committed.\n", "commit", "-wip")

	write(t, dir, "a.txt", "hello!")
	expect(t, dir, "Unsupported operation!\n", "commit", "-m", "a", "-m", "b")
	expect(t, dir, "Unsupported operation!\n", "commit", "-m=a", "b")
	expect(t, dir, "Changes are committed.\n", "commit", "--", "-m")

	write(t, dir, "a.txt", "hello!!")
	expect(t, dir, "Changes are committed.\n", "commit", "--message=-v")

	res := run(t, dir, "log", "--oneline")
	for _, msg := range []string{" -v\n", " -m\n", " -wip\n"} {
		if !strings.Contains(res.out, msg) {
			t.Errorf("log --oneline missing %q:\n%s", msg, res.out)
		}
	}
	expect(t, dir, "Commit does not exist.\n", "checkout", "-deadbeef")
}
