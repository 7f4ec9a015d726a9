package meta

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/keshon/svcs/internal/fs"
)

// Entry is one commit log record.
type Entry struct {
	Fingerprint string
	Author      string
	Message     string
}

const (
	commitPrefix = "commit "
	authorPrefix = "Author:"
)

var headerRe = regexp.MustCompile(`^commit [0-9a-f]{64}$`)

// Encode renders e as four lines: commit, author, message and a blank separator.
func Encode(e Entry) string {
	return fmt.Sprintf("%s%s\n%s %s\n%s\n\n", commitPrefix, e.Fingerprint, authorPrefix, e.Author, e.Message)
}

// EncodeAll renders entries in the given order.
func EncodeAll(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(Encode(e))
	}
	return b.String()
}

// Decode parses a log written by Encode, newest entry first.
// An entry starts at a "commit <fingerprint>" line that opens the text or follows a
// blank line and is itself followed by an "Author:" line. Everything up to the next
// entry is the message, minus trailing blank lines.
func Decode(text string) []Entry {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	isHeader := func(i int) bool {
		return headerRe.MatchString(lines[i]) &&
			(i == 0 || lines[i-1] == "") &&
			i+1 < len(lines) && strings.HasPrefix(lines[i+1], authorPrefix)
	}

	var heads []int
	for i := range lines {
		if isHeader(i) {
			heads = append(heads, i)
		}
	}

	entries := make([]Entry, 0, len(heads))
	for n, h := range heads {
		end := len(lines)
		if n+1 < len(heads) {
			end = heads[n+1]
		}

		msg := lines[h+2 : end]
		for len(msg) > 0 && msg[len(msg)-1] == "" {
			msg = msg[:len(msg)-1]
		}

		author := strings.TrimPrefix(lines[h+1], authorPrefix)
		entries = append(entries, Entry{
			Fingerprint: strings.TrimPrefix(lines[h], commitPrefix),
			Author:      strings.TrimPrefix(author, " "),
			Message:     strings.Join(msg, "\n"),
		})
	}
	return entries
}

// AppendLog inserts e at the head of the log.
func (mc *MetaContext) AppendLog(e Entry) error {
	existing, err := mc.readOptional(mc.Config.LogFile())
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	data := append([]byte(Encode(e)), existing...)
	if err := fs.WriteFileAtomic(mc.FS, mc.Config.LogFile(), data, 0o644); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// ReadLog returns all entries, newest first. A missing or empty log yields no entries.
func (mc *MetaContext) ReadLog() ([]Entry, error) {
	data, err := mc.readOptional(mc.Config.LogFile())
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return Decode(string(data)), nil
}

// LastEntry returns the newest entry, or nil when there are no commits.
func (mc *MetaContext) LastEntry() (*Entry, error) {
	entries, err := mc.ReadLog()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
