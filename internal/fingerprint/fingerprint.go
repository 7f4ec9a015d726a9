// Package fingerprint derives commit identifiers from tracked file contents.
//
// A fingerprint is the lowercase hex SHA-256 of every tracked path followed by
// that file's text, in length-then-lexicographic path order. The text of a file
// is its lines joined with ", ", so line terminators and a trailing newline do
// not contribute to the digest.
package fingerprint

import (
	"cmp"
	"crypto/sha256"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/keshon/svcs/internal/fs"
)

// None is returned for an empty tracked-file list.
const None = ""

// Size is the length of a fingerprint in hex characters.
const Size = sha256.Size * 2

const lineSeparator = ", "

var validRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Valid reports whether s is a well-formed fingerprint.
func Valid(s string) bool {
	return validRe.MatchString(s)
}

// Sort returns a copy of paths ordered by length, then lexicographically.
func Sort(paths []string) []string {
	sorted := slices.Clone(paths)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return sorted
}

// Compute fingerprints the files at paths, relative to root.
// An empty list yields None without hashing anything.
func Compute(fsys fs.FS, root string, paths []string) (string, error) {
	if len(paths) == 0 {
		return None, nil
	}

	h := sha256.New()
	for _, p := range Sort(paths) {
		data, err := fsys.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return "", fmt.Errorf("read tracked file %q: %w", p, err)
		}
		text, err := Text(data)
		if err != nil {
			return "", fmt.Errorf("decode tracked file %q: %w", p, err)
		}
		h.Write([]byte(p))
		h.Write([]byte(text))
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
