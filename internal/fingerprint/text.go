package fingerprint

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Text renders file content the way it enters the digest: decoded as UTF-8
// (invalid bytes become U+FFFD, a BOM is kept) and with lines joined by ", ".
func Text(data []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return strings.Join(Lines(string(decoded)), lineSeparator), nil
}

// Lines splits s on "\n", "\r\n" or "\r".
// A terminator at the very end does not start another line.
func Lines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
