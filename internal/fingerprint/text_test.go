package fingerprint_test

import (
	"slices"
	"testing"

	"github.com/keshon/svcs/internal/fingerprint"
)

func TestLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\rb", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
	}
	for _, c := range cases {
		if got := fingerprint.Lines(c.in); !slices.Equal(got, c.want) {
			t.Errorf("Lines(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("one\ntwo\nthree\n"), "one, two, three"},
		{[]byte("crlf\r\nline"), "crlf, line"},
		{[]byte{}, ""},
		{[]byte{'a', 0xff, 'b'}, "a\uFFFDb"},
		{[]byte("\ufeffbom"), "\ufeffbom"},
	}
	for _, c := range cases {
		got, err := fingerprint.Text(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
