package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanShishkin/finder/internal/pattern"
)

func mustCompile(t *testing.T, p string) *pattern.Pattern {
	t.Helper()
	compiled, err := pattern.Compile(p)
	if err != nil {
		t.Fatalf("pattern.Compile(%q) error = %v", p, err)
	}
	return compiled
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestMatchesContent(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		content  string
		expected bool
	}{
		// Lines must match the anchored pattern in full
		{"Substring does not match", "hello", "foo\nhello world\n", false},
		{"Whole line matches", "hello", "foo\nhello\n", true},
		{"Glob over line", "hello*", "foo\nhello world\n", true},
		{"Last line without newline", "bar", "foo\nbar", true},
		{"CRLF line endings", "bar", "foo\r\nbar\r\n", true},
		{"Empty file", "x", "", false},
		{"Empty pattern matches empty line", "", "foo\n\nbar\n", true},
		{"Empty pattern no empty line", "", "foo\nbar", false},
		{"Single character wildcard", "h?llo", "hallo\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file.txt")
			writeFile(t, path, tt.content)

			if got := MatchesContent(path, mustCompile(t, tt.pattern)); got != tt.expected {
				t.Errorf("MatchesContent(%q, %q) = %v, want %v", tt.content, tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestMatchesContent_NonExistent(t *testing.T) {
	if MatchesContent("/nonexistent/file.txt", mustCompile(t, "*")) {
		t.Error("MatchesContent() = true for non-existent file, want false")
	}
}

func TestMatchesContent_InvalidUTF8LineSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	writeFile(t, path, "\xff\xfe\n"+"target\n")

	if MatchesContent(path, mustCompile(t, "*\xfe")) {
		t.Error("MatchesContent() matched a line that is not valid UTF-8")
	}
	if !MatchesContent(path, mustCompile(t, "target")) {
		t.Error("MatchesContent() should continue past an undecodable line")
	}
}

func TestMatchesContent_LongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	writeFile(t, path, strings.Repeat("a", 1<<20)+"\nend\n")

	if !MatchesContent(path, mustCompile(t, "end")) {
		t.Error("MatchesContent() should read past lines longer than any buffer")
	}
	if !MatchesContent(path, mustCompile(t, "a*")) {
		t.Error("MatchesContent() should match a long line")
	}
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, errors.New("read failure")
	}
	r.read = true
	return copy(p, r.data), nil
}

func TestScanLines_ReadError(t *testing.T) {
	p := mustCompile(t, "first")
	if !scanLines(&failingReader{data: "first\nsec"}, p) {
		t.Error("scanLines() should match lines read before the failure")
	}

	p = mustCompile(t, "second")
	if scanLines(&failingReader{data: "first\nsec"}, p) {
		t.Error("scanLines() should not match after a read failure")
	}
}
