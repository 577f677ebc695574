package filesystem

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/IvanShishkin/finder/internal/pattern"
)

// MatchesContent reports whether any line of the file at path matches p.
// Lines are matched with the same anchored pattern used for names, so a line
// only counts when it matches in its entirety. Lines that are not valid UTF-8
// never match. A file that cannot be opened does not match.
func MatchesContent(path string, p *pattern.Pattern) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return scanLines(f, p)
}

// scanLines reads r line by line until a line matches or input ends. A read
// error stops the scan without a match.
func scanLines(r io.Reader, p *pattern.Pattern) bool {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if utf8.ValidString(line) && p.MatchString(line) {
				return true
			}
		}
		if err != nil {
			return false
		}
	}
}
