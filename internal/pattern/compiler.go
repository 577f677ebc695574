package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// InvalidPatternError is returned when a translated pattern fails to compile
type InvalidPatternError struct {
	Pattern    string // user input
	Expression string // translated regular expression
	Err        error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q (compiled as %q): %v", e.Pattern, e.Expression, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled, fully anchored name pattern. It is immutable and
// safe to share between traversal steps.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile translates a glob-like pattern and compiles it
func Compile(p string) (*Pattern, error) {
	expr := GlobToRegex(p)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: p, Expression: expr, Err: err}
	}
	return &Pattern{source: p, re: re}, nil
}

// MatchString reports whether s matches the pattern in its entirety
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// Source returns the pattern as the user supplied it
func (p *Pattern) Source() string {
	return p.source
}

// String returns the compiled regular expression
func (p *Pattern) String() string {
	return p.re.String()
}

// GlobToRegex converts a glob-like pattern to a regular expression anchored at
// both ends. Bracket expressions are passed through untouched; brackets are
// not validated, so unbalanced input surfaces as a compile error.
func GlobToRegex(p string) string {
	var b strings.Builder
	b.Grow(len(p) + 2)
	b.WriteByte('^')

	inBrackets := false
	for _, c := range p {
		switch c {
		case '*':
			if inBrackets {
				b.WriteRune('*')
			} else {
				b.WriteString(".*")
			}
		case '?':
			if inBrackets {
				b.WriteRune('?')
			} else {
				b.WriteRune('.')
			}
		case '[':
			inBrackets = true
			b.WriteRune('[')
		case ']':
			inBrackets = false
			b.WriteRune(']')
		case '.', '+', '(', ')', '|', '^', '$', '@', '%':
			if !inBrackets {
				b.WriteRune('\\')
			}
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}

	b.WriteByte('$')
	return b.String()
}
