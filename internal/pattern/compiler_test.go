package pattern

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"testing"
)

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", `^$`},
		{"Literal", "abc", `^abc$`},
		{"Star", "*.rs", `^.*\.rs$`},
		{"Question", "?.txt", `^.\.txt$`},
		{"Star inside brackets", "[*]", `^[*]$`},
		{"Question inside brackets", "[?]", `^[?]$`},
		{"Dot inside brackets", "[.]x", `^[.]x$`},
		{"Metacharacters", "a+b(c)|d^e$f", `^a\+b\(c\)\|d\^e\$f$`},
		{"At and percent", "@%", `^\@\%$`},
		{"Brackets close state", "[ab]*", `^[ab].*$`},
		{"Range", "file[0-9].log", `^file[0-9]\.log$`},
		{"Unbalanced bracket", "[abc", `^[abc$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlobToRegex(tt.input); got != tt.expected {
				t.Errorf("GlobToRegex(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompile_Matching(t *testing.T) {
	tests := []struct {
		pattern  string
		input    string
		expected bool
	}{
		{"*.rs", "main.rs", true},
		{"*.rs", "main.rsx", false},
		{"*.rs", "mainxrs", false},
		{"abc", "abc", true},
		{"abc", "xabcx", false},
		{"abc", "abcx", false},
		{"abc", "xabc", false},
		{"?.txt", "a.txt", true},
		{"?.txt", "ab.txt", false},
		{"[*?]", "*", true},
		{"[*?]", "?", true},
		{"[*?]", "a", false},
		{"file[0-9].log", "file7.log", true},
		{"file[0-9].log", "filex.log", false},
		{"a+b", "a+b", true},
		{"a+b", "aab", false},
		{"", "", true},
		{"", "a", false},
		{"report (1).pdf", "report (1).pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := p.MatchString(tt.input); got != tt.expected {
				t.Errorf("Compile(%q).MatchString(%q) = %v, want %v", tt.pattern, tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	tests := []string{
		"[",
		"[abc",
		"*[",
		"[z-a]",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p, err := Compile(input)
			if err == nil {
				t.Fatalf("Compile(%q) = %v, want error", input, p)
			}

			var invalid *InvalidPatternError
			if !errors.As(err, &invalid) {
				t.Fatalf("Compile(%q) error type = %T, want *InvalidPatternError", input, err)
			}
			if invalid.Pattern != input {
				t.Errorf("InvalidPatternError.Pattern = %q, want %q", invalid.Pattern, input)
			}
			if invalid.Expression != GlobToRegex(input) {
				t.Errorf("InvalidPatternError.Expression = %q, want %q", invalid.Expression, GlobToRegex(input))
			}

			var syntaxErr *syntax.Error
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error %v does not wrap a *syntax.Error", err)
			}
		})
	}
}

func TestCompile_AlwaysAnchored(t *testing.T) {
	inputs := []string{"", "abc", "*", "?", "[a-z]*", "x.y", "a|b"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p, err := Compile(input)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", input, err)
			}
			expr := p.String()
			if len(expr) < 2 || expr[0] != '^' || expr[len(expr)-1] != '$' {
				t.Errorf("Compile(%q) expression = %q, want ^...$", input, expr)
			}
			if _, err := regexp.Compile(expr); err != nil {
				t.Errorf("expression %q does not compile: %v", expr, err)
			}
			if p.Source() != input {
				t.Errorf("Source() = %q, want %q", p.Source(), input)
			}
		})
	}
}

func TestCompile_AlternationStaysLiteral(t *testing.T) {
	p, err := Compile("a|b")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	for _, input := range []string{"a", "b", "xa|b"} {
		if p.MatchString(input) {
			t.Errorf("MatchString(%q) = true, want false", input)
		}
	}
	if !p.MatchString("a|b") {
		t.Error("MatchString(\"a|b\") = false, want true")
	}
}
