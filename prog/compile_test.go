package prog

import (
	"errors"
	"strings"
	"testing"
)

func compileForTest(t *testing.T, pattern string) *Program {
	t.Helper()
	p, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return p
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"", ErrEmptyPattern},
		{`\`, ErrDanglingEscape},
		{`ab\`, ErrDanglingEscape},
		{`[ab\`, ErrDanglingEscape},
		{"[abc", ErrUnterminatedClass},
		{"[^abc", ErrUnterminatedClass},
		{"[", ErrUnterminatedClass},
		{"[z-a]", ErrBadClassRange},
		{"a**", ErrNothingToRepeat},
		{"*a", ErrNothingToRepeat},
		{"+", ErrNothingToRepeat},
		{"^*", ErrNothingToRepeat},
		{"a+*", ErrNothingToRepeat},
		{"{2}", ErrNothingToRepeat},
		{"a$*", ErrMisplacedAnchor},
		{"a{", ErrBadQuantifier},
		{"a{}", ErrBadQuantifier},
		{"a{x}", ErrBadQuantifier},
		{"a{2", ErrBadQuantifier},
		{"a{2,x}", ErrBadQuantifier},
		{"a{2,3", ErrBadQuantifier},
		{"a{5,2}", ErrQuantifierRange},
		{"a{2000}", ErrQuantifierRange},
		{"a{0,2000}", ErrQuantifierRange},
		{"ab^c", ErrMisplacedAnchor},
		{"a$b", ErrMisplacedAnchor},
		{"$$", ErrMisplacedAnchor},
		{strings.Repeat("a", MaxNodes+10), ErrProgramTooLarge},
		{"[" + strings.Repeat("a", MaxClassBytes+10) + "]", ErrProgramTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want %v", tt.pattern, tt.want)
			}
			if p != nil {
				t.Errorf("Compile(%q) returned a program alongside an error", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Compile(%q) error is not a *ParseError: %v", tt.pattern, err)
			} else if perr.Pattern != tt.pattern {
				t.Errorf("ParseError.Pattern = %q, want %q", perr.Pattern, tt.pattern)
			}
		})
	}
}

func TestCompileNodeLayout(t *testing.T) {
	tests := []struct {
		pattern string
		ops     []Op
	}{
		{"abc", []Op{OpChar, OpChar, OpChar}},
		{"^a$", []Op{OpBegin, OpChar, OpEnd}},
		{"a.b", []Op{OpChar, OpDot, OpChar}},
		{"a*", []Op{OpChar, OpStar}},
		{"a*?", []Op{OpChar, OpLazyStar}},
		{"a+", []Op{OpChar, OpPlus}},
		{"a+?", []Op{OpChar, OpLazyPlus}},
		{"a?", []Op{OpChar, OpQMark}},
		{"a??", []Op{OpChar, OpLazyQMark}},
		{"a{2,3}", []Op{OpChar, OpQuant}},
		{"a{2,3}?", []Op{OpChar, OpLazyQuant}},
		{`\d\D\w\W\s\S`, []Op{OpDigit, OpNotDigit, OpWord, OpNotWord, OpSpace, OpNotSpace}},
		{`\n`, []Op{OpChar}},
		{"[abc]", []Op{OpClass}},
		{"[^abc]", []Op{OpNegClass}},
		{"[a-z]+", []Op{OpClass, OpPlus}},
		{`\++`, []Op{OpChar, OpPlus}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := compileForTest(t, tt.pattern)
			if p.Len() != len(tt.ops) {
				t.Fatalf("Len() = %d, want %d", p.Len(), len(tt.ops))
			}
			for i, want := range tt.ops {
				if got := p.Node(i).Op(); got != want {
					t.Errorf("node %d = %v, want %v", i, got, want)
				}
			}
			if got := p.Node(p.Len()).Op(); got != OpSentinel {
				t.Errorf("terminator = %v, want %v", got, OpSentinel)
			}
		})
	}
}

func TestCompileQuantifierBounds(t *testing.T) {
	tests := []struct {
		pattern  string
		min, max int
	}{
		{"a{3}", 3, 3},
		{"a{0,5}", 0, 5},
		{"a{2,}", 2, MaxRepeat},
		{"a{1024,1024}", 1024, 1024},
		{"a{0,0}", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := compileForTest(t, tt.pattern)
			min, max := p.Node(1).Bounds()
			if min != tt.min || max != tt.max {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", min, max, tt.min, tt.max)
			}
		})
	}
}

func TestCompileAnchoredFlag(t *testing.T) {
	if !compileForTest(t, "^abc").Anchored() {
		t.Error("^abc should be anchored")
	}
	if compileForTest(t, "abc").Anchored() {
		t.Error("abc should not be anchored")
	}
}

func TestCompileLiteralPayload(t *testing.T) {
	p := compileForTest(t, `a\.z`)
	want := []byte{'a', '.', 'z'}
	for i, b := range want {
		if got := p.Node(i).Char(); got != b {
			t.Errorf("node %d Char() = %q, want %q", i, got, b)
		}
	}
	// Char payload of a non-Char node reads as zero.
	q := compileForTest(t, `\d`)
	if got := q.Node(0).Char(); got != 0 {
		t.Errorf("Char() on Digit node = %q, want 0", got)
	}
}

func TestCompileClassBuffer(t *testing.T) {
	tests := []struct {
		pattern string
		buf     string
	}{
		{"[abc]", "abc"},
		{"[a-z]", "a-z"},
		{"[a-zA-Z0-9]", "a-zA-Z0-9"},
		{"[^a-c]", "a-c"},
		{`[\d\s]`, `\d\s`},
		{`[\\]`, `\\`},
		// Escaped non-meta bytes are stored raw.
		{`[\]]`, "]"},
		// Literal hyphens are stored escaped so the matcher never reads
		// one as a range operator, whatever follows in the buffer.
		{"[a-]", `a\-`},
		{"[-a]", `\-a`},
		{`[a\-z]`, `a\-z`},
		{`[a-\d]`, `a\-\d`},
		{`[ab-\d]`, `ab\-\d`},
		{`[a-\\]`, `a\-\\`},
		{`[a-\]]`, `a\-]`},
		// A hyphen that is itself a range endpoint stays bare inside
		// the triple.
		{"[--a]", "--a"},
		{"[+--]", "+--"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := compileForTest(t, tt.pattern)
			got := string(p.classBytes(p.Node(0)))
			if got != tt.buf {
				t.Errorf("class buffer = %q, want %q", got, tt.buf)
			}
		})
	}
}

// Two classes in one pattern share the side buffer without overlapping.
func TestCompileTwoClassesShareBuffer(t *testing.T) {
	p := compileForTest(t, "[ab][cd]")
	first := string(p.classBytes(p.Node(0)))
	second := string(p.classBytes(p.Node(1)))
	if first != "ab" || second != "cd" {
		t.Errorf("class buffers = %q, %q, want %q, %q", first, second, "ab", "cd")
	}
}
