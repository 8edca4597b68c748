package prefilter

import (
	"testing"

	"github.com/coregx/tinyregex/prog"
)

func compileForTest(t *testing.T, pattern string) *prog.Program {
	t.Helper()
	p, err := prog.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return p
}

func TestForProgramSelection(t *testing.T) {
	tests := []struct {
		pattern      string
		wantNil      bool
		wantComplete bool
	}{
		// Anchored programs probe only offset 0; no prefilter.
		{"^abc", true, false},
		// No mandatory leading literal.
		{`\d+`, true, false},
		{"[ab]c", true, false},
		{".x", true, false},
		// The leading literal is quantified, so it is not mandatory.
		{"a*bc", true, false},
		{"a?bc", true, false},
		// Pure literals are complete: a candidate is the match.
		{"a", false, true},
		{"abc", false, true},
		// Literal prefix with a non-literal tail needs verification.
		{"a1x+", false, false},
		{`ab\d`, false, false},
		{"hello[0-9]", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := ForProgram(compileForTest(t, tt.pattern))
			if (pf == nil) != tt.wantNil {
				t.Fatalf("ForProgram(%q) nil = %v, want %v", tt.pattern, pf == nil, tt.wantNil)
			}
			if pf != nil && pf.IsComplete() != tt.wantComplete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.wantComplete)
			}
		})
	}
}

func TestForProgramNil(t *testing.T) {
	if pf := ForProgram(nil); pf != nil {
		t.Error("ForProgram(nil) should be nil")
	}
}

func TestLiteralPrefixExtraction(t *testing.T) {
	tests := []struct {
		pattern  string
		want     string
		complete bool
	}{
		{"abc", "abc", true},
		{"ab+", "a", false},
		{"abc.", "abc", false},
		{`x\d{2}`, "x", false},
		{"a[bc]d", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			lit, complete := literalPrefix(compileForTest(t, tt.pattern))
			if string(lit) != tt.want || complete != tt.complete {
				t.Errorf("literalPrefix(%q) = (%q, %v), want (%q, %v)",
					tt.pattern, lit, complete, tt.want, tt.complete)
			}
		})
	}
}

func TestMemchrPrefilterFind(t *testing.T) {
	pf := ForProgram(compileForTest(t, "q"))

	haystack := []byte("xxqxxq")
	if got := pf.Find(haystack, 0); got != 2 {
		t.Errorf("Find(0) = %d, want 2", got)
	}
	if got := pf.Find(haystack, 3); got != 5 {
		t.Errorf("Find(3) = %d, want 5", got)
	}
	if got := pf.Find(haystack, 6); got != -1 {
		t.Errorf("Find past end = %d, want -1", got)
	}
	if got := pf.Find([]byte("xxx"), 0); got != -1 {
		t.Errorf("Find on miss = %d, want -1", got)
	}
	if got := pf.LiteralLen(); got != 1 {
		t.Errorf("LiteralLen() = %d, want 1", got)
	}
}

func TestLiteralPrefilterFind(t *testing.T) {
	pf := ForProgram(compileForTest(t, "needle"))
	if !pf.IsComplete() {
		t.Fatal("pure literal prefilter should be complete")
	}
	if got := pf.LiteralLen(); got != 6 {
		t.Fatalf("LiteralLen() = %d, want 6", got)
	}

	haystack := []byte("a haystack with a needle in it")
	pos := pf.Find(haystack, 0)
	if pos != 18 {
		t.Errorf("Find = %d, want 18", pos)
	}
	if got := pf.Find(haystack, pos+1); got != -1 {
		t.Errorf("Find after match = %d, want -1", got)
	}
	if got := pf.Find([]byte("no such thing"), 0); got != -1 {
		t.Errorf("Find on miss = %d, want -1", got)
	}
}

func TestPrefixPrefilterCandidates(t *testing.T) {
	// "ab" is mandatory, the digit is not part of the literal run.
	pf := ForProgram(compileForTest(t, `ab\d`))
	if pf.IsComplete() {
		t.Fatal("prefix prefilter must require verification")
	}

	haystack := []byte("ab abX ab7")
	// First candidate is a false positive for the full pattern; the
	// caller verifies and moves on.
	first := pf.Find(haystack, 0)
	if first != 0 {
		t.Fatalf("first candidate = %d, want 0", first)
	}
	second := pf.Find(haystack, first+1)
	if second != 3 {
		t.Fatalf("second candidate = %d, want 3", second)
	}
	third := pf.Find(haystack, second+1)
	if third != 7 {
		t.Fatalf("third candidate = %d, want 7", third)
	}
}
