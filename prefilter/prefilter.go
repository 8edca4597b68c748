// Package prefilter accelerates unanchored search by locating candidate
// start offsets before the backtracking matcher runs.
//
// An unanchored program whose first nodes are a mandatory run of literal
// bytes can only match where that run occurs, so scanning for the run
// replaces the offset-by-offset probe loop. A single mandatory byte uses a
// SWAR memchr; a longer run uses an Aho-Corasick automaton over the one
// literal. When the entire program is the literal run, a prefilter hit is
// the match itself and needs no verification.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyregex/prog"
	"github.com/coregx/tinyregex/simd"
)

// Prefilter finds candidate match positions for one compiled program.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start,
	// or -1 if none remains. A candidate is a position where the
	// program's mandatory literal prefix occurs; unless IsComplete
	// reports true, the caller must verify it with the full matcher.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is already a full match,
	// which holds when the whole program is the literal prefix.
	IsComplete() bool

	// LiteralLen returns the length of the matched literal when
	// IsComplete reports true, and 0 otherwise.
	LiteralLen() int
}

// ForProgram builds the best prefilter for a compiled program, or nil when
// none applies: the program is anchored, or it does not begin with an
// unquantified literal byte.
func ForProgram(p *prog.Program) Prefilter {
	lit, complete := literalPrefix(p)
	switch {
	case len(lit) == 0:
		return nil
	case len(lit) == 1:
		return &memchrPrefilter{needle: lit[0], complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit)
	auto, err := builder.Build()
	if err != nil {
		// Degrade to first-byte candidates; still a valid superset.
		return &memchrPrefilter{needle: lit[0]}
	}
	return &literalPrefilter{auto: auto, n: len(lit), complete: complete}
}

// literalPrefix returns the run of mandatory literal bytes at the start of
// an unanchored program, and whether that run is the entire program. A
// literal followed by a quantifier is not mandatory and ends the run.
func literalPrefix(p *prog.Program) (lit []byte, complete bool) {
	if p == nil || p.Anchored() {
		return nil, false
	}
	i := 0
	for ; i < p.Len(); i++ {
		n := p.Node(i)
		if n.Op() != prog.OpChar {
			break
		}
		if i+1 < p.Len() && p.Node(i+1).Op().IsQuantifier() {
			break
		}
		lit = append(lit, n.Char())
	}
	return lit, i == p.Len()
}

// memchrPrefilter finds occurrences of a single mandatory byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (m *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], m.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (m *memchrPrefilter) IsComplete() bool {
	return m.complete
}

func (m *memchrPrefilter) LiteralLen() int {
	if m.complete {
		return 1
	}
	return 0
}

// literalPrefilter finds occurrences of a multi-byte mandatory literal
// using an Aho-Corasick automaton built over that one pattern.
type literalPrefilter struct {
	auto     *ahocorasick.Automaton
	n        int
	complete bool
}

func (l *literalPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := l.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (l *literalPrefilter) IsComplete() bool {
	return l.complete
}

func (l *literalPrefilter) LiteralLen() int {
	if l.complete {
		return l.n
	}
	return 0
}
