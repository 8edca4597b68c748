// Package tinyregex is a small fixed-capacity regular expression engine.
//
// A pattern compiles into a bounded instruction sequence (at most 64 nodes
// and 128 bytes of character-class data); matching is a backtracking walk
// over that sequence with greedy and lazy repetition. The syntax is a
// single-byte subset of the usual notation:
//
//	.           any byte except CR and LF
//	^  $        start / end anchors
//	*  +  ?     zero-or-more, one-or-more, zero-or-one (greedy)
//	{m} {m,} {m,n}  explicit repeat counts, bounds up to 1024
//	*? +? ?? {m,n}? lazy variants
//	[abc] [^abc] [a-z]  classes, negated classes, ranges
//	\d \D \w \W \s \S   built-in classes, usable inside [...] too
//
// There is no alternation, no grouping, and no capture extraction; callers
// needing alternatives compile separate patterns and try each. All
// matching is byte-wise; multi-byte encodings get no special treatment.
//
// Basic usage:
//
//	re, err := tinyregex.Compile(`[Hh]ello\s+[Ww]orld`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m := re.Find([]byte("say Hello  World")); m != nil {
//	    fmt.Println(m.Start(), m.End(), m.String())
//	}
//
// A compiled Regex is immutable and safe for concurrent use.
package tinyregex

import (
	"github.com/coregx/tinyregex/prefilter"
	"github.com/coregx/tinyregex/prog"
)

// Regex is a compiled pattern ready for searching. It pairs the compiled
// program with an optional literal-prefix prefilter for unanchored search.
type Regex struct {
	program *prog.Program
	pf      prefilter.Prefilter
	pattern string
}

// Compile compiles a pattern with the default configuration.
//
// On failure it returns a *prog.ParseError wrapping one of the sentinel
// errors in the prog package, so callers can distinguish failure classes
// with errors.Is:
//
//	_, err := tinyregex.Compile("a{5,2}")
//	errors.Is(err, prog.ErrQuantifierRange) // true
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, prog.DefaultConfig())
}

// CompileWithConfig compiles a pattern with an explicit configuration,
// e.g. to make '.' match CR and LF:
//
//	config := tinyregex.DefaultConfig()
//	config.DotMatchesNewline = true
//	re, err := tinyregex.CompileWithConfig("a.b", config)
func CompileWithConfig(pattern string, config prog.Config) (*Regex, error) {
	p, err := prog.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		program: p,
		pf:      prefilter.ForProgram(p),
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() prog.Config {
	return prog.DefaultConfig()
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// Find compiles pattern and searches b in one call. A compile error
// surfaces as no match; callers that need the error use Compile.
func Find(pattern string, b []byte) *Match {
	re, err := Compile(pattern)
	if err != nil {
		return nil
	}
	return re.Find(b)
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.Find(b) != nil
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns the first match in b, or nil if there is none.
//
// Anchored patterns are tried at offset 0 only; everything else is tried
// at each successive offset, including the empty suffix, so a pattern that
// can match the empty string always matches.
func (r *Regex) Find(b []byte) *Match {
	if r.pf != nil {
		return r.findWithPrefilter(b)
	}
	start, end, ok := r.program.Search(b)
	if !ok {
		return nil
	}
	return newMatch(start, end, b)
}

// findWithPrefilter probes only the candidate offsets the prefilter
// reports. A program with a mandatory literal prefix cannot match anywhere
// else, and when the program is nothing but that literal the candidate is
// already the match.
func (r *Regex) findWithPrefilter(b []byte) *Match {
	at := 0
	for at <= len(b) {
		pos := r.pf.Find(b, at)
		if pos < 0 {
			return nil
		}
		if r.pf.IsComplete() {
			return newMatch(pos, pos+r.pf.LiteralLen(), b)
		}
		if end, ok := r.program.MatchAt(b, pos); ok {
			return newMatch(pos, end, b)
		}
		at = pos + 1
	}
	return nil
}

// FindString returns the text of the first match in s, or "" if there is
// none. A zero-length match is indistinguishable from no match here; use
// FindIndex when that matters.
func (r *Regex) FindString(s string) string {
	m := r.Find([]byte(s))
	if m == nil {
		return ""
	}
	return m.String()
}

// FindIndex returns a two-element slice holding the start and end offsets
// of the first match in b, or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	m := r.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// Describe returns a diagnostic dump of the compiled program, one node per
// line. Output format has no stability contract.
func (r *Regex) Describe() string {
	return r.program.Describe()
}

// QuoteMeta returns a pattern that matches the literal text s, escaping
// every byte this engine treats as a metacharacter.
func QuoteMeta(s string) string {
	const special = `\.+*?[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// isSpecial reports whether c occurs in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
