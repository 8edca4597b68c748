// Package prog implements the compiled form of a tinyregex pattern and the
// backtracking matcher that executes it.
//
// A pattern compiles into a Program: a fixed-capacity sequence of tagged
// instruction nodes plus a bounded side buffer holding character-class
// contents. Programs are immutable after compilation and safe to share
// read-only across goroutines. Matching is a backtracking walk over the
// node sequence with dedicated greedy and lazy repetition sub-algorithms.
package prog

import "fmt"

// Capacity limits for a compiled Program. Exceeding either during
// compilation is a compile error (ErrProgramTooLarge), never silent
// truncation.
const (
	// MaxNodes is the maximum number of instruction nodes in a Program,
	// including the terminating sentinel slot.
	MaxNodes = 64

	// MaxClassBytes is the capacity of the side buffer shared by all
	// character classes in a Program.
	MaxClassBytes = 128

	// MaxRepeat is the ceiling for explicit {m,n} quantifier bounds.
	// Bounds fit comfortably in a uint16 while staying well above
	// common usage.
	MaxRepeat = 1024

	// maxExtent caps how many repeats * and + may consume. Star and plus
	// have no written bound, so the matcher needs some finite budget for
	// its backward scan.
	maxExtent = 40000
)

// Op identifies the kind of an instruction node and determines which
// payload fields are meaningful. The zero value is the end-of-program
// sentinel, so a zero-initialized node array is already terminated.
type Op uint8

const (
	// OpSentinel terminates the node sequence. Reaching it during a match
	// means the whole pattern matched.
	OpSentinel Op = iota

	// OpBegin anchors the match to the start of the text. Only valid as
	// node 0.
	OpBegin

	// OpEnd anchors the match to the end of the text. Only valid as the
	// last content node.
	OpEnd

	// OpDot matches any byte except CR and LF (every byte when the
	// program was compiled with DotMatchesNewline).
	OpDot

	// OpChar matches one literal byte.
	OpChar

	// OpClass matches any byte accepted by the node's class-buffer
	// region; OpNegClass matches any byte rejected by it.
	OpClass
	OpNegClass

	// Built-in byte classes and their negations.
	OpDigit
	OpNotDigit
	OpWord
	OpNotWord
	OpSpace
	OpNotSpace

	// Quantifiers. A quantifier node never consumes input itself; it
	// always immediately follows the atom it repeats and is consulted by
	// lookahead during matching.
	OpQMark
	OpLazyQMark
	OpStar
	OpLazyStar
	OpPlus
	OpLazyPlus
	OpQuant
	OpLazyQuant
)

// String returns a short human-readable tag name.
func (op Op) String() string {
	switch op {
	case OpSentinel:
		return "Sentinel"
	case OpBegin:
		return "Begin"
	case OpEnd:
		return "End"
	case OpDot:
		return "Dot"
	case OpChar:
		return "Char"
	case OpClass:
		return "Class"
	case OpNegClass:
		return "NegClass"
	case OpDigit:
		return "Digit"
	case OpNotDigit:
		return "NotDigit"
	case OpWord:
		return "Word"
	case OpNotWord:
		return "NotWord"
	case OpSpace:
		return "Space"
	case OpNotSpace:
		return "NotSpace"
	case OpQMark:
		return "QMark"
	case OpLazyQMark:
		return "LazyQMark"
	case OpStar:
		return "Star"
	case OpLazyStar:
		return "LazyStar"
	case OpPlus:
		return "Plus"
	case OpLazyPlus:
		return "LazyPlus"
	case OpQuant:
		return "Quant"
	case OpLazyQuant:
		return "LazyQuant"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(op))
	}
}

// IsQuantifier reports whether op is one of the quantifier tags.
func (op Op) IsQuantifier() bool {
	return op >= OpQMark && op <= OpLazyQuant
}

// IsAtom reports whether op consumes exactly one input byte when not
// quantified. Anchors, quantifiers, and the sentinel are not atoms.
func (op Op) IsAtom() bool {
	return op >= OpDot && op <= OpNotSpace
}

// isLazy reports whether op is a lazy quantifier variant.
func (op Op) isLazy() bool {
	switch op {
	case OpLazyQMark, OpLazyStar, OpLazyPlus, OpLazyQuant:
		return true
	}
	return false
}

// lazyVariant maps a greedy quantifier tag to its lazy counterpart.
// Returns op unchanged for non-greedy-quantifier tags.
func (op Op) lazyVariant() Op {
	switch op {
	case OpQMark:
		return OpLazyQMark
	case OpStar:
		return OpLazyStar
	case OpPlus:
		return OpLazyPlus
	case OpQuant:
		return OpLazyQuant
	}
	return op
}

// Node is a single instruction in a compiled Program. The op tag determines
// which payload fields are valid: a literal byte for OpChar, side-buffer
// offsets for OpClass/OpNegClass, repeat bounds for OpQuant/OpLazyQuant.
// Accessors return zero values when called on the wrong tag, so a payload
// can never be misread as another tag's payload.
type Node struct {
	op Op

	// OpChar: the literal byte.
	ch byte

	// OpClass/OpNegClass: [lo, hi) region of the Program's class buffer.
	classLo, classHi uint16

	// OpQuant/OpLazyQuant: inclusive repeat bounds, min <= max <= MaxRepeat.
	min, max uint16
}

// Op returns the node's tag.
func (n Node) Op() Op {
	return n.op
}

// Char returns the literal byte for OpChar nodes, 0 otherwise.
func (n Node) Char() byte {
	if n.op == OpChar {
		return n.ch
	}
	return 0
}

// Bounds returns the repeat bounds for OpQuant/OpLazyQuant nodes,
// (0, 0) otherwise.
func (n Node) Bounds() (min, max int) {
	if n.op == OpQuant || n.op == OpLazyQuant {
		return int(n.min), int(n.max)
	}
	return 0, 0
}

// Program is the compiled form of a pattern: an ordered node sequence
// terminated by a sentinel, plus an owned side buffer holding the contents
// of every character class in the pattern.
//
// A Program is created only by Compile and never mutated afterward. All
// fields are unexported and every method is read-only, so one Program may
// serve concurrent searches over different texts from multiple goroutines.
type Program struct {
	nodes [MaxNodes]Node
	n     int // content nodes; nodes[n] is the sentinel

	class    [MaxClassBytes]byte
	classLen int

	dotAll bool // '.' also matches CR and LF
}

// Len returns the number of content nodes, excluding the sentinel.
func (p *Program) Len() int {
	return p.n
}

// Node returns the i'th content node. The sentinel at index Len() is
// addressable too; anything past it is out of range.
func (p *Program) Node(i int) Node {
	return p.nodes[i]
}

// Anchored reports whether the program must match at the start of the text.
func (p *Program) Anchored() bool {
	return p.n > 0 && p.nodes[0].op == OpBegin
}

// classBytes returns the side-buffer region referenced by a class node.
// The returned slice aliases the program's own buffer and is read-only.
func (p *Program) classBytes(n Node) []byte {
	return p.class[n.classLo:n.classHi]
}
