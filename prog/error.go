package prog

import (
	"errors"
	"fmt"
)

// Compile failure classes. Every rejected pattern maps to exactly one of
// these sentinels, wrapped in a *ParseError carrying the pattern and the
// byte offset of the offending construct.
var (
	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrDanglingEscape indicates a backslash at the end of the pattern
	// or at the end of a character class body.
	ErrDanglingEscape = errors.New("dangling escape")

	// ErrUnterminatedClass indicates a '[' with no matching ']'.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrBadClassRange indicates a class range whose start byte is
	// greater than its end byte, e.g. [z-a].
	ErrBadClassRange = errors.New("reversed range in character class")

	// ErrBadQuantifier indicates a malformed {m,n} quantifier: a
	// non-digit where a digit is expected, or a missing '}'.
	ErrBadQuantifier = errors.New("malformed quantifier")

	// ErrQuantifierRange indicates a {m,n} bound above MaxRepeat or a
	// maximum below the minimum.
	ErrQuantifierRange = errors.New("quantifier bound out of range")

	// ErrNothingToRepeat indicates *, +, ?, or {m,n} with no quantifiable
	// atom before it.
	ErrNothingToRepeat = errors.New("nothing to repeat")

	// ErrMisplacedAnchor indicates '^' after the first position or '$'
	// before the final position of the pattern.
	ErrMisplacedAnchor = errors.New("misplaced anchor")

	// ErrProgramTooLarge indicates the pattern needs more than MaxNodes
	// instruction nodes or more than MaxClassBytes of class data.
	ErrProgramTooLarge = errors.New("program too large")
)

// ParseError wraps a compile failure with the pattern and the byte offset
// where compilation stopped.
type ParseError struct {
	Pattern string
	Offset  int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tinyregex: parsing %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel error, so callers can test
// failure classes with errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
