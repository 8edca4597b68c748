package prog

import (
	"github.com/coregx/tinyregex/internal/conv"
)

// Config controls pattern compilation behavior.
type Config struct {
	// DotMatchesNewline makes '.' match every byte, including CR and LF.
	// When false (the default), '.' rejects both.
	DotMatchesNewline bool
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{
		DotMatchesNewline: false,
	}
}

// Compile compiles a pattern into an immutable Program using the default
// configuration.
//
// The supported syntax is a small single-byte subset of the usual notation:
// literal bytes, '.', '^' and '$' anchors, '[...]' and '[^...]' classes
// with ranges and \s \S \w \W \d \D references, the same escapes standalone,
// and quantifiers '*', '+', '?', '{m}', '{m,}', '{m,n}', each with a lazy
// variant formed by a trailing '?'. There is no alternation and no grouping.
//
// A failed compilation returns a *ParseError wrapping one of the sentinel
// errors in this package; no partial Program is ever returned.
func Compile(pattern string) (*Program, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with an explicit configuration.
func CompileWithConfig(pattern string, config Config) (*Program, error) {
	c := &compiler{
		pattern: pattern,
		prog:    &Program{dotAll: config.DotMatchesNewline},
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.prog, nil
}

// compiler holds the state of one single-pass compilation: a cursor into
// the pattern and the Program being populated.
type compiler struct {
	pattern string
	pos     int
	prog    *Program

	// canQuantify is true when the most recently emitted node may take a
	// quantifier: after ordinary characters, '.', classes, and escapes,
	// but not after anchors or quantifiers.
	canQuantify bool
}

// fail wraps a sentinel error with the pattern and offset context.
func (c *compiler) fail(err error, offset int) error {
	return &ParseError{Pattern: c.pattern, Offset: offset, Err: err}
}

// emit appends a node, reserving the final slot for the sentinel.
func (c *compiler) emit(n Node) error {
	if c.prog.n+1 >= MaxNodes {
		return c.fail(ErrProgramTooLarge, c.pos)
	}
	c.prog.nodes[c.prog.n] = n
	c.prog.n++
	return nil
}

// push appends one byte of class data to the side buffer.
func (c *compiler) push(b byte) error {
	if c.prog.classLen >= MaxClassBytes {
		return c.fail(ErrProgramTooLarge, c.pos)
	}
	c.prog.class[c.prog.classLen] = b
	c.prog.classLen++
	return nil
}

// compile runs the single forward scan over the pattern.
func (c *compiler) compile() error {
	if c.pattern == "" {
		return c.fail(ErrEmptyPattern, 0)
	}

	for c.pos < len(c.pattern) {
		ch := c.pattern[c.pos]

		var err error
		switch ch {
		case '^':
			if c.pos != 0 {
				return c.fail(ErrMisplacedAnchor, c.pos)
			}
			c.canQuantify = false
			err = c.emit(Node{op: OpBegin})
			c.pos++
		case '$':
			// A non-final '$' would leave an End node in atom position,
			// which the matcher has no defined behavior for.
			if c.pos != len(c.pattern)-1 {
				return c.fail(ErrMisplacedAnchor, c.pos)
			}
			c.canQuantify = false
			err = c.emit(Node{op: OpEnd})
			c.pos++
		case '.':
			c.canQuantify = true
			err = c.emit(Node{op: OpDot})
			c.pos++
		case '*', '+', '?':
			err = c.compileRepeat(ch)
		case '{':
			err = c.compileQuantifier()
		case '\\':
			err = c.compileEscape()
		case '[':
			err = c.compileClass()
		default:
			c.canQuantify = true
			err = c.emit(Node{op: OpChar, ch: ch})
			c.pos++
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// compileRepeat emits the node for '*', '+', or '?', switching to the lazy
// variant when a '?' follows.
func (c *compiler) compileRepeat(ch byte) error {
	if !c.canQuantify {
		return c.fail(ErrNothingToRepeat, c.pos)
	}
	c.canQuantify = false

	var op Op
	switch ch {
	case '*':
		op = OpStar
	case '+':
		op = OpPlus
	default:
		op = OpQMark
	}
	c.pos++
	if c.pos < len(c.pattern) && c.pattern[c.pos] == '?' {
		op = op.lazyVariant()
		c.pos++
	}
	return c.emit(Node{op: op})
}

// compileEscape handles a backslash escape outside a character class:
// \d \D \w \W \s \S become meta-class nodes, anything else a literal.
func (c *compiler) compileEscape() error {
	start := c.pos
	c.pos++
	if c.pos >= len(c.pattern) {
		return c.fail(ErrDanglingEscape, start)
	}
	c.canQuantify = true

	var n Node
	switch c.pattern[c.pos] {
	case 'd':
		n = Node{op: OpDigit}
	case 'D':
		n = Node{op: OpNotDigit}
	case 'w':
		n = Node{op: OpWord}
	case 'W':
		n = Node{op: OpNotWord}
	case 's':
		n = Node{op: OpSpace}
	case 'S':
		n = Node{op: OpNotSpace}
	default:
		n = Node{op: OpChar, ch: c.pattern[c.pos]}
	}
	c.pos++
	return c.emit(n)
}

// isMetaEscape reports whether b selects a built-in class inside '[...]'.
// A double backslash also stays escaped in the class buffer so the matcher
// can tell it apart from an encoded range.
func isMetaEscape(b byte) bool {
	switch b {
	case 's', 'S', 'w', 'W', 'd', 'D', '\\':
		return true
	}
	return false
}

// compileClass parses '[...]' or '[^...]' and copies its contents into the
// side buffer: literal bytes as themselves, built-in classes as a
// backslash pair, and lo-hi ranges as a three-byte triple.
//
// A '-' counts as a range operator only when it sits strictly between two
// literal bytes; before the closing ']', at the end of the pattern, or
// before an escape it is a literal hyphen. Literal hyphens are stored as
// a backslash pair so the matcher can never read one as a range operator,
// whatever follows it in the buffer.
func (c *compiler) compileClass() error {
	start := c.pos
	c.pos++ // consume '['

	op := OpClass
	if c.pos < len(c.pattern) && c.pattern[c.pos] == '^' {
		op = OpNegClass
		c.pos++
	}

	lo := c.prog.classLen
	for {
		if c.pos >= len(c.pattern) {
			return c.fail(ErrUnterminatedClass, start)
		}
		ch := c.pattern[c.pos]
		if ch == ']' {
			c.pos++
			break
		}

		switch {
		case ch == '\\':
			if c.pos+1 >= len(c.pattern) {
				return c.fail(ErrDanglingEscape, c.pos)
			}
			next := c.pattern[c.pos+1]
			if isMetaEscape(next) || next == '-' {
				if err := c.push('\\'); err != nil {
					return err
				}
			}
			if err := c.push(next); err != nil {
				return err
			}
			c.pos += 2

		case c.pos+2 < len(c.pattern) && c.pattern[c.pos+1] == '-' &&
			c.pattern[c.pos+2] != ']' && c.pattern[c.pos+2] != '\\':
			hi := c.pattern[c.pos+2]
			if ch > hi {
				return c.fail(ErrBadClassRange, c.pos)
			}
			if err := c.push(ch); err != nil {
				return err
			}
			if err := c.push('-'); err != nil {
				return err
			}
			if err := c.push(hi); err != nil {
				return err
			}
			c.pos += 3

		default:
			if ch == '-' {
				if err := c.push('\\'); err != nil {
					return err
				}
			}
			if err := c.push(ch); err != nil {
				return err
			}
			c.pos++
		}
	}

	c.canQuantify = true
	return c.emit(Node{
		op:      op,
		classLo: conv.IntToUint16(lo),
		classHi: conv.IntToUint16(c.prog.classLen),
	})
}

// compileQuantifier parses '{m}', '{m,}', or '{m,n}', enforcing
// min <= max <= MaxRepeat, and emits the quantifier node (lazy when a '?'
// follows the closing brace).
func (c *compiler) compileQuantifier() error {
	if !c.canQuantify {
		return c.fail(ErrNothingToRepeat, c.pos)
	}
	c.canQuantify = false
	c.pos++ // consume '{'

	min, err := c.parseRepeatCount()
	if err != nil {
		return err
	}

	max := min
	if c.pos >= len(c.pattern) {
		return c.fail(ErrBadQuantifier, c.pos)
	}
	switch c.pattern[c.pos] {
	case '}':
		// {m}: exactly m repeats.
	case ',':
		c.pos++
		if c.pos < len(c.pattern) && c.pattern[c.pos] == '}' {
			// {m,}: open upper bound.
			max = MaxRepeat
		} else {
			max, err = c.parseRepeatCount()
			if err != nil {
				return err
			}
			if max < min {
				return c.fail(ErrQuantifierRange, c.pos)
			}
		}
		if c.pos >= len(c.pattern) || c.pattern[c.pos] != '}' {
			return c.fail(ErrBadQuantifier, c.pos)
		}
	default:
		return c.fail(ErrBadQuantifier, c.pos)
	}
	c.pos++ // consume '}'

	op := OpQuant
	if c.pos < len(c.pattern) && c.pattern[c.pos] == '?' {
		op = OpLazyQuant
		c.pos++
	}
	return c.emit(Node{
		op:  op,
		min: conv.IntToUint16(min),
		max: conv.IntToUint16(max),
	})
}

// parseRepeatCount reads one ASCII digit run, rejecting empty runs and
// values above MaxRepeat.
func (c *compiler) parseRepeatCount() (int, error) {
	start := c.pos
	val := 0
	for c.pos < len(c.pattern) && c.pattern[c.pos] >= '0' && c.pattern[c.pos] <= '9' {
		val = 10*val + int(c.pattern[c.pos]-'0')
		if val > MaxRepeat {
			return 0, c.fail(ErrQuantifierRange, start)
		}
		c.pos++
	}
	if c.pos == start {
		return 0, c.fail(ErrBadQuantifier, c.pos)
	}
	return val, nil
}
