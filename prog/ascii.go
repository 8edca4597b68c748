package prog

// Byte membership predicates. All are pure and total over the full byte
// range; the matcher composes them per node tag.

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isWord reports whether b is a word byte: letter, digit, or underscore.
func isWord(b byte) bool {
	return b == '_' || isAlpha(b) || isDigit(b)
}

// isSpace reports whether b is an ASCII whitespace byte:
// space, TAB, LF, CR, FF, or VT.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// matchDot reports whether '.' accepts b. The default build rejects both
// CR and LF; dotAll accepts every byte.
func matchDot(b byte, dotAll bool) bool {
	if dotAll {
		return true
	}
	return b != '\n' && b != '\r'
}

// matchMeta resolves one escaped byte from a class buffer against b:
// the six built-in classes, or a literal comparison for anything else
// (covering an escaped backslash or hyphen).
func matchMeta(b, meta byte) bool {
	switch meta {
	case 'd':
		return isDigit(b)
	case 'D':
		return !isDigit(b)
	case 'w':
		return isWord(b)
	case 'W':
		return !isWord(b)
	case 's':
		return isSpace(b)
	case 'S':
		return !isSpace(b)
	default:
		return b == meta
	}
}

// matchClass scans an encoded class region left to right and reports
// whether b is a member. The encoding is the compiler's: a backslash pair
// for a built-in class or escaped byte, a lo-'-'-hi triple for an
// inclusive range, and a lone byte for itself. The compiler escapes
// literal hyphens, so a bare '-' in second position is always a range
// operator. Returns false when the region is exhausted.
func matchClass(data []byte, b byte) bool {
	for i := 0; i < len(data); {
		switch {
		case data[i] == '\\':
			// The compiler never writes a trailing backslash, so i+1 is
			// always in range.
			if matchMeta(b, data[i+1]) {
				return true
			}
			i += 2
		case i+2 < len(data) && data[i+1] == '-':
			if b >= data[i] && b <= data[i+2] {
				return true
			}
			i += 3
		default:
			if b == data[i] {
				return true
			}
			i++
		}
	}
	return false
}
