package prog

// Search finds the first match of the program in text and returns its
// half-open byte range.
//
// Anchored programs (leading '^') are tried at offset 0 only. Unanchored
// programs are tried at every start offset from 0 through len(text)
// inclusive, so a pattern that matches the empty string matches empty text
// and the empty suffix. A nil program never matches.
func (p *Program) Search(text []byte) (start, end int, ok bool) {
	if p == nil {
		return 0, 0, false
	}

	if p.Anchored() {
		end, ok = p.matchHere(1, text, 0)
		return 0, end, ok
	}

	for at := 0; at <= len(text); at++ {
		if end, ok = p.matchHere(0, text, at); ok {
			return at, end, true
		}
	}
	return 0, 0, false
}

// MatchAt attempts a match anchored exactly at offset at and returns the
// end of the match. The offset must be in [0, len(text)].
func (p *Program) MatchAt(text []byte, at int) (end int, ok bool) {
	if p == nil || at < 0 || at > len(text) {
		return 0, false
	}
	node := 0
	if p.Anchored() {
		if at != 0 {
			return 0, false
		}
		node = 1
	}
	return p.matchHere(node, text, at)
}

// matchHere walks the node sequence from node against text starting at
// pos. It is iterative over runs of plain atoms; only quantified atoms
// recurse, through the repetition sub-algorithms.
func (p *Program) matchHere(node int, text []byte, pos int) (int, bool) {
	for {
		n := &p.nodes[node]

		switch {
		case n.op == OpSentinel:
			return pos, true
		case n.op == OpEnd && p.nodes[node+1].op == OpSentinel:
			// The only point at which '$' has effect.
			if pos == len(text) {
				return pos, true
			}
			return 0, false
		}

		// Lookahead: a quantifier on the next node consumes both nodes
		// and hands control to the repetition algorithm, whose
		// continuation starts two nodes ahead.
		if next := p.nodes[node+1].op; next.IsQuantifier() {
			min, max := quantBounds(p.nodes[node+1])
			if next.isLazy() {
				return p.matchLazy(n, node+2, text, pos, min, max)
			}
			return p.matchGreedy(n, node+2, text, pos, min, max)
		}

		if pos < len(text) && p.matchOne(n, text[pos]) {
			node++
			pos++
			continue
		}
		return 0, false
	}
}

// quantBounds maps a quantifier node to its repeat bounds.
func quantBounds(n Node) (min, max int) {
	switch n.op {
	case OpQMark, OpLazyQMark:
		return 0, 1
	case OpStar, OpLazyStar:
		return 0, maxExtent
	case OpPlus, OpLazyPlus:
		return 1, maxExtent
	default: // OpQuant, OpLazyQuant
		return int(n.min), int(n.max)
	}
}

// matchGreedy matches atom between min and max times before the
// continuation at cont, preferring as many repeats as possible: it first
// consumes the maximal extent, then backs off one repeat at a time until
// the continuation succeeds or the extent drops below min.
func (p *Program) matchGreedy(atom *Node, cont int, text []byte, pos, min, max int) (int, bool) {
	start := pos
	for max > 0 && pos < len(text) && p.matchOne(atom, text[pos]) {
		pos++
		max--
	}

	for pos-start >= min {
		if end, ok := p.matchHere(cont, text, pos); ok {
			return end, true
		}
		pos--
	}
	return 0, false
}

// matchLazy matches atom between min and max times before the continuation
// at cont, preferring as few repeats as possible: it forces min repeats,
// then alternates a continuation attempt with a single extra repeat until
// the continuation succeeds or the budget runs out.
func (p *Program) matchLazy(atom *Node, cont int, text []byte, pos, min, max int) (int, bool) {
	for min > 0 && pos < len(text) && p.matchOne(atom, text[pos]) {
		pos++
		min--
		max--
	}
	if min > 0 {
		return 0, false
	}

	for {
		if end, ok := p.matchHere(cont, text, pos); ok {
			return end, true
		}
		if max <= 0 || pos >= len(text) || !p.matchOne(atom, text[pos]) {
			return 0, false
		}
		pos++
		max--
	}
}

// matchOne tests a single atom node against one input byte.
func (p *Program) matchOne(n *Node, b byte) bool {
	switch n.op {
	case OpDot:
		return matchDot(b, p.dotAll)
	case OpChar:
		return n.ch == b
	case OpClass:
		return matchClass(p.classBytes(*n), b)
	case OpNegClass:
		return !matchClass(p.classBytes(*n), b)
	case OpDigit:
		return isDigit(b)
	case OpNotDigit:
		return !isDigit(b)
	case OpWord:
		return isWord(b)
	case OpNotWord:
		return !isWord(b)
	case OpSpace:
		return isSpace(b)
	case OpNotSpace:
		return !isSpace(b)
	default:
		// Anchors and quantifiers never reach here; the compiler rejects
		// the layouts that would route them through an atom test.
		return false
	}
}
