package tinyregex

// Match represents one successful search: a half-open byte range into the
// searched haystack.
//
// The haystack is held by reference, not copied; the Bytes and String
// views stay valid only as long as the caller keeps the haystack intact.
type Match struct {
	start    int
	end      int
	haystack []byte
}

func newMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start offset of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes. Zero-length matches are
// legal: a pattern like "a*" matches the empty string.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a view into the haystack.
func (m *Match) Bytes() []byte {
	return m.haystack[m.start:m.end]
}

// String returns the matched bytes as a string.
func (m *Match) String() string {
	return string(m.Bytes())
}
