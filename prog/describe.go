package prog

import (
	"fmt"
	"strings"
)

// Describe renders one line per node of the compiled program, showing the
// tag and its payload. It exists for debugging and has no stability
// contract; nothing in the matcher depends on its output.
func (p *Program) Describe() string {
	if p == nil {
		return "<nil program>\n"
	}

	var sb strings.Builder
	for i := 0; i < p.n; i++ {
		n := p.nodes[i]
		switch n.op {
		case OpChar:
			fmt.Fprintf(&sb, "%2d  %s %q\n", i, n.op, n.ch)
		case OpClass, OpNegClass:
			fmt.Fprintf(&sb, "%2d  %s [%s]\n", i, n.op, formatClass(p.classBytes(n)))
		case OpQuant, OpLazyQuant:
			fmt.Fprintf(&sb, "%2d  %s {%d,%d}\n", i, n.op, n.min, n.max)
		default:
			fmt.Fprintf(&sb, "%2d  %s\n", i, n.op)
		}
	}
	return sb.String()
}

// formatClass renders an encoded class region in roughly the source
// notation: triples as lo-hi, backslash pairs as written, literals as
// themselves.
func formatClass(data []byte) string {
	var sb strings.Builder
	for i := 0; i < len(data); {
		switch {
		case data[i] == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(data[i+1])
			i += 2
		case i+2 < len(data) && data[i+1] == '-':
			fmt.Fprintf(&sb, "%c-%c", data[i], data[i+2])
			i += 3
		default:
			sb.WriteByte(data[i])
			i++
		}
	}
	return sb.String()
}
