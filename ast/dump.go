package ast

import "strings"

// Dump renders a uniform, indented tree view of a node, used by the CLI's
// parse-tree debug mode and by the package's snapshot tests.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

// DumpProgram renders every top-level statement's tree in order.
func DumpProgram(p *Program) string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		dump(&b, s, 0)
	}
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Label())
	b.WriteByte('\n')
	for _, c := range n.Children() {
		dump(b, c, depth+1)
	}
}
