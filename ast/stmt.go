package ast

import (
	"fmt"
	"strings"

	"github.com/frost-lang/frost/frosterr"
)

// ExprStatement is a bare expression used as a statement; its value is
// discarded unless it is the final statement of a lambda body.
type ExprStatement struct {
	Expr Expression
}

func (e *ExprStatement) Pos() frosterr.Position { return e.Expr.Pos() }
func (e *ExprStatement) Label() string          { return "ExprStatement" }
func (e *ExprStatement) Children() []Node       { return []Node{e.Expr} }
func (e *ExprStatement) Actions() []Action      { return e.Expr.Actions() }
func (*ExprStatement) statementNode()           {}

// Define is `def name = expr` or `export def name = expr`.
type Define struct {
	Position frosterr.Position
	Name     string
	Expr     Expression
	Export   bool
}

func (d *Define) Pos() frosterr.Position { return d.Position }
func (d *Define) Label() string {
	if d.Export {
		return "Define(export " + d.Name + ")"
	}
	return "Define(" + d.Name + ")"
}
func (d *Define) Children() []Node { return []Node{d.Expr} }
func (d *Define) Actions() []Action {
	return append(childActions(d.Expr), Action{Kind: Definition, Name: d.Name})
}
func (*Define) statementNode() {}

// ArrayDestructure is `def [n1, n2, ..., ...rest] = expr`; names may be "_"
// to discard a position, and Rest is nil when no "...rest" was parsed.
type ArrayDestructure struct {
	Position frosterr.Position
	Names    []string
	Rest     *string
	Expr     Expression
	Export   bool
}

func (a *ArrayDestructure) Pos() frosterr.Position { return a.Position }
func (a *ArrayDestructure) Label() string {
	rest := ""
	if a.Rest != nil {
		rest = ", ..." + *a.Rest
	}
	return fmt.Sprintf("ArrayDestructure([%s%s])", strings.Join(a.Names, ", "), rest)
}
func (a *ArrayDestructure) Children() []Node { return []Node{a.Expr} }

// Actions emits the expression's reads first, then Definitions in pattern
// order — never map/declaration order — so the RHS evaluates in a scope
// where the destructured names are not yet bound.
func (a *ArrayDestructure) Actions() []Action {
	out := childActions(a.Expr)
	for _, n := range a.Names {
		if n != "_" {
			out = append(out, Action{Kind: Definition, Name: n})
		}
	}
	if a.Rest != nil && *a.Rest != "_" {
		out = append(out, Action{Kind: Definition, Name: *a.Rest})
	}
	return out
}
func (*ArrayDestructure) statementNode() {}

// MapDestructureElement binds one key's value to a name (or discards it).
// Key is either an identifier (string-key sugar) or a bracketed expression.
type MapDestructureElement struct {
	Key     Expression
	Binding string // identifier, or "_" to discard
}

// MapDestructure is `def {k1: b1, ...} = expr`.
type MapDestructure struct {
	Position frosterr.Position
	Elements []MapDestructureElement
	Expr     Expression
	Export   bool
}

func (m *MapDestructure) Pos() frosterr.Position { return m.Position }
func (m *MapDestructure) Label() string          { return fmt.Sprintf("MapDestructure(%d)", len(m.Elements)) }
func (m *MapDestructure) Children() []Node {
	out := make([]Node, 0, len(m.Elements)+1)
	out = append(out, m.Expr)
	for _, e := range m.Elements {
		out = append(out, e.Key)
	}
	return out
}
func (m *MapDestructure) Actions() []Action {
	out := childActions(m.Expr)
	for _, e := range m.Elements {
		out = append(out, e.Key.Actions()...)
		if e.Binding != "_" {
			out = append(out, Action{Kind: Definition, Name: e.Binding})
		}
	}
	return out
}
func (*MapDestructure) statementNode() {}
