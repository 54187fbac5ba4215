package ast

import "github.com/frost-lang/frost/frosterr"

// MapExpr is the `map s with f` higher-order form.
type MapExpr struct {
	Position   frosterr.Position
	Source, Fn Expression
}

func (m *MapExpr) Pos() frosterr.Position { return m.Position }
func (m *MapExpr) Label() string          { return "Map" }
func (m *MapExpr) Children() []Node       { return []Node{m.Source, m.Fn} }
func (m *MapExpr) Actions() []Action      { return childActions(m.Source, m.Fn) }
func (*MapExpr) expressionNode()          {}

// FilterExpr is the `filter s with pred` higher-order form.
type FilterExpr struct {
	Position     frosterr.Position
	Source, Pred Expression
}

func (f *FilterExpr) Pos() frosterr.Position { return f.Position }
func (f *FilterExpr) Label() string          { return "Filter" }
func (f *FilterExpr) Children() []Node       { return []Node{f.Source, f.Pred} }
func (f *FilterExpr) Actions() []Action      { return childActions(f.Source, f.Pred) }
func (*FilterExpr) expressionNode()          {}

// ForeachExpr is the `foreach s with f` higher-order form; always yields
// Null, but its callback's boolean result decides early stop.
type ForeachExpr struct {
	Position   frosterr.Position
	Source, Fn Expression
}

func (f *ForeachExpr) Pos() frosterr.Position { return f.Position }
func (f *ForeachExpr) Label() string          { return "Foreach" }
func (f *ForeachExpr) Children() []Node       { return []Node{f.Source, f.Fn} }
func (f *ForeachExpr) Actions() []Action      { return childActions(f.Source, f.Fn) }
func (*ForeachExpr) expressionNode()          {}

// ReduceExpr is the `reduce s with f [init: i]` higher-order form. Init is
// nil when no `init:` clause was parsed.
type ReduceExpr struct {
	Position   frosterr.Position
	Source, Fn Expression
	Init       Expression
}

func (r *ReduceExpr) Pos() frosterr.Position { return r.Position }
func (r *ReduceExpr) Label() string          { return "Reduce" }
func (r *ReduceExpr) Children() []Node {
	children := []Node{r.Source, r.Fn}
	if r.Init != nil {
		children = append(children, r.Init)
	}
	return children
}
func (r *ReduceExpr) Actions() []Action {
	return childActions(r.Source, r.Fn, r.Init)
}
func (*ReduceExpr) expressionNode() {}
