package ast

import (
	"fmt"

	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/value"
)

// Expression is any Node usable as a value-producing subtree.
type Expression interface {
	Node
	expressionNode()
}

// BinOp enumerates Binop's operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
)

func (o BinOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}

// UnOp enumerates Unop's operator.
type UnOp int

const (
	OpNeg UnOp = iota
	OpNot
)

func (o UnOp) String() string {
	if o == OpNot {
		return "not"
	}
	return "-"
}

// Literal wraps a constant value.Value.
type Literal struct {
	Position frosterr.Position
	Value    value.Value
}

func (l *Literal) Pos() frosterr.Position { return l.Position }
func (l *Literal) Label() string          { return "Literal(" + l.Value.ToInternalString(true) + ")" }
func (l *Literal) Children() []Node       { return nil }
func (l *Literal) Actions() []Action      { return nil }
func (*Literal) expressionNode()          {}

// NameLookup reads an identifier's bound value.
type NameLookup struct {
	Position frosterr.Position
	Name     string
}

func (n *NameLookup) Pos() frosterr.Position { return n.Position }
func (n *NameLookup) Label() string          { return "NameLookup(" + n.Name + ")" }
func (n *NameLookup) Children() []Node       { return nil }
func (n *NameLookup) Actions() []Action      { return []Action{{Kind: Usage, Name: n.Name}} }
func (*NameLookup) expressionNode()          {}

// Binop is a binary operator expression; children evaluate left-to-right.
type Binop struct {
	Position frosterr.Position
	Lhs, Rhs Expression
	Op       BinOp
}

func (b *Binop) Pos() frosterr.Position { return b.Position }
func (b *Binop) Label() string          { return "Binop(" + b.Op.String() + ")" }
func (b *Binop) Children() []Node       { return []Node{b.Lhs, b.Rhs} }
func (b *Binop) Actions() []Action      { return childActions(b.Lhs, b.Rhs) }
func (*Binop) expressionNode()          {}

// Unop is a unary prefix operator expression.
type Unop struct {
	Position frosterr.Position
	Operand  Expression
	Op       UnOp
}

func (u *Unop) Pos() frosterr.Position { return u.Position }
func (u *Unop) Label() string          { return "Unop(" + u.Op.String() + ")" }
func (u *Unop) Children() []Node       { return []Node{u.Operand} }
func (u *Unop) Actions() []Action      { return childActions(u.Operand) }
func (*Unop) expressionNode()          {}

// Index is a subscript expression: base[index].
type Index struct {
	Position    frosterr.Position
	Base, Index Expression
}

func (i *Index) Pos() frosterr.Position { return i.Position }
func (i *Index) Label() string          { return "Index" }
func (i *Index) Children() []Node       { return []Node{i.Base, i.Index} }
func (i *Index) Actions() []Action      { return childActions(i.Base, i.Index) }
func (*Index) expressionNode()          {}

// FunctionCall applies Callee to Args, evaluated left-to-right after Callee.
type FunctionCall struct {
	Position frosterr.Position
	Callee   Expression
	Args     []Expression
}

func (c *FunctionCall) Pos() frosterr.Position { return c.Position }
func (c *FunctionCall) Label() string          { return fmt.Sprintf("FunctionCall(%d args)", len(c.Args)) }
func (c *FunctionCall) Children() []Node {
	return append([]Node{c.Callee}, asNodes(c.Args)...)
}
func (c *FunctionCall) Actions() []Action {
	nodes := append([]Node{c.Callee}, asNodes(c.Args)...)
	return childActions(nodes...)
}
func (*FunctionCall) expressionNode() {}

// If is a conditional expression; Alternate is nil when no else/elif
// matched, in which case evaluation yields Null.
type If struct {
	Position              frosterr.Position
	Cond                  Expression
	Consequent, Alternate Expression
}

func (i *If) Pos() frosterr.Position { return i.Position }
func (i *If) Label() string          { return "If" }
func (i *If) Children() []Node {
	children := []Node{i.Cond, i.Consequent}
	if i.Alternate != nil {
		children = append(children, i.Alternate)
	}
	return children
}
func (i *If) Actions() []Action {
	// Only Cond unconditionally executes; Consequent/Alternate are
	// mutually exclusive at runtime, but the static action stream (used
	// for closure free-variable analysis) must see every name either
	// branch could read or define, since either may run.
	return childActions(i.Cond, i.Consequent, i.Alternate)
}
func (*If) expressionNode() {}

// ArrayConstructor builds an Array literal; elements evaluate left-to-right.
type ArrayConstructor struct {
	Position frosterr.Position
	Elems    []Expression
}

func (a *ArrayConstructor) Pos() frosterr.Position { return a.Position }
func (a *ArrayConstructor) Label() string          { return fmt.Sprintf("ArrayConstructor(%d)", len(a.Elems)) }
func (a *ArrayConstructor) Children() []Node       { return asNodes(a.Elems) }
func (a *ArrayConstructor) Actions() []Action      { return childActions(asNodes(a.Elems)...) }
func (*ArrayConstructor) expressionNode()          {}

// MapPair is one key/value entry of a MapConstructor. Key is either an
// identifier (string-key sugar, represented directly as a Literal by the
// parser) or a bracketed expression; either way it is an Expression here.
type MapPair struct {
	Key, Value Expression
}

// MapConstructor builds a Map literal; pairs evaluate left-to-right, later
// duplicate keys overwrite earlier ones.
type MapConstructor struct {
	Position frosterr.Position
	Pairs    []MapPair
}

func (m *MapConstructor) Pos() frosterr.Position { return m.Position }
func (m *MapConstructor) Label() string          { return fmt.Sprintf("MapConstructor(%d)", len(m.Pairs)) }
func (m *MapConstructor) Children() []Node {
	out := make([]Node, 0, len(m.Pairs)*2)
	for _, p := range m.Pairs {
		out = append(out, p.Key, p.Value)
	}
	return out
}
func (m *MapConstructor) Actions() []Action {
	return childActions(m.Children()...)
}
func (*MapConstructor) expressionNode() {}

// Lambda evaluates to a Function value (closure); evaluation runs free
// variable analysis against the defining symbol table.
type Lambda struct {
	Position frosterr.Position
	Params   []string
	Body     []Statement
}

func (l *Lambda) Pos() frosterr.Position { return l.Position }
func (l *Lambda) Label() string          { return fmt.Sprintf("Lambda(%v)", l.Params) }
func (l *Lambda) Children() []Node       { return asNodes(l.Body) }

// Actions for a Lambda, as seen from the *enclosing* scope, is empty: the
// lambda's body executes later, in the closure's own frame, not the
// defining scope's. Its own free-variable analysis walks Body directly
// (see package closure), not through this method.
func (l *Lambda) Actions() []Action { return nil }
func (*Lambda) expressionNode()     {}

// FormatStringSegment is either a literal text run or a `${name}` placeholder.
type FormatStringSegment struct {
	Literal       string
	Placeholder   string // empty when this segment is literal text
	IsPlaceholder bool
}

// FormatString interpolates `${name}` placeholders into literal text runs.
type FormatString struct {
	Position frosterr.Position
	Segments []FormatStringSegment
}

func (f *FormatString) Pos() frosterr.Position { return f.Position }
func (f *FormatString) Label() string          { return "FormatString" }
func (f *FormatString) Children() []Node       { return nil }
func (f *FormatString) Actions() []Action {
	var out []Action
	for _, seg := range f.Segments {
		if seg.IsPlaceholder {
			out = append(out, Action{Kind: Usage, Name: seg.Placeholder})
		}
	}
	return out
}
func (*FormatString) expressionNode() {}
