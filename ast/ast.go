// Package ast defines Frost's abstract syntax tree: typed node variants, a
// uniform tree-dump printer, and the symbol-action stream that drives
// closure capture analysis. Each node exposes a debug label and its ordered
// children alongside its type, in the style of a typed-node-interface AST.
package ast

import "github.com/frost-lang/frost/frosterr"

// ActionKind tags one event in a node's symbol-action stream.
type ActionKind int

const (
	// Usage marks a read of name during evaluation.
	Usage ActionKind = iota
	// Definition marks a write (binding) of name during evaluation.
	Definition
)

func (k ActionKind) String() string {
	if k == Definition {
		return "Definition"
	}
	return "Usage"
}

// Action is one entry in a node's symbol-action stream: an ordered record of
// a name being read or bound during evaluation.
type Action struct {
	Kind ActionKind
	Name string
}

// Node is the interface every Frost AST node implements: position info for
// error reporting, a debug label and ordered children for the uniform tree
// printer, and the symbol-action stream used by free-variable analysis.
type Node interface {
	Pos() frosterr.Position
	// Label returns a short, human-readable node description for Dump.
	Label() string
	// Children returns this node's direct subexpressions/substatements, in
	// the order they would be evaluated.
	Children() []Node
	// Actions returns the ordered Usage/Definition stream this node (and
	// its subtree) performs during evaluation. It is the single source of
	// truth for closure capture and "use before define" checks.
	Actions() []Action
}

// Statement is a Node that may additionally be executed as a program
// top-level or lambda-body entry (Define, destructuring, bare expressions).
type Statement interface {
	Node
	statementNode()
}

// Program is an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

// childActions concatenates the Actions() of a list of nodes in order; the
// common building block every composite node's Actions() implementation
// uses.
func childActions(nodes ...Node) []Action {
	var out []Action
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, n.Actions()...)
	}
	return out
}

// asNodes upcasts a slice of Expression to a slice of Node for Children().
func asNodes[T Node](items []T) []Node {
	out := make([]Node, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
