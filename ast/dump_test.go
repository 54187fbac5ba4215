package ast_test

import (
	"testing"

	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/value"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	snaps.Clean(m)
}

func lit(v value.Value) *ast.Literal {
	return &ast.Literal{Value: v}
}

func TestDumpBinopTree(t *testing.T) {
	tree := &ast.Binop{
		Op:  ast.OpAdd,
		Lhs: lit(value.Int(1)),
		Rhs: &ast.Binop{Op: ast.OpMul, Lhs: lit(value.Int(2)), Rhs: lit(value.Int(3))},
	}
	snaps.MatchSnapshot(t, ast.Dump(tree))
}

func TestDumpIfWithoutAlternate(t *testing.T) {
	tree := &ast.If{
		Cond:       &ast.NameLookup{Name: "flag"},
		Consequent: lit(value.Int(1)),
	}
	snaps.MatchSnapshot(t, ast.Dump(tree))
}

func TestActionsOrderForDefine(t *testing.T) {
	d := &ast.Define{
		Name: "x",
		Expr: &ast.Binop{Op: ast.OpAdd, Lhs: &ast.NameLookup{Name: "y"}, Rhs: lit(value.Int(1))},
	}
	actions := d.Actions()
	assert.Equal(t, []ast.Action{
		{Kind: ast.Usage, Name: "y"},
		{Kind: ast.Definition, Name: "x"},
	}, actions)
}

func TestArrayDestructureActionsSkipDiscards(t *testing.T) {
	rest := "rest"
	ad := &ast.ArrayDestructure{
		Names: []string{"a", "_"},
		Rest:  &rest,
		Expr:  &ast.NameLookup{Name: "src"},
	}
	actions := ad.Actions()
	assert.Equal(t, []ast.Action{
		{Kind: ast.Usage, Name: "src"},
		{Kind: ast.Definition, Name: "a"},
		{Kind: ast.Definition, Name: "rest"},
	}, actions)
}
