package closure_test

import (
	"testing"

	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/closure"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frosterrPos() frosterr.Position { return frosterr.Position{Line: 1, Column: 1} }

func exec(frame *symtab.Table, body []ast.Statement) (value.Value, error) {
	var last value.Value = value.NullValue
	for _, stmt := range body {
		es, ok := stmt.(*ast.ExprStatement)
		if !ok {
			continue
		}
		switch e := es.Expr.(type) {
		case *ast.Literal:
			last = e.Value
		case *ast.NameLookup:
			v, err := frame.Lookup(e.Name)
			if err != nil {
				return nil, err
			}
			last = v
		}
	}
	return last, nil
}

func TestAnalyseFindsFreeVariablesInOrder(t *testing.T) {
	body := []ast.Statement{
		&ast.ExprStatement{Expr: &ast.Binop{
			Op:  ast.OpAdd,
			Lhs: &ast.NameLookup{Name: "x"},
			Rhs: &ast.NameLookup{Name: "y"},
		}},
	}
	free, err := closure.Analyse([]string{"x"}, body)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, free)
}

func TestAnalyseRejectsDuplicateParams(t *testing.T) {
	_, err := closure.Analyse([]string{"x", "x"}, nil)
	require.Error(t, err)
}

func TestAnalyseRejectsParameterRedefinition(t *testing.T) {
	body := []ast.Statement{
		&ast.Define{Name: "x", Expr: &ast.Literal{Value: value.Int(1)}},
	}
	_, err := closure.Analyse([]string{"x"}, body)
	require.Error(t, err)
}

func TestNewFailsOnMissingCapture(t *testing.T) {
	table := symtab.New()
	body := []ast.Statement{
		&ast.ExprStatement{Expr: &ast.NameLookup{Name: "y"}},
	}
	_, err := closure.New(table, []string{"x"}, body, frosterrPos(), exec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No definition found for captured symbol y")
}

func TestCallBindsParamsAndSeesCaptures(t *testing.T) {
	table := symtab.New()
	require.NoError(t, table.Define("y", value.Int(10)))

	body := []ast.Statement{
		&ast.ExprStatement{Expr: &ast.Binop{
			Op:  ast.OpAdd,
			Lhs: &ast.NameLookup{Name: "x"},
			Rhs: &ast.NameLookup{Name: "y"},
		}},
	}
	c, err := closure.New(table, []string{"x"}, body, frosterrPos(), addExec)
	require.NoError(t, err)

	result, err := c.Call([]value.Value{value.Int(5)})
	require.NoError(t, err)
	assert.Equal(t, value.Int(15), result)
}

func TestCallMissingTrailingParamsBindNull(t *testing.T) {
	table := symtab.New()
	body := []ast.Statement{
		&ast.ExprStatement{Expr: &ast.NameLookup{Name: "x"}},
	}
	c, err := closure.New(table, []string{"x"}, body, frosterrPos(), exec)
	require.NoError(t, err)

	result, err := c.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, value.NullValue, result)
}

func TestCallRejectsExcessArgs(t *testing.T) {
	table := symtab.New()
	c, err := closure.New(table, []string{"x"}, nil, frosterrPos(), exec)
	require.NoError(t, err)

	_, err = c.Call([]value.Value{value.Int(1), value.Int(2)})
	require.Error(t, err)
}

func addExec(frame *symtab.Table, body []ast.Statement) (value.Value, error) {
	es := body[0].(*ast.ExprStatement)
	bin := es.Expr.(*ast.Binop)
	x, _ := frame.Lookup(bin.Lhs.(*ast.NameLookup).Name)
	y, _ := frame.Lookup(bin.Rhs.(*ast.NameLookup).Name)
	return value.Int(x.(value.Int) + y.(value.Int)), nil
}
