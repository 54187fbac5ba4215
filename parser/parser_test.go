package parser_test

import (
	"testing"

	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/lexer"
	"github.com/frost-lang/frost/parser"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog, errs := parser.ParseProgram(lexer.New(src))
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 1)
	es, ok := prog.Statements[0].(*ast.ExprStatement)
	require.True(t, ok, "expected a bare expression statement")
	return es.Expr
}

func TestArithmeticPrecedence(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
	assert.Equal(t, value.Int(1), bin.Lhs.(*ast.Literal).Value)
	rhs, ok := bin.Rhs.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	expr := parseExpr(t, "-1 + 2")
	bin, ok := expr.(*ast.Binop)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
	_, ok = bin.Lhs.(*ast.Unop)
	assert.True(t, ok)
}

func TestChainedComparisonIsParseError(t *testing.T) {
	_, errs := parser.ParseProgram(lexer.New("a < b < c"))
	assert.NotEmpty(t, errs)
}

func TestChainedEqualityIsParseError(t *testing.T) {
	_, errs := parser.ParseProgram(lexer.New("a == b == c"))
	assert.NotEmpty(t, errs)
}

func TestUFCSSingleCall(t *testing.T) {
	expr := parseExpr(t, "x @ f(a, b)")
	call, ok := expr.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "x", call.Args[0].(*ast.NameLookup).Name)
	assert.Equal(t, "a", call.Args[1].(*ast.NameLookup).Name)
	assert.Equal(t, "b", call.Args[2].(*ast.NameLookup).Name)
}

func TestUFCSChainBindsLeftToRight(t *testing.T) {
	// a @ f() @ g() == g(f(a))
	expr := parseExpr(t, "a @ f() @ g()")
	outer, ok := expr.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "g", outer.Callee.(*ast.NameLookup).Name)
	require.Len(t, outer.Args, 1)
	inner, ok := outer.Args[0].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "f", inner.Callee.(*ast.NameLookup).Name)
	require.Len(t, inner.Args, 1)
	assert.Equal(t, "a", inner.Args[0].(*ast.NameLookup).Name)
}

func TestUFCSWithTrailingCallBindsToFirstCall(t *testing.T) {
	// a @ f()(b) == (f(a))(b)
	expr := parseExpr(t, "a @ f()(b)")
	outer, ok := expr.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, outer.Args, 1)
	assert.Equal(t, "b", outer.Args[0].(*ast.NameLookup).Name)
	inner, ok := outer.Callee.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "f", inner.Callee.(*ast.NameLookup).Name)
	require.Len(t, inner.Args, 1)
	assert.Equal(t, "a", inner.Args[0].(*ast.NameLookup).Name)
}

func TestUFCSRejectsNonCallRHS(t *testing.T) {
	_, errs := parser.ParseProgram(lexer.New("a @ b"))
	assert.NotEmpty(t, errs)
}

func TestIndexAndDotDesugaring(t *testing.T) {
	expr := parseExpr(t, "m.name")
	idx, ok := expr.(*ast.Index)
	require.True(t, ok)
	assert.Equal(t, value.String("name"), idx.Index.(*ast.Literal).Value)
}

func TestIfExpressionWithElifElse(t *testing.T) {
	expr := parseExpr(t, "if a: 1 elif b: 2 else: 3")
	top, ok := expr.(*ast.If)
	require.True(t, ok)
	mid, ok := top.Alternate.(*ast.If)
	require.True(t, ok)
	assert.Equal(t, value.Int(3), mid.Alternate.(*ast.Literal).Value)
}

func TestIfExpressionWithoutElseHasNilAlternate(t *testing.T) {
	expr := parseExpr(t, "if a: 1")
	top, ok := expr.(*ast.If)
	require.True(t, ok)
	assert.Nil(t, top.Alternate)
}

func TestArrayAndMapLiterals(t *testing.T) {
	expr := parseExpr(t, "[1, 2, 3]")
	arr, ok := expr.(*ast.ArrayConstructor)
	require.True(t, ok)
	assert.Len(t, arr.Elems, 3)

	expr2 := parseExpr(t, `{name: "a", [1+1]: 2}`)
	m, ok := expr2.(*ast.MapConstructor)
	require.True(t, ok)
	require.Len(t, m.Pairs, 2)
	assert.Equal(t, value.String("name"), m.Pairs[0].Key.(*ast.Literal).Value)
}

func TestLambdaParsesParamsAndBody(t *testing.T) {
	expr := parseExpr(t, "fn(a, b) -> { a + b }")
	lam, ok := expr.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
	require.Len(t, lam.Body, 1)
}

func TestHigherOrderForms(t *testing.T) {
	mapExpr := parseExpr(t, "map xs with fn(x) -> { x }")
	_, ok := mapExpr.(*ast.MapExpr)
	assert.True(t, ok)

	reduceExpr := parseExpr(t, "reduce xs with fn(acc, x) -> { acc } init: 0")
	red, ok := reduceExpr.(*ast.ReduceExpr)
	require.True(t, ok)
	require.NotNil(t, red.Init)
}

func TestDefineAndExportDefine(t *testing.T) {
	prog, errs := parser.ParseProgram(lexer.New("def x = 1\nexport def y = 2"))
	require.Empty(t, errs)
	require.Len(t, prog.Statements, 2)
	d1 := prog.Statements[0].(*ast.Define)
	assert.False(t, d1.Export)
	d2 := prog.Statements[1].(*ast.Define)
	assert.True(t, d2.Export)
}

func TestArrayDestructureWithRestAndDiscard(t *testing.T) {
	prog, errs := parser.ParseProgram(lexer.New("def [a, _, ...rest] = xs"))
	require.Empty(t, errs)
	ad := prog.Statements[0].(*ast.ArrayDestructure)
	assert.Equal(t, []string{"a", "_"}, ad.Names)
	require.NotNil(t, ad.Rest)
	assert.Equal(t, "rest", *ad.Rest)
}

func TestMapDestructure(t *testing.T) {
	prog, errs := parser.ParseProgram(lexer.New("def {name: n, [1+1]: v} = m"))
	require.Empty(t, errs)
	md := prog.Statements[0].(*ast.MapDestructure)
	require.Len(t, md.Elements, 2)
	assert.Equal(t, "n", md.Elements[0].Binding)
}

func TestFormatStringSegments(t *testing.T) {
	expr := parseExpr(t, `$"hello ${name}!"`)
	fs, ok := expr.(*ast.FormatString)
	require.True(t, ok)
	require.Len(t, fs.Segments, 3)
	assert.Equal(t, "hello ", fs.Segments[0].Literal)
	assert.True(t, fs.Segments[1].IsPlaceholder)
	assert.Equal(t, "name", fs.Segments[1].Placeholder)
	assert.Equal(t, "!", fs.Segments[2].Literal)
}

func TestSemicolonsAreOptionalAndStackable(t *testing.T) {
	prog, errs := parser.ParseProgram(lexer.New("def x = 1;;; def y = 2"))
	require.Empty(t, errs)
	assert.Len(t, prog.Statements, 2)
}
