package lexer_test

import (
	"testing"

	"github.com/frost-lang/frost/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(toks []lexer.Token) []lexer.TokenType {
	out := make([]lexer.TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestNextTokenCoreGrammar(t *testing.T) {
	input := `def x = 1 + 2 * y
	export def f = fn(a, b) -> { a + b }
	x @ f(1, 2)`

	toks := lexer.Tokenize(input)
	l := lexer.New(input)
	_ = l

	types := tokenTypes(toks)
	assert.Equal(t, lexer.DEF, types[0])
	assert.Equal(t, lexer.IDENT, types[1])
	assert.Equal(t, lexer.ASSIGN, types[2])
	assert.Equal(t, lexer.INT, types[3])
	assert.Equal(t, lexer.PLUS, types[4])
	assert.Equal(t, lexer.INT, types[5])
	assert.Equal(t, lexer.STAR, types[6])
	assert.Equal(t, lexer.IDENT, types[7])
	assert.Equal(t, lexer.EOF, types[len(types)-1])
}

func TestNumericLiterals(t *testing.T) {
	toks := lexer.Tokenize("42 3.14 0 1.0")
	require.Len(t, toks, 5)
	assert.Equal(t, lexer.INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, lexer.FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, lexer.INT, toks[2].Type)
	assert.Equal(t, lexer.FLOAT, toks[3].Type)
}

func TestDotWithoutDigitIsDotToken(t *testing.T) {
	toks := lexer.Tokenize("x.y")
	require.Len(t, toks, 4)
	assert.Equal(t, lexer.IDENT, toks[0].Type)
	assert.Equal(t, lexer.DOT, toks[1].Type)
	assert.Equal(t, lexer.IDENT, toks[2].Type)
}

func TestEllipsisToken(t *testing.T) {
	toks := lexer.Tokenize("...rest")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.ELLIPSIS, toks[0].Type)
	assert.Equal(t, "...", toks[0].Literal)
	assert.Equal(t, lexer.IDENT, toks[1].Type)
}

func TestStringEscapes(t *testing.T) {
	toks := lexer.Tokenize(`"a\nb\tc\\d\"e"`)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.STRING, toks[0].Type)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Literal)
}

func TestSingleQuotedString(t *testing.T) {
	toks := lexer.Tokenize(`'hello'`)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.STRING, toks[0].Type)
	assert.Equal(t, "hello", toks[0].Literal)
}

func TestUnterminatedStringReportsError(t *testing.T) {
	l := lexer.New(`"unterminated`)
	tok := l.NextToken()
	assert.Equal(t, lexer.STRING, tok.Type)
	require.Len(t, l.Errors(), 1)
}

func TestEmbeddedNewlineInStringIsError(t *testing.T) {
	l := lexer.New("\"abc\ndef\"")
	l.NextToken()
	require.Len(t, l.Errors(), 1)
}

func TestFormatStringRawLiteral(t *testing.T) {
	toks := lexer.Tokenize(`$"hello ${name}!"`)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.FSTRING, toks[0].Type)
	assert.Equal(t, "hello ${name}!", toks[0].Literal)
}

func TestLineCommentSkippedAsSeparator(t *testing.T) {
	toks := lexer.Tokenize("x # trailing comment\ny")
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.IDENT, toks[0].Type)
	assert.Equal(t, lexer.IDENT, toks[1].Type)
}

func TestSemicolonIsExplicitOptionalToken(t *testing.T) {
	toks := lexer.Tokenize("x;;; y")
	types := tokenTypes(toks)
	assert.Equal(t, []lexer.TokenType{lexer.IDENT, lexer.SEMICOLON, lexer.SEMICOLON, lexer.SEMICOLON, lexer.IDENT, lexer.EOF}, types)
}

func TestKeywordsNotTreatedAsIdentifiers(t *testing.T) {
	toks := lexer.Tokenize("if elif else def export fn reduce map foreach filter with init true false and or not null")
	want := []lexer.TokenType{
		lexer.IF, lexer.ELIF, lexer.ELSE, lexer.DEF, lexer.EXPORT, lexer.FN,
		lexer.REDUCE, lexer.MAP, lexer.FOREACH, lexer.FILTER, lexer.WITH, lexer.INIT,
		lexer.TRUE, lexer.FALSE, lexer.AND, lexer.OR, lexer.NOT, lexer.NULL, lexer.EOF,
	}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestComparisonAndCompoundOperators(t *testing.T) {
	toks := lexer.Tokenize("== != <= >= < > -> =")
	want := []lexer.TokenType{
		lexer.EQ, lexer.NEQ, lexer.LTE, lexer.GTE, lexer.LT, lexer.GT, lexer.ARROW, lexer.ASSIGN, lexer.EOF,
	}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestIllegalCharacterReportsErrorAndToken(t *testing.T) {
	l := lexer.New("~")
	tok := l.NextToken()
	assert.Equal(t, lexer.ILLEGAL, tok.Type)
	require.Len(t, l.Errors(), 1)
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	l := lexer.New("x\ny")
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 2, second.Pos.Line)
}
