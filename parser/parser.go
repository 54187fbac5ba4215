// Package parser turns a token stream into an AST using Pratt-style
// precedence climbing for expressions and straightforward recursive
// descent for statements, patterns, and literal forms.
package parser

import (
	"strconv"
	"strings"

	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/lexer"
	"github.com/frost-lang/frost/value"
)

// Precedence levels, lowest to highest; matches the expression grammar's
// nine rows (or/and/equality/comparison/additive/multiplicative/prefix/
// UFCS/postfix).
const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	PREFIX
	UFCS
	POSTFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       OR,
	lexer.AND:      AND,
	lexer.EQ:       EQUALITY,
	lexer.NEQ:      EQUALITY,
	lexer.LT:       COMPARISON,
	lexer.LTE:      COMPARISON,
	lexer.GT:       COMPARISON,
	lexer.GTE:      COMPARISON,
	lexer.PLUS:     ADDITIVE,
	lexer.MINUS:    ADDITIVE,
	lexer.STAR:     MULTIPLICATIVE,
	lexer.SLASH:    MULTIPLICATIVE,
	lexer.PERCENT:  MULTIPLICATIVE,
	lexer.AT:       UFCS,
	lexer.LPAREN:   POSTFIX,
	lexer.LBRACKET: POSTFIX,
	lexer.DOT:      POSTFIX,
}

// nonChaining marks precedence levels where a second operator at the same
// level immediately following the first is a grammar error rather than
// left-associative chaining ("a<b<c", "a==b==c").
var nonChaining = map[int]bool{EQUALITY: true, COMPARISON: true}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a Lexer's token stream and builds an ast.Program. Every
// prefix and infix parse function leaves p.cur sitting on the first token
// it did not consume, so p.cur always doubles as one-token lookahead for
// the precedence-climbing loop in parseExpression — no separate peek
// buffer is needed.
type Parser struct {
	l   *lexer.Lexer
	cur lexer.Token

	errors []error

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l and primes the first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[lexer.TokenType]prefixParseFn{
		lexer.INT:      p.parseIntLiteral,
		lexer.FLOAT:    p.parseFloatLiteral,
		lexer.STRING:   p.parseStringLiteral,
		lexer.FSTRING:  p.parseFormatString,
		lexer.TRUE:     p.parseBoolLiteral,
		lexer.FALSE:    p.parseBoolLiteral,
		lexer.NULL:     p.parseNullLiteral,
		lexer.IDENT:    p.parseIdentifier,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.LBRACKET: p.parseArrayConstructor,
		lexer.LBRACE:   p.parseMapConstructor,
		lexer.MINUS:    p.parseUnaryExpression,
		lexer.NOT:      p.parseUnaryExpression,
		lexer.IF:       p.parseIfExpression,
		lexer.FN:       p.parseLambda,
		lexer.MAP:      p.parseMapHigherOrder,
		lexer.FILTER:   p.parseFilterHigherOrder,
		lexer.FOREACH:  p.parseForeachHigherOrder,
		lexer.REDUCE:   p.parseReduceHigherOrder,
	}

	p.infixFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinop,
		lexer.MINUS:    p.parseBinop,
		lexer.STAR:     p.parseBinop,
		lexer.SLASH:    p.parseBinop,
		lexer.PERCENT:  p.parseBinop,
		lexer.EQ:       p.parseBinop,
		lexer.NEQ:      p.parseBinop,
		lexer.LT:       p.parseBinop,
		lexer.LTE:      p.parseBinop,
		lexer.GT:       p.parseBinop,
		lexer.GTE:      p.parseBinop,
		lexer.AND:      p.parseBinop,
		lexer.OR:       p.parseBinop,
		lexer.AT:       p.parseUFCS,
		lexer.LPAREN:   p.parseCallExpression,
		lexer.LBRACKET: p.parseIndexExpression,
		lexer.DOT:      p.parseDotAccess,
	}

	p.nextToken()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.l.NextToken()
}

func (p *Parser) addError(pos frosterr.Position, format string, args ...any) {
	p.errors = append(p.errors, frosterr.Unrecoverablef(pos, format, args...))
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.cur.Type == t {
		p.nextToken()
		return true
	}
	p.addError(p.cur.Pos, "expected %s, got %s", t, p.cur.Type)
	return false
}

// ParseProgram parses the full token stream into a Program. Parsing
// continues past a statement-level error to report as many as possible;
// all of them are returned alongside the Program.
func ParseProgram(l *lexer.Lexer) (*ast.Program, []error) {
	p := New(l)
	prog := &ast.Program{}
	for p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		for p.cur.Type == lexer.SEMICOLON {
			p.nextToken()
		}
	}
	return prog, p.errors
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.DEF:
		return p.parseDefine(false)
	case lexer.EXPORT:
		p.nextToken()
		if !p.expect(lexer.DEF) {
			return nil
		}
		return p.parseDefineAfterDef(true)
	default:
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			p.nextToken()
			return nil
		}
		return &ast.ExprStatement{Expr: expr}
	}
}

func (p *Parser) parseDefine(export bool) ast.Statement {
	p.nextToken() // consume "def"
	return p.parseDefineAfterDef(export)
}

// parseDefineAfterDef parses what follows the "def" keyword: a plain name,
// an array pattern, or a map pattern, each followed by "= expr".
func (p *Parser) parseDefineAfterDef(export bool) ast.Statement {
	pos := p.cur.Pos
	switch p.cur.Type {
	case lexer.IDENT:
		name := p.cur.Literal
		p.nextToken()
		if !p.expect(lexer.ASSIGN) {
			return nil
		}
		expr := p.parseExpression(LOWEST)
		return &ast.Define{Position: pos, Name: name, Expr: expr, Export: export}
	case lexer.LBRACKET:
		return p.parseArrayDestructure(pos, export)
	case lexer.LBRACE:
		return p.parseMapDestructure(pos, export)
	default:
		p.addError(pos, "expected a name or destructuring pattern after def, got %s", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseArrayDestructure(pos frosterr.Position, export bool) ast.Statement {
	p.nextToken() // consume "["
	var names []string
	var rest *string
	seen := map[string]bool{}

	for p.cur.Type != lexer.RBRACKET && p.cur.Type != lexer.EOF {
		if p.cur.Type == lexer.ELLIPSIS {
			p.nextToken()
			if p.cur.Type != lexer.IDENT {
				p.addError(p.cur.Pos, "expected identifier after ... in array pattern")
				return nil
			}
			r := p.cur.Literal
			rest = &r
			p.nextToken()
		} else if p.cur.Type == lexer.IDENT {
			n := p.cur.Literal
			if n != "_" {
				if seen[n] {
					p.addError(p.cur.Pos, "duplicate name %q in array pattern", n)
				}
				seen[n] = true
			}
			names = append(names, n)
			p.nextToken()
		} else {
			p.addError(p.cur.Pos, "unexpected token in array pattern: %s", p.cur.Type)
			return nil
		}
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	if !p.expect(lexer.RBRACKET) {
		return nil
	}
	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	expr := p.parseExpression(LOWEST)
	return &ast.ArrayDestructure{Position: pos, Names: names, Rest: rest, Expr: expr, Export: export}
}

func (p *Parser) parseMapDestructure(pos frosterr.Position, export bool) ast.Statement {
	p.nextToken() // consume "{"
	var elems []ast.MapDestructureElement

	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		var key ast.Expression
		if p.cur.Type == lexer.IDENT {
			key = &ast.Literal{Position: p.cur.Pos, Value: value.String(p.cur.Literal)}
			p.nextToken()
		} else if p.cur.Type == lexer.LBRACKET {
			p.nextToken()
			key = p.parseExpression(LOWEST)
			if !p.expect(lexer.RBRACKET) {
				return nil
			}
		} else {
			p.addError(p.cur.Pos, "expected key in map pattern, got %s", p.cur.Type)
			return nil
		}
		if !p.expect(lexer.COLON) {
			return nil
		}
		if p.cur.Type != lexer.IDENT {
			p.addError(p.cur.Pos, "expected binding name in map pattern, got %s", p.cur.Type)
			return nil
		}
		binding := p.cur.Literal
		p.nextToken()
		elems = append(elems, ast.MapDestructureElement{Key: key, Binding: binding})
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}
	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	expr := p.parseExpression(LOWEST)
	return &ast.MapDestructure{Position: pos, Elements: elems, Expr: expr, Export: export}
}

// parseExpression is the Pratt core: a prefix parse followed by a
// precedence-climbing infix loop. After a combine at a nonChaining level,
// an operator of that same level (e.g. "a<b<c") is reported as an error
// and the loop stops; an operator of another level (e.g. "a<b and c")
// continues it.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.addError(p.cur.Pos, "unexpected token: %s", p.cur.Type)
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.curPrecedence() {
		opPrec := p.curPrecedence()
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			break
		}
		left = infix(left)
		if nonChaining[opPrec] && p.curPrecedence() == opPrec {
			p.addError(p.cur.Pos, "chained comparison: %s cannot follow an operator of the same precedence", p.cur.Type)
			break
		}
	}
	return left
}

func binopFor(t lexer.TokenType) ast.BinOp {
	switch t {
	case lexer.PLUS:
		return ast.OpAdd
	case lexer.MINUS:
		return ast.OpSub
	case lexer.STAR:
		return ast.OpMul
	case lexer.SLASH:
		return ast.OpDiv
	case lexer.PERCENT:
		return ast.OpMod
	case lexer.EQ:
		return ast.OpEq
	case lexer.NEQ:
		return ast.OpNeq
	case lexer.LT:
		return ast.OpLt
	case lexer.LTE:
		return ast.OpLte
	case lexer.GT:
		return ast.OpGt
	case lexer.GTE:
		return ast.OpGte
	case lexer.AND:
		return ast.OpAnd
	default:
		return ast.OpOr
	}
}

func (p *Parser) parseBinop(left ast.Expression) ast.Expression {
	op := binopFor(p.cur.Type)
	pos := p.cur.Pos
	prec := precedences[p.cur.Type]
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.Binop{Position: pos, Lhs: left, Rhs: right, Op: op}
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	pos := p.cur.Pos
	op := ast.OpNeg
	if p.cur.Type == lexer.NOT {
		op = ast.OpNot
	}
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.Unop{Position: pos, Operand: operand, Op: op}
}

// parseUFCS implements `x @ f(a,b,...)` sugar for `f(x,a,b,...)`. The
// right-hand side is parsed at UFCS precedence so trailing postfix chains
// (`f()(b)`, `f()[i]`) attach to it, then the leading argument is injected
// into the first call found along that chain's leftmost spine.
func (p *Parser) parseUFCS(left ast.Expression) ast.Expression {
	pos := p.cur.Pos
	p.nextToken()
	rhs := p.parseExpression(UFCS)
	if rhs == nil {
		return nil
	}
	injected, ok := injectLeadingArg(rhs, left)
	if !ok {
		p.addError(pos, "right-hand side of @ must be a call")
		return nil
	}
	return injected
}

func injectLeadingArg(e ast.Expression, arg ast.Expression) (ast.Expression, bool) {
	switch n := e.(type) {
	case *ast.FunctionCall:
		if newCallee, ok := injectLeadingArg(n.Callee, arg); ok {
			n.Callee = newCallee
			return n, true
		}
		n.Args = append([]ast.Expression{arg}, n.Args...)
		return n, true
	case *ast.Index:
		newTarget, ok := injectLeadingArg(n.Base, arg)
		if !ok {
			return n, false
		}
		n.Base = newTarget
		return n, true
	default:
		return e, false
	}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "("
	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		args = append(args, p.parseExpression(LOWEST))
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.FunctionCall{Position: pos, Callee: callee, Args: args}
}

func (p *Parser) parseIndexExpression(base ast.Expression) ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "["
	idx := p.parseExpression(LOWEST)
	p.expect(lexer.RBRACKET)
	return &ast.Index{Position: pos, Base: base, Index: idx}
}

// parseDotAccess desugars `expr.ident` to `expr["ident"]`, field access on
// a Map being the only use for `.ident` in a language without objects.
func (p *Parser) parseDotAccess(base ast.Expression) ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "."
	if p.cur.Type != lexer.IDENT {
		p.addError(p.cur.Pos, "expected identifier after ., got %s", p.cur.Type)
		return nil
	}
	key := &ast.Literal{Position: p.cur.Pos, Value: value.String(p.cur.Literal)}
	p.nextToken()
	return &ast.Index{Position: pos, Base: base, Index: key}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume "("
	expr := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	return expr
}

func (p *Parser) parseIdentifier() ast.Expression {
	n := &ast.NameLookup{Position: p.cur.Pos, Name: p.cur.Literal}
	p.nextToken()
	return n
}

func (p *Parser) parseIntLiteral() ast.Expression {
	pos := p.cur.Pos
	n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addError(pos, "invalid integer literal: %s", p.cur.Literal)
	}
	p.nextToken()
	return &ast.Literal{Position: pos, Value: value.Int(n)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	pos := p.cur.Pos
	f, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.addError(pos, "invalid float literal: %s", p.cur.Literal)
	}
	p.nextToken()
	return &ast.Literal{Position: pos, Value: value.Float(f)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	pos := p.cur.Pos
	lit := &ast.Literal{Position: pos, Value: value.String(p.cur.Literal)}
	p.nextToken()
	return lit
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	pos := p.cur.Pos
	b := p.cur.Type == lexer.TRUE
	p.nextToken()
	return &ast.Literal{Position: pos, Value: value.Bool(b)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	pos := p.cur.Pos
	p.nextToken()
	return &ast.Literal{Position: pos, Value: value.NullValue}
}

// parseFormatString splits a raw `$"..."` literal's text into literal runs
// and `${name}` placeholders; malformed braces or an empty/non-identifier
// placeholder name are parse errors.
func (p *Parser) parseFormatString() ast.Expression {
	pos := p.cur.Pos
	raw := p.cur.Literal
	p.nextToken()

	var segs []ast.FormatStringSegment
	var lit strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			if lit.Len() > 0 {
				segs = append(segs, ast.FormatStringSegment{Literal: lit.String()})
				lit.Reset()
			}
			end := strings.IndexByte(raw[i+2:], '}')
			if end < 0 {
				p.addError(pos, "unterminated ${ in format string")
				return &ast.FormatString{Position: pos, Segments: segs}
			}
			name := raw[i+2 : i+2+end]
			if !isValidPlaceholderName(name) {
				p.addError(pos, "invalid placeholder name: %q", name)
				return &ast.FormatString{Position: pos, Segments: segs}
			}
			segs = append(segs, ast.FormatStringSegment{Placeholder: name, IsPlaceholder: true})
			i += 2 + end + 1
			continue
		}
		if raw[i] == '}' {
			p.addError(pos, "unmatched } in format string")
			return &ast.FormatString{Position: pos, Segments: segs}
		}
		lit.WriteByte(raw[i])
		i++
	}
	if lit.Len() > 0 {
		segs = append(segs, ast.FormatStringSegment{Literal: lit.String()})
	}
	return &ast.FormatString{Position: pos, Segments: segs}
}

func isValidPlaceholderName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func (p *Parser) parseArrayConstructor() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "["
	var elems []ast.Expression
	for p.cur.Type != lexer.RBRACKET && p.cur.Type != lexer.EOF {
		elems = append(elems, p.parseExpression(LOWEST))
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	p.expect(lexer.RBRACKET)
	return &ast.ArrayConstructor{Position: pos, Elems: elems}
}

func (p *Parser) parseMapConstructor() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "{"
	var pairs []ast.MapPair
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		var key ast.Expression
		if p.cur.Type == lexer.IDENT {
			key = &ast.Literal{Position: p.cur.Pos, Value: value.String(p.cur.Literal)}
			p.nextToken()
		} else if p.cur.Type == lexer.LBRACKET {
			p.nextToken()
			key = p.parseExpression(LOWEST)
			p.expect(lexer.RBRACKET)
		} else {
			p.addError(p.cur.Pos, "expected map key, got %s", p.cur.Type)
			return nil
		}
		if !p.expect(lexer.COLON) {
			return nil
		}
		val := p.parseExpression(LOWEST)
		pairs = append(pairs, ast.MapPair{Key: key, Value: val})
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	p.expect(lexer.RBRACE)
	return &ast.MapConstructor{Position: pos, Pairs: pairs}
}

// parseIfExpression parses `if cond: expr (elif cond: expr)* (else: expr)?`.
// `elif` desugars to a nested If in the alternate slot.
func (p *Parser) parseIfExpression() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "if"
	cond := p.parseExpression(LOWEST)
	if !p.expect(lexer.COLON) {
		return nil
	}
	consequent := p.parseExpression(LOWEST)

	var alternate ast.Expression
	if p.cur.Type == lexer.ELIF {
		alternate = p.parseElif()
	} else if p.cur.Type == lexer.ELSE {
		p.nextToken()
		if !p.expect(lexer.COLON) {
			return nil
		}
		alternate = p.parseExpression(LOWEST)
	}
	return &ast.If{Position: pos, Cond: cond, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseElif() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "elif"
	cond := p.parseExpression(LOWEST)
	if !p.expect(lexer.COLON) {
		return nil
	}
	consequent := p.parseExpression(LOWEST)

	var alternate ast.Expression
	if p.cur.Type == lexer.ELIF {
		alternate = p.parseElif()
	} else if p.cur.Type == lexer.ELSE {
		p.nextToken()
		if !p.expect(lexer.COLON) {
			return nil
		}
		alternate = p.parseExpression(LOWEST)
	}
	return &ast.If{Position: pos, Cond: cond, Consequent: consequent, Alternate: alternate}
}

// parseLambda parses `fn(params) -> { statements }`.
func (p *Parser) parseLambda() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "fn"
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	var params []string
	for p.cur.Type != lexer.RPAREN && p.cur.Type != lexer.EOF {
		if p.cur.Type != lexer.IDENT {
			p.addError(p.cur.Pos, "expected parameter name, got %s", p.cur.Type)
			return nil
		}
		params = append(params, p.cur.Literal)
		p.nextToken()
		if p.cur.Type == lexer.COMMA {
			p.nextToken()
		}
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	if !p.expect(lexer.ARROW) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	var body []ast.Statement
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		for p.cur.Type == lexer.SEMICOLON {
			p.nextToken()
		}
	}
	p.expect(lexer.RBRACE)
	return &ast.Lambda{Position: pos, Params: params, Body: body}
}

func (p *Parser) parseMapHigherOrder() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "map"
	source := p.parseExpression(LOWEST)
	if !p.expect(lexer.WITH) {
		return nil
	}
	fn := p.parseExpression(LOWEST)
	return &ast.MapExpr{Position: pos, Source: source, Fn: fn}
}

func (p *Parser) parseFilterHigherOrder() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "filter"
	source := p.parseExpression(LOWEST)
	if !p.expect(lexer.WITH) {
		return nil
	}
	pred := p.parseExpression(LOWEST)
	return &ast.FilterExpr{Position: pos, Source: source, Pred: pred}
}

func (p *Parser) parseForeachHigherOrder() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "foreach"
	source := p.parseExpression(LOWEST)
	if !p.expect(lexer.WITH) {
		return nil
	}
	fn := p.parseExpression(LOWEST)
	return &ast.ForeachExpr{Position: pos, Source: source, Fn: fn}
}

func (p *Parser) parseReduceHigherOrder() ast.Expression {
	pos := p.cur.Pos
	p.nextToken() // consume "reduce"
	source := p.parseExpression(LOWEST)
	if !p.expect(lexer.WITH) {
		return nil
	}
	fn := p.parseExpression(LOWEST)

	var init ast.Expression
	if p.cur.Type == lexer.INIT {
		p.nextToken()
		if !p.expect(lexer.COLON) {
			return nil
		}
		init = p.parseExpression(LOWEST)
	}
	return &ast.ReduceExpr{Position: pos, Source: source, Fn: fn, Init: init}
}
