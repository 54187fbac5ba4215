// Package eval implements Frost's tree-walking evaluator: a per-node
// dispatch over the AST that produces values for expressions and, for
// statements, an optional contribution to the program's export record.
package eval

import (
	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/closure"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

// Evaluate computes expr's value against table, the current frame.
func Evaluate(table *symtab.Table, expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.NameLookup:
		v, err := table.Lookup(n.Name)
		if err != nil {
			return nil, frosterr.Recoverablef(n.Position, "No definition found for symbol %s", n.Name)
		}
		return v, nil
	case *ast.Binop:
		return evalBinop(table, n)
	case *ast.Unop:
		return evalUnop(table, n)
	case *ast.Index:
		return evalIndex(table, n)
	case *ast.FunctionCall:
		return evalCall(table, n)
	case *ast.If:
		return evalIf(table, n)
	case *ast.ArrayConstructor:
		return evalArrayConstructor(table, n)
	case *ast.MapConstructor:
		return evalMapConstructor(table, n)
	case *ast.Lambda:
		return evalLambda(table, n)
	case *ast.MapExpr:
		return evalMap(table, n)
	case *ast.FilterExpr:
		return evalFilter(table, n)
	case *ast.ForeachExpr:
		return evalForeach(table, n)
	case *ast.ReduceExpr:
		return evalReduce(table, n)
	case *ast.FormatString:
		return evalFormatString(table, n)
	default:
		return nil, frosterr.Internalf("unhandled expression type %T", expr)
	}
}

func evalBinop(table *symtab.Table, b *ast.Binop) (value.Value, error) {
	if b.Op == ast.OpAnd || b.Op == ast.OpOr {
		left, err := Evaluate(table, b.Lhs)
		if err != nil {
			return nil, err
		}
		if b.Op == ast.OpAnd {
			if !left.Truthy() {
				return left, nil
			}
			return Evaluate(table, b.Rhs)
		}
		if left.Truthy() {
			return left, nil
		}
		return Evaluate(table, b.Rhs)
	}

	left, err := Evaluate(table, b.Lhs)
	if err != nil {
		return nil, err
	}
	right, err := Evaluate(table, b.Rhs)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case ast.OpAdd:
		return value.Add(b.Position, left, right)
	case ast.OpSub:
		return value.Subtract(b.Position, left, right)
	case ast.OpMul:
		return value.Multiply(b.Position, left, right)
	case ast.OpDiv:
		return value.Divide(b.Position, left, right)
	case ast.OpMod:
		return value.Modulus(b.Position, left, right)
	case ast.OpEq:
		return value.Equal(left, right), nil
	case ast.OpNeq:
		return value.NotEqual(left, right), nil
	case ast.OpLt:
		return value.LessThan(b.Position, left, right)
	case ast.OpLte:
		return value.LessThanOrEqual(b.Position, left, right)
	case ast.OpGt:
		return value.GreaterThan(b.Position, left, right)
	case ast.OpGte:
		return value.GreaterThanOrEqual(b.Position, left, right)
	default:
		return nil, frosterr.Internalf("unhandled binary operator %v", b.Op)
	}
}

func evalUnop(table *symtab.Table, u *ast.Unop) (value.Value, error) {
	operand, err := Evaluate(table, u.Operand)
	if err != nil {
		return nil, err
	}
	if u.Op == ast.OpNot {
		return value.LogicalNot(operand), nil
	}
	return value.Negate(u.Position, operand)
}

func evalIndex(table *symtab.Table, idx *ast.Index) (value.Value, error) {
	base, err := Evaluate(table, idx.Base)
	if err != nil {
		return nil, err
	}
	index, err := Evaluate(table, idx.Index)
	if err != nil {
		return nil, err
	}

	switch b := base.(type) {
	case *value.Array:
		i, ok := index.(value.Int)
		if !ok {
			return nil, frosterr.Recoverablef(idx.Position, "Cannot index Array with incompatible type: %s", value.TypeName(index))
		}
		return b.Index(int64(i)), nil
	case *value.Map:
		if v, ok := b.Get(index); ok {
			return v, nil
		}
		return value.NullValue, nil
	default:
		return nil, frosterr.Recoverablef(idx.Position, "Cannot index incompatible type: %s", value.TypeName(base))
	}
}

func evalCall(table *symtab.Table, c *ast.FunctionCall) (value.Value, error) {
	calleeVal, err := Evaluate(table, c.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*value.Function)
	if !ok {
		return nil, frosterr.Recoverablef(c.Position, "Cannot call incompatible type: %s", value.TypeName(calleeVal))
	}

	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := Evaluate(table, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fn.Callable.Call(args)
}

func evalIf(table *symtab.Table, n *ast.If) (value.Value, error) {
	cond, err := Evaluate(table, n.Cond)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return Evaluate(table, n.Consequent)
	}
	if n.Alternate == nil {
		return value.NullValue, nil
	}
	return Evaluate(table, n.Alternate)
}

func evalArrayConstructor(table *symtab.Table, n *ast.ArrayConstructor) (value.Value, error) {
	elems := make([]value.Value, len(n.Elems))
	for i, e := range n.Elems {
		v, err := Evaluate(table, e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems), nil
}

func evalMapConstructor(table *symtab.Table, n *ast.MapConstructor) (value.Value, error) {
	builder := value.NewMapBuilder()
	for _, pair := range n.Pairs {
		k, err := Evaluate(table, pair.Key)
		if err != nil {
			return nil, err
		}
		v, err := Evaluate(table, pair.Value)
		if err != nil {
			return nil, err
		}
		if !builder.Set(k, v) {
			return nil, frosterr.Recoverablef(n.Position, "Cannot use incompatible type as map key: %s", value.TypeName(k))
		}
	}
	return builder.Build(), nil
}

func evalLambda(table *symtab.Table, n *ast.Lambda) (value.Value, error) {
	c, err := closure.New(table, n.Params, n.Body, n.Position, ExecuteBody)
	if err != nil {
		return nil, err
	}
	return value.NewFunction(c), nil
}

func evalFormatString(table *symtab.Table, n *ast.FormatString) (value.Value, error) {
	var out string
	for _, seg := range n.Segments {
		if !seg.IsPlaceholder {
			out += seg.Literal
			continue
		}
		v, err := table.Lookup(seg.Placeholder)
		if err != nil {
			return nil, frosterr.Recoverablef(n.Position, "No definition found for symbol %s", seg.Placeholder)
		}
		out += v.ToInternalString(false)
	}
	return value.String(out), nil
}

// ExecuteBody runs a closure's body: statements execute in order against
// frame, yielding the value of the last statement (Null if the body is
// empty or its last statement is not an expression). Export contributions
// are never collected here — export is a program-top-level-only concern.
func ExecuteBody(frame *symtab.Table, body []ast.Statement) (value.Value, error) {
	return executeStatements(frame, body, nil)
}

func executeStatements(table *symtab.Table, stmts []ast.Statement, exports *value.MapBuilder) (value.Value, error) {
	last := value.NullValue
	for _, stmt := range stmts {
		v, err := Execute(table, stmt, exports)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// Execute runs one statement against table. exports receives a contribution
// when stmt is (or contains) an export binding; pass nil when executing a
// closure body, where export has no meaning.
func Execute(table *symtab.Table, stmt ast.Statement, exports *value.MapBuilder) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExprStatement:
		return Evaluate(table, s.Expr)
	case *ast.Define:
		return executeDefine(table, s, exports)
	case *ast.ArrayDestructure:
		return executeArrayDestructure(table, s, exports)
	case *ast.MapDestructure:
		return executeMapDestructure(table, s, exports)
	default:
		return nil, frosterr.Internalf("unhandled statement type %T", stmt)
	}
}

func executeDefine(table *symtab.Table, d *ast.Define, exports *value.MapBuilder) (value.Value, error) {
	v, err := Evaluate(table, d.Expr)
	if err != nil {
		return nil, err
	}
	if err := table.Define(d.Name, v); err != nil {
		return nil, frosterr.Recoverablef(d.Position, "Name %s already defined in this scope", d.Name)
	}
	if d.Export && exports != nil {
		exports.Set(value.String(d.Name), v)
	}
	return value.NullValue, nil
}

func executeArrayDestructure(table *symtab.Table, a *ast.ArrayDestructure, exports *value.MapBuilder) (value.Value, error) {
	rhs, err := Evaluate(table, a.Expr)
	if err != nil {
		return nil, err
	}
	arr, ok := rhs.(*value.Array)
	if !ok {
		return nil, frosterr.Recoverablef(a.Position, "Cannot destructure incompatible type as Array: %s", value.TypeName(rhs))
	}
	elems := arr.Elems()

	if a.Rest == nil {
		if len(elems) != len(a.Names) {
			return nil, frosterr.Recoverablef(a.Position, "Array destructure length mismatch: expected %d, got %d", len(a.Names), len(elems))
		}
	} else if len(elems) < len(a.Names) {
		return nil, frosterr.Recoverablef(a.Position, "Array destructure length mismatch: expected at least %d, got %d", len(a.Names), len(elems))
	}

	for i, name := range a.Names {
		if name == "_" {
			continue
		}
		v := elems[i]
		if err := table.Define(name, v); err != nil {
			return nil, frosterr.Recoverablef(a.Position, "Name %s already defined in this scope", name)
		}
		if a.Export && exports != nil {
			exports.Set(value.String(name), v)
		}
	}

	if a.Rest != nil {
		restElems := append([]value.Value{}, elems[len(a.Names):]...)
		restVal := value.NewArray(restElems)
		if *a.Rest != "_" {
			if err := table.Define(*a.Rest, restVal); err != nil {
				return nil, frosterr.Recoverablef(a.Position, "Name %s already defined in this scope", *a.Rest)
			}
			if a.Export && exports != nil {
				exports.Set(value.String(*a.Rest), restVal)
			}
		}
	}
	return value.NullValue, nil
}

func executeMapDestructure(table *symtab.Table, m *ast.MapDestructure, exports *value.MapBuilder) (value.Value, error) {
	rhs, err := Evaluate(table, m.Expr)
	if err != nil {
		return nil, err
	}
	mp, ok := rhs.(*value.Map)
	if !ok {
		return nil, frosterr.Recoverablef(m.Position, "Cannot destructure incompatible type as Map: %s", value.TypeName(rhs))
	}

	for _, el := range m.Elements {
		keyVal, err := Evaluate(table, el.Key)
		if err != nil {
			return nil, err
		}
		v, found := mp.Get(keyVal)
		if !found {
			v = value.NullValue
		}
		if el.Binding == "_" {
			continue
		}
		if err := table.Define(el.Binding, v); err != nil {
			return nil, frosterr.Recoverablef(m.Position, "Name %s already defined in this scope", el.Binding)
		}
		if m.Export && exports != nil {
			exports.Set(value.String(el.Binding), v)
		}
	}
	return value.NullValue, nil
}

// Result is the outcome of running a full program: its final value (from
// the last successfully executed statement), its accumulated export
// record, and any errors encountered. A Recoverable error aborts only the
// statement that raised it; execution continues with the next one.
type Result struct {
	Value   value.Value
	Exports *value.Map
	Errors  []error
}

// RunProgram executes every top-level statement of prog in a fresh root
// frame, collecting export contributions and continuing past Recoverable
// errors so later statements still run.
func RunProgram(prog *ast.Program) Result {
	return RunProgramIn(symtab.New(), prog)
}

// RunProgramIn executes every top-level statement of prog using root as the
// program's root frame, collecting export contributions and continuing past
// Recoverable errors so later statements still run. Callers that need
// built-in functions available to the program (the command-line driver,
// embedders) install them into root before calling this.
func RunProgramIn(root *symtab.Table, prog *ast.Program) Result {
	builder := value.NewMapBuilder()
	result := Result{Value: value.NullValue}

	for _, stmt := range prog.Statements {
		v, err := Execute(root, stmt, builder)
		if err != nil {
			result.Errors = append(result.Errors, err)
			if frosterr.Is(err, frosterr.Internal) || frosterr.Is(err, frosterr.Unrecoverable) {
				break
			}
			continue
		}
		result.Value = v
	}

	result.Exports = builder.Build()
	return result
}
