package closure

import (
	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

// BodyExecutor runs a closure's body statements in frame, returning the
// value of the last expression statement (or Null). Injected by the eval
// package at construction time to break the closure<->evaluator import
// cycle.
type BodyExecutor func(frame *symtab.Table, body []ast.Statement) (value.Value, error)

// Closure is a first-class function value: captured free-variable values
// plus an unevaluated body, implementing value.Callable.
type Closure struct {
	Params   []string
	Body     []ast.Statement
	Captures *symtab.Table
	pos      frosterr.Position
	exec     BodyExecutor
}

// New performs free-variable analysis against body and captures each free
// name's current value from table (looked up through its fallback chain).
// A missing capture or a malformed parameter list is an unrecoverable error
// at construction time.
func New(table *symtab.Table, params []string, body []ast.Statement, pos frosterr.Position, exec BodyExecutor) (*Closure, error) {
	free, err := Analyse(params, body)
	if err != nil {
		return nil, frosterr.Newf(frosterr.Unrecoverable, pos, "%s", err.Error())
	}

	captures := symtab.New()
	for _, name := range free {
		v, err := table.Lookup(name)
		if err != nil {
			return nil, frosterr.Newf(frosterr.Unrecoverable, pos, "No definition found for captured symbol %s", name)
		}
		// captures is a fresh, fallback-free table: Define cannot fail here.
		_ = captures.Define(name, v)
	}

	return &Closure{Params: params, Body: body, Captures: captures, pos: pos, exec: exec}, nil
}

// Call builds a fresh frame whose fallback is the capture table, binds
// parameters (missing -> Null, excess args -> error), and executes the body.
func (c *Closure) Call(args []value.Value) (value.Value, error) {
	if len(args) > len(c.Params) {
		return nil, frosterr.Recoverablef(c.pos, "Function called with %d arguments, expected at most %d", len(args), len(c.Params))
	}

	frame := symtab.NewWithFallback(c.Captures)
	for i, p := range c.Params {
		v := value.NullValue
		if i < len(args) {
			v = args[i]
		}
		_ = frame.Define(p, v)
	}

	return c.exec(frame, c.Body)
}

// DebugDump implements value.Callable.
func (c *Closure) DebugDump() string {
	return "<closure>"
}
