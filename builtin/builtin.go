// Package builtin provides the shared native-function wrapper and
// installation helper every built-in library package (mathlib, strlib,
// arraylib, jsonlib, syslib, iolib, httplib) uses to inject its bindings
// into a symbol table, mirroring the way Frost's evaluator calls ordinary
// user-defined closures through value.Callable.
package builtin

import (
	"fmt"

	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

// Func is the Go implementation behind one native binding.
type Func func(args []value.Value) (value.Value, error)

// Native wraps Func as a value.Callable with declared arity {Min, Max}. Max
// of -1 means unbounded.
type Native struct {
	Name     string
	Min, Max int
	Fn       Func
}

func (n *Native) Call(args []value.Value) (value.Value, error) {
	if len(args) < n.Min || (n.Max >= 0 && len(args) > n.Max) {
		return nil, frosterr.Recoverablef(frosterr.Position{}, "%s", arityMessage(n.Name, n.Min, n.Max, len(args)))
	}
	return n.Fn(args)
}

func (n *Native) DebugDump() string { return "<" + n.Name + ">" }

func arityMessage(name string, min, max, got int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("Function %s called with %d arguments, expected at least %d", name, got, min)
	case min == max:
		return fmt.Sprintf("Function %s called with %d arguments, expected %d", name, got, min)
	default:
		return fmt.Sprintf("Function %s called with %d arguments, expected between %d and %d", name, got, min, max)
	}
}

// Install defines name in table as a Native-backed Function. Panics if name
// is already defined, which would indicate two libraries colliding on a
// reserved name — a programming error, not a user-facing one.
func Install(table *symtab.Table, name string, min, max int, fn Func) {
	nv := &Native{Name: name, Min: min, Max: max, Fn: fn}
	if err := table.Define(name, value.NewFunction(nv)); err != nil {
		panic("builtin: duplicate binding " + name)
	}
}
