// Package mathlib installs Frost's math built-ins: the unary/binary
// standard-library float functions plus abs, round, hypot, and mod.
package mathlib

import (
	"math"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

func asFloat(v value.Value) (float64, bool) {
	switch t := v.(type) {
	case value.Int:
		return float64(t), true
	case value.Float:
		return float64(t), true
	default:
		return 0, false
	}
}

// unary installs a Float -> Float function built directly on a math.X fn.
func unary(table *symtab.Table, name string, fn func(float64) float64) {
	builtin.Install(table, name, 1, 1, func(args []value.Value) (value.Value, error) {
		f, ok := asFloat(args[0])
		if !ok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(args[0]))
		}
		return value.Float(fn(f)), nil
	})
}

// binary installs a (Float, Float) -> Float function.
func binary(table *symtab.Table, name string, fn func(float64, float64) float64) {
	builtin.Install(table, name, 2, 2, func(args []value.Value) (value.Value, error) {
		a, ok := asFloat(args[0])
		if !ok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(args[0]))
		}
		b, ok := asFloat(args[1])
		if !ok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(args[1]))
		}
		return value.Float(fn(a, b)), nil
	})
}

// Install defines every math binding in table.
func Install(table *symtab.Table) {
	unary(table, "sqrt", math.Sqrt)
	unary(table, "sin", math.Sin)
	unary(table, "cos", math.Cos)
	unary(table, "tan", math.Tan)
	unary(table, "asin", math.Asin)
	unary(table, "acos", math.Acos)
	unary(table, "atan", math.Atan)
	unary(table, "exp", math.Exp)
	unary(table, "log", math.Log)
	unary(table, "log2", math.Log2)
	unary(table, "log10", math.Log10)
	unary(table, "ceil", math.Ceil)
	unary(table, "floor", math.Floor)
	unary(table, "trunc", math.Trunc)

	binary(table, "pow", math.Pow)
	binary(table, "hypot", math.Hypot)
	binary(table, "atan2", math.Atan2)

	builtin.Install(table, "abs", 1, 1, func(args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case value.Int:
			if t < 0 {
				return -t, nil
			}
			return t, nil
		case value.Float:
			return value.Float(math.Abs(float64(t))), nil
		default:
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function abs called with incompatible type: %s", value.TypeName(args[0]))
		}
	})

	builtin.Install(table, "round", 1, 1, func(args []value.Value) (value.Value, error) {
		f, ok := asFloat(args[0])
		if !ok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function round called with incompatible type: %s", value.TypeName(args[0]))
		}
		return value.Int(int64(math.Round(f))), nil
	})

	builtin.Install(table, "mod", 2, 2, func(args []value.Value) (value.Value, error) {
		a, aok := args[0].(value.Int)
		b, bok := args[1].(value.Int)
		if !aok || !bok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function mod called with incompatible types: %s, %s", value.TypeName(args[0]), value.TypeName(args[1]))
		}
		if b == 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Cannot take modulus by zero")
		}
		return a % b, nil
	})
}
