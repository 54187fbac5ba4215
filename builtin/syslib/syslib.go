// Package syslib installs Frost's introspection and system built-ins:
// the keys/values/len Map-or-Array accessors (structure-ops.cpp), the
// is_* type predicates and type/to_string conversions
// (type-tests.cpp, type-conversions.cpp), and a uuid() generator — a
// supplemented system-surface feature with no grounding source of its
// own, added to give google/uuid a concrete home.
package syslib

import (
	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/google/uuid"
)

func typeErr(name string, v value.Value) error {
	return frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
}

func isKind(table *symtab.Table, name string, kind value.Kind) {
	builtin.Install(table, name, 1, 1, func(args []value.Value) (value.Value, error) {
		return value.Bool(args[0].Kind() == kind), nil
	})
}

// Install defines every system/introspection binding in table.
func Install(table *symtab.Table) {
	builtin.Install(table, "keys", 1, 1, func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, typeErr("keys", args[0])
		}
		return value.NewArray(append([]value.Value(nil), m.Keys()...)), nil
	})

	builtin.Install(table, "values", 1, 1, func(args []value.Value) (value.Value, error) {
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, typeErr("values", args[0])
		}
		return value.NewArray(append([]value.Value(nil), m.Values()...)), nil
	})

	builtin.Install(table, "len", 1, 1, func(args []value.Value) (value.Value, error) {
		switch t := args[0].(type) {
		case *value.Map:
			return value.Int(t.Len()), nil
		case *value.Array:
			return value.Int(t.Len()), nil
		case value.String:
			return value.Int(len(t)), nil
		default:
			return nil, typeErr("len", args[0])
		}
	})

	builtin.Install(table, "type", 1, 1, func(args []value.Value) (value.Value, error) {
		return value.String(value.TypeName(args[0])), nil
	})

	builtin.Install(table, "to_string", 1, 1, func(args []value.Value) (value.Value, error) {
		return value.String(args[0].ToInternalString(false)), nil
	})

	isKind(table, "is_null", value.KindNull)
	isKind(table, "is_int", value.KindInt)
	isKind(table, "is_float", value.KindFloat)
	isKind(table, "is_bool", value.KindBool)
	isKind(table, "is_string", value.KindString)
	isKind(table, "is_array", value.KindArray)
	isKind(table, "is_map", value.KindMap)
	isKind(table, "is_function", value.KindFunction)

	builtin.Install(table, "is_nonnull", 1, 1, func(args []value.Value) (value.Value, error) {
		return value.Bool(args[0].Kind() != value.KindNull), nil
	})

	builtin.Install(table, "is_numeric", 1, 1, func(args []value.Value) (value.Value, error) {
		k := args[0].Kind()
		return value.Bool(k == value.KindInt || k == value.KindFloat), nil
	})

	builtin.Install(table, "is_primitive", 1, 1, func(args []value.Value) (value.Value, error) {
		return value.Bool(value.IsPrimitive(args[0])), nil
	})

	builtin.Install(table, "is_structured", 1, 1, func(args []value.Value) (value.Value, error) {
		k := args[0].Kind()
		return value.Bool(k == value.KindArray || k == value.KindMap), nil
	})

	builtin.Install(table, "uuid", 0, 0, func(args []value.Value) (value.Value, error) {
		return value.String(uuid.New().String()), nil
	})
}
