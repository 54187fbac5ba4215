package eval

import (
	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

// asCallable evaluates expr and requires it to be a Function, the shared
// first step of every higher-order form's callback argument.
func asCallable(table *symtab.Table, expr ast.Expression, pos frosterr.Position, role string) (value.Callable, error) {
	v, err := Evaluate(table, expr)
	if err != nil {
		return nil, err
	}
	fn, ok := v.(*value.Function)
	if !ok {
		return nil, frosterr.Recoverablef(pos, "Cannot use incompatible type as %s: %s", role, value.TypeName(v))
	}
	return fn.Callable, nil
}

func evalMap(table *symtab.Table, n *ast.MapExpr) (value.Value, error) {
	source, err := Evaluate(table, n.Source)
	if err != nil {
		return nil, err
	}
	fn, err := asCallable(table, n.Fn, n.Position, "map callback")
	if err != nil {
		return nil, err
	}

	switch s := source.(type) {
	case *value.Array:
		elems := s.Elems()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			r, err := fn.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return value.NewArray(out), nil
	case *value.Map:
		keys, vals := s.Keys(), s.Values()
		builder := value.NewMapBuilder()
		for i := range keys {
			r, err := fn.Call([]value.Value{keys[i], vals[i]})
			if err != nil {
				return nil, err
			}
			rm, ok := r.(*value.Map)
			if !ok || rm.Len() != 1 {
				return nil, frosterr.Recoverablef(n.Position, "map callback over a Map must return a single-entry Map")
			}
			key, val := rm.Keys()[0], rm.Values()[0]
			if builder.Has(key) {
				return nil, frosterr.Recoverablef(n.Position, "Key collision in map output: %s", key.ToInternalString(true))
			}
			builder.Set(key, val)
		}
		return builder.Build(), nil
	default:
		return nil, frosterr.Recoverablef(n.Position, "Cannot map over incompatible type: %s", value.TypeName(source))
	}
}

func evalFilter(table *symtab.Table, n *ast.FilterExpr) (value.Value, error) {
	source, err := Evaluate(table, n.Source)
	if err != nil {
		return nil, err
	}
	pred, err := asCallable(table, n.Pred, n.Position, "filter predicate")
	if err != nil {
		return nil, err
	}

	switch s := source.(type) {
	case *value.Array:
		var out []value.Value
		for _, e := range s.Elems() {
			r, err := pred.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				out = append(out, e)
			}
		}
		return value.NewArray(out), nil
	case *value.Map:
		keys, vals := s.Keys(), s.Values()
		builder := value.NewMapBuilder()
		for i := range keys {
			r, err := pred.Call([]value.Value{keys[i], vals[i]})
			if err != nil {
				return nil, err
			}
			if r.Truthy() {
				builder.Set(keys[i], vals[i])
			}
		}
		return builder.Build(), nil
	default:
		return nil, frosterr.Recoverablef(n.Position, "Cannot filter incompatible type: %s", value.TypeName(source))
	}
}

func evalForeach(table *symtab.Table, n *ast.ForeachExpr) (value.Value, error) {
	source, err := Evaluate(table, n.Source)
	if err != nil {
		return nil, err
	}
	fn, err := asCallable(table, n.Fn, n.Position, "foreach callback")
	if err != nil {
		return nil, err
	}

	switch s := source.(type) {
	case *value.Array:
		for _, e := range s.Elems() {
			r, err := fn.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if !r.Truthy() {
				break
			}
		}
		return value.NullValue, nil
	case *value.Map:
		keys, vals := s.Keys(), s.Values()
		for i := range keys {
			r, err := fn.Call([]value.Value{keys[i], vals[i]})
			if err != nil {
				return nil, err
			}
			if !r.Truthy() {
				break
			}
		}
		return value.NullValue, nil
	default:
		return nil, frosterr.Recoverablef(n.Position, "Cannot iterate over incompatible type: %s", value.TypeName(source))
	}
}

func evalReduce(table *symtab.Table, n *ast.ReduceExpr) (value.Value, error) {
	source, err := Evaluate(table, n.Source)
	if err != nil {
		return nil, err
	}
	fn, err := asCallable(table, n.Fn, n.Position, "reduce callback")
	if err != nil {
		return nil, err
	}

	switch s := source.(type) {
	case *value.Array:
		elems := s.Elems()
		if n.Init == nil {
			switch len(elems) {
			case 0:
				return value.NullValue, nil
			case 1:
				return elems[0], nil
			default:
				acc := elems[0]
				for _, e := range elems[1:] {
					acc, err = fn.Call([]value.Value{acc, e})
					if err != nil {
						return nil, err
					}
				}
				return acc, nil
			}
		}
		acc, err := Evaluate(table, n.Init)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			acc, err = fn.Call([]value.Value{acc, e})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	case *value.Map:
		if n.Init == nil {
			return nil, frosterr.Recoverablef(n.Position, "reduce of a Map requires an init value")
		}
		acc, err := Evaluate(table, n.Init)
		if err != nil {
			return nil, err
		}
		keys, vals := s.Keys(), s.Values()
		for i := range keys {
			acc, err = fn.Call([]value.Value{acc, keys[i], vals[i]})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	default:
		return nil, frosterr.Recoverablef(n.Position, "Cannot reduce incompatible type: %s", value.TypeName(source))
	}
}
