// Package arraylib installs Frost's range/sequence built-ins: stride,
// take, drop, slide, and chunk are grounded directly on
// functions/builtins/ranges.cpp's std::ranges adaptor pipeline; the
// remaining sequence operations (zip, xprod, scan, fold, group_by, ...)
// generalize the same array-in/array-out shape to operations the
// reference implementation names but does not itself define a file for.
package arraylib

import (
	"sort"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

func typeErr(name string, v value.Value) error {
	return frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
}

func asArray(name string, v value.Value) (*value.Array, error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, typeErr(name, v)
	}
	return a, nil
}

func asInt(name string, v value.Value) (int64, error) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, typeErr(name, v)
	}
	return int64(i), nil
}

func asCallable(name string, v value.Value) (value.Callable, error) {
	f, ok := v.(*value.Function)
	if !ok {
		return nil, typeErr(name, v)
	}
	return f.Callable, nil
}

// Install defines every array/range binding in table.
func Install(table *symtab.Table) {
	builtin.Install(table, "range", 1, 3, func(args []value.Value) (value.Value, error) {
		return doRange(args)
	})

	builtin.Install(table, "stride", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("stride", args[0])
		if err != nil {
			return nil, err
		}
		n, err := asInt("stride", args[1])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function stride requires its numeric argument to be >0")
		}
		elems := arr.Elems()
		out := make([]value.Value, 0, (len(elems)+int(n)-1)/int(n))
		for i := 0; i < len(elems); i += int(n) {
			out = append(out, elems[i])
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "take", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("take", args[0])
		if err != nil {
			return nil, err
		}
		n, err := asInt("take", args[1])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function take requires its numeric argument to be >=0")
		}
		elems := arr.Elems()
		if n > int64(len(elems)) {
			n = int64(len(elems))
		}
		out := make([]value.Value, n)
		copy(out, elems[:n])
		return value.NewArray(out), nil
	})

	builtin.Install(table, "drop", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("drop", args[0])
		if err != nil {
			return nil, err
		}
		n, err := asInt("drop", args[1])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function drop requires its numeric argument to be >=0")
		}
		elems := arr.Elems()
		if n > int64(len(elems)) {
			n = int64(len(elems))
		}
		out := make([]value.Value, len(elems)-int(n))
		copy(out, elems[n:])
		return value.NewArray(out), nil
	})

	builtin.Install(table, "slide", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("slide", args[0])
		if err != nil {
			return nil, err
		}
		n, err := asInt("slide", args[1])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function slide requires its numeric argument to be >0")
		}
		elems := arr.Elems()
		var out []value.Value
		for i := 0; i+int(n) <= len(elems); i++ {
			window := make([]value.Value, n)
			copy(window, elems[i:i+int(n)])
			out = append(out, value.NewArray(window))
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "chunk", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("chunk", args[0])
		if err != nil {
			return nil, err
		}
		n, err := asInt("chunk", args[1])
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function chunk requires its numeric argument to be >0")
		}
		elems := arr.Elems()
		var out []value.Value
		for i := 0; i < len(elems); i += int(n) {
			end := i + int(n)
			if end > len(elems) {
				end = len(elems)
			}
			piece := make([]value.Value, end-i)
			copy(piece, elems[i:end])
			out = append(out, value.NewArray(piece))
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "zip", 2, 2, func(args []value.Value) (value.Value, error) {
		a, err := asArray("zip", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asArray("zip", args[1])
		if err != nil {
			return nil, err
		}
		n := len(a.Elems())
		if len(b.Elems()) < n {
			n = len(b.Elems())
		}
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			out[i] = value.NewArray([]value.Value{a.Elems()[i], b.Elems()[i]})
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "xprod", 2, 2, func(args []value.Value) (value.Value, error) {
		a, err := asArray("xprod", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asArray("xprod", args[1])
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, 0, len(a.Elems())*len(b.Elems()))
		for _, x := range a.Elems() {
			for _, y := range b.Elems() {
				out = append(out, value.NewArray([]value.Value{x, y}))
			}
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "take_while", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("take_while", args[0])
		if err != nil {
			return nil, err
		}
		pred, err := asCallable("take_while", args[1])
		if err != nil {
			return nil, err
		}
		var out []value.Value
		for _, e := range arr.Elems() {
			v, err := pred.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if !v.Truthy() {
				break
			}
			out = append(out, e)
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "drop_while", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("drop_while", args[0])
		if err != nil {
			return nil, err
		}
		pred, err := asCallable("drop_while", args[1])
		if err != nil {
			return nil, err
		}
		elems := arr.Elems()
		i := 0
		for ; i < len(elems); i++ {
			v, err := pred.Call([]value.Value{elems[i]})
			if err != nil {
				return nil, err
			}
			if !v.Truthy() {
				break
			}
		}
		out := make([]value.Value, len(elems)-i)
		copy(out, elems[i:])
		return value.NewArray(out), nil
	})

	builtin.Install(table, "chunk_by", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("chunk_by", args[0])
		if err != nil {
			return nil, err
		}
		pred, err := asCallable("chunk_by", args[1])
		if err != nil {
			return nil, err
		}
		elems := arr.Elems()
		var out []value.Value
		var cur []value.Value
		for i, e := range elems {
			if i == 0 {
				cur = []value.Value{e}
				continue
			}
			v, err := pred.Call([]value.Value{elems[i-1], e})
			if err != nil {
				return nil, err
			}
			if v.Truthy() {
				cur = append(cur, e)
			} else {
				out = append(out, value.NewArray(cur))
				cur = []value.Value{e}
			}
		}
		if cur != nil {
			out = append(out, value.NewArray(cur))
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "group_by", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("group_by", args[0])
		if err != nil {
			return nil, err
		}
		keyfn, err := asCallable("group_by", args[1])
		if err != nil {
			return nil, err
		}
		type bucket struct {
			key   value.Value
			elems []value.Value
		}
		var buckets []*bucket
		for _, e := range arr.Elems() {
			k, err := keyfn.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			var found *bucket
			for _, b := range buckets {
				if value.DeepEqual(b.key, k) {
					found = b
					break
				}
			}
			if found == nil {
				buckets = append(buckets, &bucket{key: k, elems: []value.Value{e}})
			} else {
				found.elems = append(found.elems, e)
			}
		}
		groups := value.NewMapBuilder()
		for _, b := range buckets {
			groups.Set(b.key, value.NewArray(b.elems))
		}
		return groups.Build(), nil
	})

	builtin.Install(table, "count_by", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("count_by", args[0])
		if err != nil {
			return nil, err
		}
		keyfn, err := asCallable("count_by", args[1])
		if err != nil {
			return nil, err
		}
		type bucket struct {
			key   value.Value
			count int64
		}
		var buckets []*bucket
		for _, e := range arr.Elems() {
			k, err := keyfn.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			var found *bucket
			for _, b := range buckets {
				if value.DeepEqual(b.key, k) {
					found = b
					break
				}
			}
			if found == nil {
				buckets = append(buckets, &bucket{key: k, count: 1})
			} else {
				found.count++
			}
		}
		counts := value.NewMapBuilder()
		for _, b := range buckets {
			counts.Set(b.key, value.Int(b.count))
		}
		return counts.Build(), nil
	})

	builtin.Install(table, "scan", 3, 3, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("scan", args[0])
		if err != nil {
			return nil, err
		}
		fn, err := asCallable("scan", args[1])
		if err != nil {
			return nil, err
		}
		acc := args[2]
		out := []value.Value{acc}
		for _, e := range arr.Elems() {
			v, err := fn.Call([]value.Value{acc, e})
			if err != nil {
				return nil, err
			}
			acc = v
			out = append(out, acc)
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "fold", 3, 3, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("fold", args[0])
		if err != nil {
			return nil, err
		}
		fn, err := asCallable("fold", args[1])
		if err != nil {
			return nil, err
		}
		acc := args[2]
		for _, e := range arr.Elems() {
			v, err := fn.Call([]value.Value{acc, e})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	})

	builtin.Install(table, "transform", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("transform", args[0])
		if err != nil {
			return nil, err
		}
		fn, err := asCallable("transform", args[1])
		if err != nil {
			return nil, err
		}
		elems := arr.Elems()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			v, err := fn.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "select", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("select", args[0])
		if err != nil {
			return nil, err
		}
		pred, err := asCallable("select", args[1])
		if err != nil {
			return nil, err
		}
		var out []value.Value
		for _, e := range arr.Elems() {
			v, err := pred.Call([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if v.Truthy() {
				out = append(out, e)
			}
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "reverse", 1, 1, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("reverse", args[0])
		if err != nil {
			return nil, err
		}
		elems := arr.Elems()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}
		return value.NewArray(out), nil
	})

	builtin.Install(table, "sorted", 1, 2, func(args []value.Value) (value.Value, error) {
		arr, err := asArray("sorted", args[0])
		if err != nil {
			return nil, err
		}
		elems := append([]value.Value(nil), arr.Elems()...)
		if len(args) == 2 {
			cmp, err := asCallable("sorted", args[1])
			if err != nil {
				return nil, err
			}
			var sortErr error
			sort.SliceStable(elems, func(i, j int) bool {
				if sortErr != nil {
					return false
				}
				v, err := cmp.Call([]value.Value{elems[i], elems[j]})
				if err != nil {
					sortErr = err
					return false
				}
				n, ok := v.(value.Int)
				if !ok {
					sortErr = typeErr("sorted", v)
					return false
				}
				return n < 0
			})
			if sortErr != nil {
				return nil, sortErr
			}
			return value.NewArray(elems), nil
		}
		var sortErr error
		sort.SliceStable(elems, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			c, err := value.Compare(frosterr.Position{}, elems[i], elems[j])
			if err != nil {
				sortErr = err
				return false
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return value.NewArray(elems), nil
	})

	builtin.Install(table, "any", 2, 2, func(args []value.Value) (value.Value, error) {
		return quantify("any", args, func(matched, total int) bool { return matched > 0 })
	})
	builtin.Install(table, "all", 2, 2, func(args []value.Value) (value.Value, error) {
		return quantify("all", args, func(matched, total int) bool { return matched == total })
	})
	builtin.Install(table, "none", 2, 2, func(args []value.Value) (value.Value, error) {
		return quantify("none", args, func(matched, total int) bool { return matched == 0 })
	})

	builtin.Install(table, "pack_call", 2, 2, func(args []value.Value) (value.Value, error) {
		fn, err := asCallable("pack_call", args[0])
		if err != nil {
			return nil, err
		}
		packed, err := asArray("pack_call", args[1])
		if err != nil {
			return nil, err
		}
		return fn.Call(packed.Elems())
	})

	builtin.Install(table, "and_then", 2, 2, func(args []value.Value) (value.Value, error) {
		if _, isNull := args[0].(value.Null); isNull {
			return value.NullValue, nil
		}
		fn, err := asCallable("and_then", args[1])
		if err != nil {
			return nil, err
		}
		return fn.Call([]value.Value{args[0]})
	})
}

func quantify(name string, args []value.Value, decide func(matched, total int) bool) (value.Value, error) {
	arr, err := asArray(name, args[0])
	if err != nil {
		return nil, err
	}
	pred, err := asCallable(name, args[1])
	if err != nil {
		return nil, err
	}
	matched := 0
	for _, e := range arr.Elems() {
		v, err := pred.Call([]value.Value{e})
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			matched++
		}
	}
	return value.Bool(decide(matched, len(arr.Elems()))), nil
}

func doRange(args []value.Value) (value.Value, error) {
	var start, end, step int64
	switch len(args) {
	case 1:
		n, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		start, end, step = 0, n, 1
	case 2:
		s, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		e, err := asInt("range", args[1])
		if err != nil {
			return nil, err
		}
		start, end, step = s, e, 1
	case 3:
		s, err := asInt("range", args[0])
		if err != nil {
			return nil, err
		}
		e, err := asInt("range", args[1])
		if err != nil {
			return nil, err
		}
		st, err := asInt("range", args[2])
		if err != nil {
			return nil, err
		}
		if st == 0 {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function range requires a nonzero step")
		}
		start, end, step = s, e, st
	}
	var out []value.Value
	if step > 0 {
		for v := start; v < end; v += step {
			out = append(out, value.Int(v))
		}
	} else {
		for v := start; v > end; v += step {
			out = append(out, value.Int(v))
		}
	}
	return value.NewArray(out), nil
}
