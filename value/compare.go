package value

import "github.com/frost-lang/frost/frosterr"

// DeepEqual implements structural value equality: primitives and containers
// compare structurally, Function compares by Callable identity.
func DeepEqual(a, b Value) bool {
	// Int/Float cross-kind equality is still numeric, per the testable
	// property that map lookup treats Int(3) == Float(3.0); the same rule
	// applies to general value equality.
	if af, _, aok := asNumeric(a); aok {
		if bf, _, bok := asNumeric(b); bok {
			return af == bf
		}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Float:
		return av == b.(Float)
	case String:
		return av == b.(String)
	case *Array:
		bv := b.(*Array)
		if av.Len() != bv.Len() {
			return false
		}
		for i := range av.elems {
			if !DeepEqual(av.elems[i], bv.elems[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv := b.(*Map)
		if av.Len() != bv.Len() {
			return false
		}
		for i, k := range av.keys {
			bval, ok := bv.Get(k)
			if !ok || !DeepEqual(av.vals[i], bval) {
				return false
			}
		}
		return true
	case *Function:
		bv := b.(*Function)
		return av.SameCallable(bv)
	default:
		return false
	}
}

// Equal implements "==": total across all types, unequal tags compare
// unequal except for the numeric Int/Float cross-kind case.
func Equal(a, b Value) Value {
	return Bool(DeepEqual(a, b))
}

// NotEqual implements "!=" as the negation of Equal.
func NotEqual(a, b Value) Value {
	return Bool(!DeepEqual(a, b))
}

// Compare orders a and b, returning -1/0/1. Ordering is only defined for
// Int/Float (mixed, numeric) and String (lexicographic by byte); anything
// else fails with "Cannot compare incompatible types".
func Compare(pos frosterr.Position, a, b Value) (int, error) {
	if af, _, aok := asNumeric(a); aok {
		if bf, _, bok := asNumeric(b); bok {
			switch {
			case af < bf:
				return -1, nil
			case af > bf:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			switch {
			case as < bs:
				return -1, nil
			case as > bs:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	return 0, frosterr.Recoverablef(pos, "Cannot compare incompatible types: %s and %s", TypeName(a), TypeName(b))
}

func LessThan(pos frosterr.Position, a, b Value) (Value, error) {
	c, err := Compare(pos, a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c < 0), nil
}

func LessThanOrEqual(pos frosterr.Position, a, b Value) (Value, error) {
	c, err := Compare(pos, a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c <= 0), nil
}

func GreaterThan(pos frosterr.Position, a, b Value) (Value, error) {
	c, err := Compare(pos, a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c > 0), nil
}

func GreaterThanOrEqual(pos frosterr.Position, a, b Value) (Value, error) {
	c, err := Compare(pos, a, b)
	if err != nil {
		return nil, err
	}
	return Bool(c >= 0), nil
}
