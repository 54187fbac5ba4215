package value

import (
	"strings"

	"github.com/frost-lang/frost/frosterr"
)

// asNumeric reports a value's float64 projection if it is Int or Float, for
// the mixed-numeric-promotion rule ("Mixed Int/Float promotes to Float").
func asNumeric(v Value) (f float64, isFloat, ok bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), false, true
	case Float:
		return float64(t), true, true
	default:
		return 0, false, false
	}
}

func bothInt(a, b Value) (x, y int64, ok bool) {
	ai, aok := a.(Int)
	bi, bok := b.(Int)
	if aok && bok {
		return int64(ai), int64(bi), true
	}
	return 0, 0, false
}

// Add implements "+": numeric addition, String/Array concatenation, Map
// right-biased merge.
func Add(pos frosterr.Position, a, b Value) (Value, error) {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x + y), nil
	}
	if af, _, aok := asNumeric(a); aok {
		if bf, _, bok := asNumeric(b); bok {
			return Float(af + bf), nil
		}
	}
	if as, ok := a.(String); ok {
		if bs, ok := b.(String); ok {
			return as + bs, nil
		}
	}
	if aa, ok := a.(*Array); ok {
		if ba, ok := b.(*Array); ok {
			return aa.Concat(ba), nil
		}
	}
	if am, ok := a.(*Map); ok {
		if bm, ok := b.(*Map); ok {
			return am.Merge(bm), nil
		}
	}
	return nil, frosterr.IncompatibleTypes(pos, "add", "+", TypeName(a), TypeName(b))
}

// Subtract implements "-" on (Int, Int), (Float-mixed).
func Subtract(pos frosterr.Position, a, b Value) (Value, error) {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x - y), nil
	}
	if af, _, aok := asNumeric(a); aok {
		if bf, _, bok := asNumeric(b); bok {
			return Float(af - bf), nil
		}
	}
	return nil, frosterr.IncompatibleTypes(pos, "subtract", "-", TypeName(a), TypeName(b))
}

// Multiply implements "*": numeric product, and String/Array repeated by a
// non-negative Int.
func Multiply(pos frosterr.Position, a, b Value) (Value, error) {
	if x, y, ok := bothInt(a, b); ok {
		return Int(x * y), nil
	}
	if af, _, aok := asNumeric(a); aok {
		if bf, _, bok := asNumeric(b); bok {
			return Float(af * bf), nil
		}
	}
	if n, v, ok := repeatOperands(a, b); ok {
		if n < 0 {
			return nil, frosterr.Recoverablef(pos, "Cannot multiply by negative count: %d", n)
		}
		switch t := v.(type) {
		case String:
			return String(strings.Repeat(string(t), int(n))), nil
		case *Array:
			return t.Repeat(n), nil
		}
	}
	return nil, frosterr.IncompatibleTypes(pos, "multiply", "*", TypeName(a), TypeName(b))
}

// repeatOperands recognizes a (String|Array, Int) pair in either order.
func repeatOperands(a, b Value) (int64, Value, bool) {
	if n, ok := a.(Int); ok {
		if isRepeatable(b) {
			return int64(n), b, true
		}
	}
	if n, ok := b.(Int); ok {
		if isRepeatable(a) {
			return int64(n), a, true
		}
	}
	return 0, nil, false
}

func isRepeatable(v Value) bool {
	switch v.(type) {
	case String, *Array:
		return true
	default:
		return false
	}
}

// Divide implements "/": Int/Int division by zero is a recoverable error;
// any other numeric pair promotes to Float.
func Divide(pos frosterr.Position, a, b Value) (Value, error) {
	if x, y, ok := bothInt(a, b); ok {
		if y == 0 {
			return nil, frosterr.Recoverablef(pos, "Cannot divide by zero")
		}
		// Int / Int truncates toward zero, pairing with the Int-only "%"
		// the way divmod does in the language's source material; mixing
		// in any Float operand promotes to true Float division instead.
		return Int(x / y), nil
	}
	af, _, aok := asNumeric(a)
	bf, _, bok := asNumeric(b)
	if aok && bok {
		if bf == 0 {
			return nil, frosterr.Recoverablef(pos, "Cannot divide by zero")
		}
		return Float(af / bf), nil
	}
	return nil, frosterr.IncompatibleTypes(pos, "divide", "/", TypeName(a), TypeName(b))
}

// Modulus implements "%", which is Int-only.
func Modulus(pos frosterr.Position, a, b Value) (Value, error) {
	if x, y, ok := bothInt(a, b); ok {
		if y == 0 {
			return nil, frosterr.Recoverablef(pos, "Cannot take modulus by zero")
		}
		return Int(x % y), nil
	}
	return nil, frosterr.IncompatibleTypes(pos, "take modulus of", "%", TypeName(a), TypeName(b))
}

// Negate implements unary "-" on Int/Float only.
func Negate(pos frosterr.Position, a Value) (Value, error) {
	switch t := a.(type) {
	case Int:
		return -t, nil
	case Float:
		return -t, nil
	default:
		return nil, frosterr.Recoverablef(pos, "Cannot negate incompatible type: %s", TypeName(a))
	}
}

// LogicalNot implements unary "not" via truthiness, on any value.
func LogicalNot(a Value) Value {
	return Bool(!a.Truthy())
}
