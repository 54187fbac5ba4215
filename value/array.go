package value

import "strings"

// Array is an ordered, immutable sequence of values.
type Array struct {
	elems []Value
}

// NewArray builds an Array sharing the given slice; callers must not mutate
// elems afterward, matching the immutable-after-construction invariant.
func NewArray(elems []Value) *Array {
	return &Array{elems: elems}
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Len() int { return len(a.elems) }

// Elems returns the backing slice. Callers must treat it as read-only.
func (a *Array) Elems() []Value { return a.elems }

func (a *Array) Truthy() bool { return len(a.elems) != 0 }

func (a *Array) ToInternalString(bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.ToInternalString(true))
	}
	b.WriteByte(']')
	return b.String()
}

// Index implements python-style signed indexing: -n <= i < n
// returns the element, out of range returns Null, never an error.
func (a *Array) Index(i int64) Value {
	n := int64(len(a.elems))
	if n == 0 {
		return NullValue
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return NullValue
	}
	return a.elems[i]
}

// Concat implements Array + Array concatenation.
func (a *Array) Concat(other *Array) *Array {
	out := make([]Value, 0, len(a.elems)+len(other.elems))
	out = append(out, a.elems...)
	out = append(out, other.elems...)
	return NewArray(out)
}

// Repeat implements Array * n (n >= 0) repeated concatenation.
func (a *Array) Repeat(n int64) *Array {
	out := make([]Value, 0, int64(len(a.elems))*n)
	for ; n > 0; n-- {
		out = append(out, a.elems...)
	}
	return NewArray(out)
}
