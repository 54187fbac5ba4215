package value

import (
	"strings"
)

// mapKey is the lookup-equality projection of a primitive Value: two keys
// compare equal iff they are deeply equal under primitive equality, with
// Int and Float unified so Int(3) and Float(3.0) are the same key (spec
// §4.1 "Design decision — map key comparator").
type mapKey struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// NewMapKey projects a primitive Value into its lookup key, or reports an
// error if v is not a primitive (map keys must be
// Null | Int | Float | Bool | String).
func NewMapKey(v Value) (mapKey, bool) {
	switch t := v.(type) {
	case Null:
		return mapKey{kind: KindNull}, true
	case Bool:
		return mapKey{kind: KindBool, b: bool(t)}, true
	case String:
		return mapKey{kind: KindString, str: string(t)}, true
	case Int:
		return mapKey{kind: KindFloat, num: float64(t)}, true
	case Float:
		return mapKey{kind: KindFloat, num: float64(t)}, true
	default:
		return mapKey{}, false
	}
}

// Map is an ordered mapping from primitive value to value, preserving
// insertion order for round-trip-faithful iteration and printing.
type Map struct {
	keys []Value
	vals []Value
	idx  map[mapKey]int
}

// NewMapBuilder starts an empty, ordered Map under construction.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{idx: make(map[mapKey]int)}
}

// MapBuilder accumulates key/value pairs in insertion order, overwriting the
// value (but not the position) of a key already present — the same
// last-write-wins semantics as the "+" merge operator and MapConstructor.
type MapBuilder struct {
	keys []Value
	vals []Value
	idx  map[mapKey]int
}

// Has reports whether key is already present in the builder, by the same
// primitive lookup comparator as Get/Set. A non-primitive key is never
// present.
func (b *MapBuilder) Has(key Value) bool {
	mk, ok := NewMapKey(key)
	if !ok {
		return false
	}
	_, exists := b.idx[mk]
	return exists
}

// Set inserts or overwrites key with value. Returns false, storing nothing,
// if key is not a primitive value; callers turn that into a frosterr.Error.
func (b *MapBuilder) Set(key, val Value) bool {
	mk, ok := NewMapKey(key)
	if !ok {
		return false
	}
	if i, exists := b.idx[mk]; exists {
		b.vals[i] = val
		return true
	}
	b.idx[mk] = len(b.keys)
	b.keys = append(b.keys, key)
	b.vals = append(b.vals, val)
	return true
}

// Build freezes the builder into an immutable Map.
func (b *MapBuilder) Build() *Map {
	return &Map{keys: b.keys, vals: b.vals, idx: b.idx}
}

func (m *Map) Kind() Kind   { return KindMap }
func (m *Map) Len() int     { return len(m.keys) }
func (m *Map) Truthy() bool { return len(m.keys) != 0 }

// Keys returns the keys in insertion order. Read-only.
func (m *Map) Keys() []Value { return m.keys }

// Values returns the values in insertion order, aligned with Keys(). Read-only.
func (m *Map) Values() []Value { return m.vals }

// Get looks up key by the primitive lookup comparator. Missing key or a
// non-primitive key both report ok == false; spec treats both as "no such
// entry" at the Index call site (never an error there).
func (m *Map) Get(key Value) (Value, bool) {
	mk, ok := NewMapKey(key)
	if !ok {
		return nil, false
	}
	i, ok := m.idx[mk]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

func (m *Map) ToInternalString(bool) string {
	var b strings.Builder
	b.WriteByte('{')
	for i := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.keys[i].ToInternalString(true))
		b.WriteString(": ")
		b.WriteString(m.vals[i].ToInternalString(true))
	}
	b.WriteByte('}')
	return b.String()
}

// Merge implements "+" on (Map, Map): right-map values override on key
// collision, new keys from either side keep their first-seen position.
func (m *Map) Merge(other *Map) *Map {
	b := NewMapBuilder()
	for i := range m.keys {
		b.Set(m.keys[i], m.vals[i])
	}
	for i := range other.keys {
		b.Set(other.keys[i], other.vals[i])
	}
	return b.Build()
}
