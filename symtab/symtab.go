// Package symtab implements Frost's symbol table: a name-to-value mapping
// with an optional read-only fallback chain. Unlike a table that silently
// overwrites on redefinition, Define here reports redefinition within the
// same frame as an error.
package symtab

import (
	"errors"
	"fmt"

	"github.com/frost-lang/frost/value"
)

// ErrRedefined is wrapped into a name-specific error by Table.Define when a
// name already exists in the current frame.
var ErrRedefined = errors.New("redefinition in current scope")

// ErrUndefined is wrapped into a name-specific error by Table.Lookup when no
// frame in the fallback chain defines the name.
var ErrUndefined = errors.New("no definition found")

// Table is one frame of the symbol table: a local store plus an optional
// read-only fallback table searched on miss.
type Table struct {
	store    map[string]value.Value
	fallback *Table
}

// New creates a root-level table with no fallback.
func New() *Table {
	return &Table{store: make(map[string]value.Value)}
}

// NewWithFallback creates a table that defers to fallback on lookup miss.
// A new frame is created this way for the program root, each closure
// invocation, and each block the evaluator treats as a new scope.
func NewWithFallback(fallback *Table) *Table {
	return &Table{store: make(map[string]value.Value), fallback: fallback}
}

// Define binds name to v in this frame. Redefining a name already present in
// this frame (not a fallback frame, which may be freely shadowed) is an
// error: a duplicate definition in the same frame is never allowed.
func (t *Table) Define(name string, v value.Value) error {
	if _, exists := t.store[name]; exists {
		return fmt.Errorf("%w: %s", ErrRedefined, name)
	}
	t.store[name] = v
	return nil
}

// Lookup searches this frame, then the fallback chain. Failure reports
// ErrUndefined naming the identifier.
func (t *Table) Lookup(name string) (value.Value, error) {
	if v, ok := t.store[name]; ok {
		return v, nil
	}
	if t.fallback != nil {
		return t.fallback.Lookup(name)
	}
	return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
}

// Has is a local-only test: true iff name is bound directly in this frame,
// ignoring the fallback chain.
func (t *Table) Has(name string) bool {
	_, ok := t.store[name]
	return ok
}

// Fallback returns the read-only fallback table, or nil at the root.
func (t *Table) Fallback() *Table {
	return t.fallback
}
