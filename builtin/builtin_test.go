package builtin_test

import (
	"testing"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallEnforcesArity(t *testing.T) {
	table := symtab.New()
	builtin.Install(table, "add", 2, 2, func(args []value.Value) (value.Value, error) {
		return value.Int(int64(args[0].(value.Int)) + int64(args[1].(value.Int))), nil
	})

	fn, err := table.Lookup("add")
	require.NoError(t, err)
	f := fn.(*value.Function)

	_, callErr := f.Callable.Call([]value.Value{value.Int(1)})
	require.Error(t, callErr)

	v, callErr := f.Callable.Call([]value.Value{value.Int(1), value.Int(2)})
	require.NoError(t, callErr)
	assert.Equal(t, value.Int(3), v)
}

func TestInstallUnboundedMax(t *testing.T) {
	table := symtab.New()
	builtin.Install(table, "variadic", 0, -1, func(args []value.Value) (value.Value, error) {
		return value.Int(int64(len(args))), nil
	})

	fn, err := table.Lookup("variadic")
	require.NoError(t, err)
	f := fn.(*value.Function)

	v, callErr := f.Callable.Call([]value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4)})
	require.NoError(t, callErr)
	assert.Equal(t, value.Int(4), v)
}

func TestInstallPanicsOnDuplicateBinding(t *testing.T) {
	table := symtab.New()
	noop := func(args []value.Value) (value.Value, error) { return value.NullValue, nil }
	builtin.Install(table, "dup", 0, 0, noop)

	assert.Panics(t, func() {
		builtin.Install(table, "dup", 0, 0, noop)
	})
}
