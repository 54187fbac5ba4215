package symtab_test

import (
	"errors"
	"testing"

	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndLookup(t *testing.T) {
	tbl := symtab.New()
	require.NoError(t, tbl.Define("x", value.Int(1)))
	got, err := tbl.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), got)
}

func TestRedefinitionErrors(t *testing.T) {
	tbl := symtab.New()
	require.NoError(t, tbl.Define("x", value.Int(1)))
	err := tbl.Define("x", value.Int(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, symtab.ErrRedefined))
}

func TestFallbackChainLookup(t *testing.T) {
	root := symtab.New()
	require.NoError(t, root.Define("y", value.Int(42)))
	child := symtab.NewWithFallback(root)

	got, err := child.Lookup("y")
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), got)
}

func TestShadowingInChildFrameDoesNotErrror(t *testing.T) {
	root := symtab.New()
	require.NoError(t, root.Define("y", value.Int(1)))
	child := symtab.NewWithFallback(root)
	require.NoError(t, child.Define("y", value.Int(2)))

	got, _ := child.Lookup("y")
	assert.Equal(t, value.Int(2), got)
}

func TestUndefinedLookupErrors(t *testing.T) {
	tbl := symtab.New()
	_, err := tbl.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, symtab.ErrUndefined))
}

func TestHasIsLocalOnly(t *testing.T) {
	root := symtab.New()
	require.NoError(t, root.Define("y", value.Int(1)))
	child := symtab.NewWithFallback(root)

	assert.False(t, child.Has("y"))
	assert.True(t, root.Has("y"))
}
