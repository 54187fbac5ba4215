package strlib_test

import (
	"testing"

	"github.com/frost-lang/frost/builtin/strlib"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	table := symtab.New()
	strlib.Install(table)
	fn, lookupErr := table.Lookup(name)
	require.NoError(t, lookupErr)
	f, ok := fn.(*value.Function)
	require.True(t, ok)
	return f.Callable.Call(args)
}

func TestUpperLower(t *testing.T) {
	v, err := call(t, "upper", value.String("hello"))
	require.NoError(t, err)
	assert.Equal(t, value.String("HELLO"), v)

	v, err = call(t, "lower", value.String("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, value.String("hello"), v)
}

func TestTitle(t *testing.T) {
	v, err := call(t, "title", value.String("hello world"))
	require.NoError(t, err)
	assert.Equal(t, value.String("Hello World"), v)
}

func TestTrim(t *testing.T) {
	v, err := call(t, "trim", value.String("  hi  "))
	require.NoError(t, err)
	assert.Equal(t, value.String("hi"), v)
}

func TestSplitJoin(t *testing.T) {
	v, err := call(t, "split", value.String("a,b,c"), value.String(","))
	require.NoError(t, err)
	arr, ok := v.(*value.Array)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.String("a"), value.String("b"), value.String("c")}, arr.Elems())

	joined, err := call(t, "join", arr, value.String("-"))
	require.NoError(t, err)
	assert.Equal(t, value.String("a-b-c"), joined)
}

func TestContainsStartsEndsWith(t *testing.T) {
	v, err := call(t, "contains", value.String("hello"), value.String("ell"))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)

	v, err = call(t, "starts_with", value.String("hello"), value.String("he"))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)

	v, err = call(t, "ends_with", value.String("hello"), value.String("lo"))
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)
}

func TestReplace(t *testing.T) {
	v, err := call(t, "replace", value.String("foo bar foo"), value.String("foo"), value.String("baz"))
	require.NoError(t, err)
	assert.Equal(t, value.String("baz bar baz"), v)
}

func TestCompareLocaleStrCaseInsensitiveByDefault(t *testing.T) {
	v, err := call(t, "compare_locale_str", value.String("abc"), value.String("ABC"))
	require.NoError(t, err)
	assert.Equal(t, value.Int(0), v)
}

func TestCompareLocaleStrCaseSensitive(t *testing.T) {
	v, err := call(t, "compare_locale_str", value.String("abc"), value.String("ABC"), value.String("en"), value.Bool(true))
	require.NoError(t, err)
	assert.NotEqual(t, value.Int(0), v)
}

func TestIncompatibleTypeIsError(t *testing.T) {
	_, err := call(t, "upper", value.Int(5))
	require.Error(t, err)
}
