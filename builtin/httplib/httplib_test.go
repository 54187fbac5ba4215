package httplib_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frost-lang/frost/builtin/httplib"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	table := symtab.New()
	httplib.Install(table)
	fn, lookupErr := table.Lookup(name)
	require.NoError(t, lookupErr)
	f, ok := fn.(*value.Function)
	require.True(t, ok)
	return f.Callable.Call(args)
}

func TestHTTPGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	v, err := call(t, "http_get", value.String(srv.URL))
	require.NoError(t, err)
	m, ok := v.(*value.Map)
	require.True(t, ok)
	status, ok := m.Get(value.String("status"))
	require.True(t, ok)
	assert.Equal(t, value.Int(200), status)
	body, ok := m.Get(value.String("body"))
	require.True(t, ok)
	assert.Equal(t, value.String("hello"), body)
}

func TestHTTPPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(data)
	}))
	defer srv.Close()

	v, err := call(t, "http_post", value.String(srv.URL), value.String("payload"))
	require.NoError(t, err)
	m, ok := v.(*value.Map)
	require.True(t, ok)
	status, ok := m.Get(value.String("status"))
	require.True(t, ok)
	assert.Equal(t, value.Int(201), status)
	body, ok := m.Get(value.String("body"))
	require.True(t, ok)
	assert.Equal(t, value.String("payload"), body)
}

func TestHTTPGetIncompatibleTypeIsError(t *testing.T) {
	_, err := call(t, "http_get", value.Int(5))
	require.Error(t, err)
}
