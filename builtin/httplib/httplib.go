// Package httplib installs http_get and http_post: synchronous HTTP
// client built-ins at the boundary shape spec.md §1 calls out without
// committing to an implementation. Grounded on
// functions/builtins/http-impl/request.cpp's Map-shaped request/
// response surface and its "wrong field type is a Recoverable error"
// validation style, but implemented directly on net/http rather than
// reproducing the reference's full endpoint/header/TLS option Map (no
// example repo in the retrieval pack supplies an HTTP client library
// more idiomatic than the standard library for a simple synchronous
// blocking call — see DESIGN.md).
package httplib

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

func asString(name string, v value.Value) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
	}
	return string(s), nil
}

func responseToValue(resp *http.Response, body []byte) value.Value {
	builder := value.NewMapBuilder()
	builder.Set(value.String("status"), value.Int(resp.StatusCode))
	builder.Set(value.String("body"), value.String(body))

	headers := value.NewMapBuilder()
	for k, vs := range resp.Header {
		headers.Set(value.String(k), value.String(strings.Join(vs, ", ")))
	}
	builder.Set(value.String("headers"), headers.Build())
	return builder.Build()
}

var client = &http.Client{Timeout: 30 * time.Second}

func doRequest(name, method, url, body string) (value.Value, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s: invalid request: %s", name, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s: request failed: %s", name, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s: failed reading response body: %s", name, err)
	}
	return responseToValue(resp, data), nil
}

// Install defines http_get and http_post in table.
func Install(table *symtab.Table) {
	builtin.Install(table, "http_get", 1, 1, func(args []value.Value) (value.Value, error) {
		url, err := asString("http_get", args[0])
		if err != nil {
			return nil, err
		}
		return doRequest("http_get", http.MethodGet, url, "")
	})

	builtin.Install(table, "http_post", 2, 2, func(args []value.Value) (value.Value, error) {
		url, err := asString("http_post", args[0])
		if err != nil {
			return nil, err
		}
		body, err := asString("http_post", args[1])
		if err != nil {
			return nil, err
		}
		return doRequest("http_post", http.MethodPost, url, body)
	})
}
