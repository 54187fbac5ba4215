// Package jsonlib installs parse_json and to_json, grounded on
// functions/builtins/json.cpp's boost::json-based visitor pair but
// built on tidwall/gjson (parsing, via its order-preserving ForEach
// walk) and tidwall/sjson (construction, via incremental SetRaw calls)
// instead of a Go JSON library that owns its own value tree — Frost's
// value model already is that tree, so gjson/sjson are driven directly
// against value.Value construction rather than through an intermediate
// encoding/json representation.
package jsonlib

import (
	"strconv"
	"strings"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Install defines parse_json and to_json in table.
func Install(table *symtab.Table) {
	builtin.Install(table, "parse_json", 1, 1, func(args []value.Value) (value.Value, error) {
		s, ok := args[0].(value.String)
		if !ok {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Function parse_json called with incompatible type: %s", value.TypeName(args[0]))
		}
		if !gjson.Valid(string(s)) {
			return nil, frosterr.Recoverablef(frosterr.Position{}, "Invalid JSON text")
		}
		return fromGJSON(gjson.Parse(string(s))), nil
	})

	builtin.Install(table, "to_json", 1, 2, func(args []value.Value) (value.Value, error) {
		raw, err := marshalValue(args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 2 {
			doPretty, ok := args[1].(value.Bool)
			if !ok {
				return nil, frosterr.Recoverablef(frosterr.Position{}, "Function to_json called with incompatible type: %s", value.TypeName(args[1]))
			}
			if doPretty {
				raw = string(pretty.Pretty([]byte(raw)))
				raw = strings.TrimRight(raw, "\n")
			}
		}
		return value.String(raw), nil
	})
}

func fromGJSON(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.NullValue
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return value.Float(r.Float())
		}
		return value.Int(r.Int())
	case gjson.String:
		return value.String(r.String())
	default:
		if r.IsArray() {
			var elems []value.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, fromGJSON(v))
				return true
			})
			return value.NewArray(elems)
		}
		builder := value.NewMapBuilder()
		r.ForEach(func(k, v gjson.Result) bool {
			builder.Set(value.String(k.String()), fromGJSON(v))
			return true
		})
		return builder.Build()
	}
}

// marshalValue renders v as a raw JSON text fragment.
func marshalValue(v value.Value) (string, error) {
	switch t := v.(type) {
	case value.Null:
		return "null", nil
	case value.Bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case value.Int:
		return strconv.FormatInt(int64(t), 10), nil
	case value.Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), nil
	case value.String:
		return jsonQuote(string(t)), nil
	case *value.Array:
		acc := "[]"
		for i, e := range t.Elems() {
			raw, err := marshalValue(e)
			if err != nil {
				return "", err
			}
			var err2 error
			acc, err2 = sjson.SetRaw(acc, strconv.Itoa(i), raw)
			if err2 != nil {
				return "", frosterr.Recoverablef(frosterr.Position{}, "Cannot serialize Array to JSON: %s", err2)
			}
		}
		return acc, nil
	case *value.Map:
		acc := "{}"
		keys := t.Keys()
		vals := t.Values()
		for i, k := range keys {
			ks, ok := k.(value.String)
			if !ok {
				return "", frosterr.Recoverablef(frosterr.Position{}, "Map with non-String key: %q cannot be serialized to JSON", k.ToInternalString(true))
			}
			raw, err := marshalValue(vals[i])
			if err != nil {
				return "", err
			}
			var err2 error
			acc, err2 = sjson.SetRaw(acc, escapeSjsonPath(string(ks)), raw)
			if err2 != nil {
				return "", frosterr.Recoverablef(frosterr.Position{}, "Cannot serialize Map to JSON: %s", err2)
			}
		}
		return acc, nil
	case *value.Function:
		return "", frosterr.Recoverablef(frosterr.Position{}, "Cannot serialize Function to JSON")
	default:
		return "", frosterr.Internalf("jsonlib: unhandled value kind %s", value.TypeName(v))
	}
}

// escapeSjsonPath backslash-escapes the path metacharacters sjson treats
// specially ('.', '*', '?', '\') so an arbitrary Frost string key is always
// used literally as a single object key.
func escapeSjsonPath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var jsonEscapes = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\b", `\b`,
	"\f", `\f`,
)

func jsonQuote(s string) string {
	return `"` + jsonEscapes.Replace(s) + `"`
}
