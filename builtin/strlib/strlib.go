// Package strlib installs Frost's string built-ins: case conversion via
// golang.org/x/text/cases (Unicode-aware, unlike a byte-wise ASCII
// upper/lower), trimming, splitting/joining, substring search, and a
// locale-aware comparator via golang.org/x/text/collate.
package strlib

import (
	"strings"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func asString(v value.Value) (string, bool) {
	s, ok := v.(value.String)
	return string(s), ok
}

func typeErr(name string, v value.Value) error {
	return frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
}

// Install defines every string binding in table.
func Install(table *symtab.Table) {
	builtin.Install(table, "upper", 1, 1, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("upper", args[0])
		}
		return value.String(cases.Upper(language.Und).String(s)), nil
	})

	builtin.Install(table, "lower", 1, 1, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("lower", args[0])
		}
		return value.String(cases.Lower(language.Und).String(s)), nil
	})

	builtin.Install(table, "title", 1, 1, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("title", args[0])
		}
		return value.String(cases.Title(language.Und).String(s)), nil
	})

	builtin.Install(table, "trim", 1, 1, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("trim", args[0])
		}
		return value.String(strings.TrimSpace(s)), nil
	})

	builtin.Install(table, "split", 2, 2, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("split", args[0])
		}
		sep, ok := asString(args[1])
		if !ok {
			return nil, typeErr("split", args[1])
		}
		parts := strings.Split(s, sep)
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.String(p)
		}
		return value.NewArray(elems), nil
	})

	builtin.Install(table, "join", 2, 2, func(args []value.Value) (value.Value, error) {
		arr, ok := args[0].(*value.Array)
		if !ok {
			return nil, typeErr("join", args[0])
		}
		sep, ok := asString(args[1])
		if !ok {
			return nil, typeErr("join", args[1])
		}
		parts := make([]string, len(arr.Elems()))
		for i, e := range arr.Elems() {
			es, ok := e.(value.String)
			if !ok {
				return nil, frosterr.Recoverablef(frosterr.Position{}, "Function join called with a non-String element: %s", value.TypeName(e))
			}
			parts[i] = string(es)
		}
		return value.String(strings.Join(parts, sep)), nil
	})

	builtin.Install(table, "contains", 2, 2, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("contains", args[0])
		}
		sub, ok := asString(args[1])
		if !ok {
			return nil, typeErr("contains", args[1])
		}
		return value.Bool(strings.Contains(s, sub)), nil
	})

	builtin.Install(table, "starts_with", 2, 2, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("starts_with", args[0])
		}
		prefix, ok := asString(args[1])
		if !ok {
			return nil, typeErr("starts_with", args[1])
		}
		return value.Bool(strings.HasPrefix(s, prefix)), nil
	})

	builtin.Install(table, "ends_with", 2, 2, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("ends_with", args[0])
		}
		suffix, ok := asString(args[1])
		if !ok {
			return nil, typeErr("ends_with", args[1])
		}
		return value.Bool(strings.HasSuffix(s, suffix)), nil
	})

	builtin.Install(table, "replace", 3, 3, func(args []value.Value) (value.Value, error) {
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("replace", args[0])
		}
		old, ok := asString(args[1])
		if !ok {
			return nil, typeErr("replace", args[1])
		}
		repl, ok := asString(args[2])
		if !ok {
			return nil, typeErr("replace", args[2])
		}
		return value.String(strings.ReplaceAll(s, old, repl)), nil
	})

	builtin.Install(table, "compare_locale_str", 2, 4, func(args []value.Value) (value.Value, error) {
		s1, ok := asString(args[0])
		if !ok {
			return nil, typeErr("compare_locale_str", args[0])
		}
		s2, ok := asString(args[1])
		if !ok {
			return nil, typeErr("compare_locale_str", args[1])
		}
		locale := "en"
		if len(args) >= 3 {
			l, ok := asString(args[2])
			if !ok {
				return nil, typeErr("compare_locale_str", args[2])
			}
			locale = l
		}
		caseSensitive := false
		if len(args) == 4 {
			b, ok := args[3].(value.Bool)
			if !ok {
				return nil, typeErr("compare_locale_str", args[3])
			}
			caseSensitive = bool(b)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		var col *collate.Collator
		if caseSensitive {
			col = collate.New(tag)
		} else {
			col = collate.New(tag, collate.IgnoreCase)
		}
		return value.Int(col.CompareString(s1, s2)), nil
	})
}
