// Package iolib installs Frost's output built-ins: print, mformat, and
// mprint, grounded directly on functions/builtins/output.cpp's
// mformat_impl placeholder scanner (`${key}` substitution from a
// replacement Map, the exact error cases for an unterminated or empty
// placeholder, a non-identifier-like key, a missing replacement, or a
// null replacement value) and its puts-to-stdout shape — generalized
// to an injected io.Writer instead of a hardcoded stdout, matching the
// ambient-stack rule that program output always goes through a writer
// the CLI driver controls.
package iolib

import (
	"fmt"
	"io"
	"strings"

	"github.com/frost-lang/frost/builtin"
	"github.com/frost-lang/frost/frosterr"
	"github.com/frost-lang/frost/symtab"
	"github.com/frost-lang/frost/value"
)

func isIdentifierLike(key string) bool {
	if key == "" {
		return false
	}
	isAlpha := func(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	isStart := func(c byte) bool { return isAlpha(c) || c == '_' }
	isContinue := func(c byte) bool { return isStart(c) || isDigit(c) }
	if !isStart(key[0]) {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isContinue(key[i]) {
			return false
		}
	}
	return true
}

func mformatImpl(format string, repl *value.Map) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(format) {
		next := strings.Index(format[i:], "${")
		if next < 0 {
			out.WriteString(format[i:])
			break
		}
		next += i
		out.WriteString(format[i:next])

		start := next + 2
		end := strings.IndexByte(format[start:], '}')
		if end < 0 {
			return "", frosterr.Recoverablef(frosterr.Position{}, "Unterminated format placeholder")
		}
		end += start
		if end == start {
			return "", frosterr.Recoverablef(frosterr.Position{}, "Empty format placeholder")
		}

		key := format[start:end]
		if !isIdentifierLike(key) {
			return "", frosterr.Recoverablef(frosterr.Position{}, "Invalid format placeholder: %s", key)
		}
		v, ok := repl.Get(value.String(key))
		if !ok {
			return "", frosterr.Recoverablef(frosterr.Position{}, "Missing replacement for key: %s", key)
		}
		if _, isNull := v.(value.Null); isNull {
			return "", frosterr.Recoverablef(frosterr.Position{}, "Replacement value for key %s is null", key)
		}
		out.WriteString(v.ToInternalString(false))
		i = end + 1
	}
	return out.String(), nil
}

func asString(name string, v value.Value) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
	}
	return string(s), nil
}

func asMap(name string, v value.Value) (*value.Map, error) {
	m, ok := v.(*value.Map)
	if !ok {
		return nil, frosterr.Recoverablef(frosterr.Position{}, "Function %s called with incompatible type: %s", name, value.TypeName(v))
	}
	return m, nil
}

// Install defines print, mformat, and mprint in table, writing program
// output to w.
func Install(table *symtab.Table, w io.Writer) {
	builtin.Install(table, "print", 1, 1, func(args []value.Value) (value.Value, error) {
		fmt.Fprintln(w, args[0].ToInternalString(false))
		return value.NullValue, nil
	})

	builtin.Install(table, "mformat", 2, 2, func(args []value.Value) (value.Value, error) {
		format, err := asString("mformat", args[0])
		if err != nil {
			return nil, err
		}
		repl, err := asMap("mformat", args[1])
		if err != nil {
			return nil, err
		}
		s, err := mformatImpl(format, repl)
		if err != nil {
			return nil, err
		}
		return value.String(s), nil
	})

	builtin.Install(table, "mprint", 2, 2, func(args []value.Value) (value.Value, error) {
		format, err := asString("mprint", args[0])
		if err != nil {
			return nil, err
		}
		repl, err := asMap("mprint", args[1])
		if err != nil {
			return nil, err
		}
		s, err := mformatImpl(format, repl)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, s)
		return value.NullValue, nil
	})
}
