// Package closure implements Frost's free-variable analyser and closure
// construction/call semantics: a captured-environment plus an unevaluated
// AST body, built once at lambda construction time.
package closure

import (
	"fmt"

	"github.com/frost-lang/frost/ast"
)

// Analyse walks the concatenated symbol-action streams of body in order,
// starting with params as already locally defined, and returns the free
// names in first-usage order. It also rejects duplicate parameter names and
// any body Definition that would redefine a parameter.
func Analyse(params []string, body []ast.Statement) (free []string, err error) {
	paramSet := make(map[string]bool, len(params))
	for _, p := range params {
		if paramSet[p] {
			return nil, fmt.Errorf("duplicate parameter name: %s", p)
		}
		paramSet[p] = true
	}

	defined := make(map[string]bool, len(paramSet))
	for p := range paramSet {
		defined[p] = true
	}
	freeSeen := make(map[string]bool)

	for _, stmt := range body {
		for _, action := range stmt.Actions() {
			switch action.Kind {
			case ast.Usage:
				if !defined[action.Name] && !freeSeen[action.Name] {
					free = append(free, action.Name)
					freeSeen[action.Name] = true
				}
			case ast.Definition:
				if paramSet[action.Name] {
					return nil, fmt.Errorf("parameter %s redefined in function body", action.Name)
				}
				defined[action.Name] = true
			}
		}
	}
	return free, nil
}
