package cmd

import (
	"testing"

	"github.com/frost-lang/frost/ast"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	snaps.Clean(m)
}

func TestParseTreeDumpSnapshot(t *testing.T) {
	program, errs := parseSource(`def double = fn(x) -> { x * 2 }
double(21)`)
	require.Empty(t, errs)
	snaps.MatchSnapshot(t, ast.DumpProgram(program))
}
