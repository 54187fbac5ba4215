package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/frost-lang/frost/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceReportsSyntaxErrors(t *testing.T) {
	_, errs := parseSource("def x = ")
	assert.NotEmpty(t, errs)
}

func TestParseSourceValidProgram(t *testing.T) {
	program, errs := parseSource("def x = 1 + 2")
	require.Empty(t, errs)
	require.Len(t, program.Statements, 1)
}

func TestNewRootTableWiresBuiltins(t *testing.T) {
	var buf bytes.Buffer
	table := newRootTable(&buf)

	for _, name := range []string{"sqrt", "upper", "range", "parse_json", "keys", "print", "http_get"} {
		_, err := table.Lookup(name)
		assert.NoError(t, err, "expected %s to be installed", name)
	}
}

func TestRunProgramInUsesInjectedOutput(t *testing.T) {
	var buf bytes.Buffer
	table := newRootTable(&buf)
	program, errs := parseSource(`print("hello from frost")`)
	require.Empty(t, errs)

	result := eval.RunProgramIn(table, program)
	assert.Empty(t, result.Errors)
	assert.True(t, strings.Contains(buf.String(), "hello from frost"))
}
