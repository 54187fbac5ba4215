package cmd

import (
	"io"

	"github.com/frost-lang/frost/builtin/arraylib"
	"github.com/frost-lang/frost/builtin/httplib"
	"github.com/frost-lang/frost/builtin/iolib"
	"github.com/frost-lang/frost/builtin/jsonlib"
	"github.com/frost-lang/frost/builtin/mathlib"
	"github.com/frost-lang/frost/builtin/strlib"
	"github.com/frost-lang/frost/builtin/syslib"
	"github.com/frost-lang/frost/symtab"
)

// newRootTable builds a root symbol table with the full standard library
// installed, writing print/mformat/mprint output to w.
func newRootTable(w io.Writer) *symtab.Table {
	table := symtab.New()
	mathlib.Install(table)
	strlib.Install(table)
	arraylib.Install(table)
	jsonlib.Install(table)
	syslib.Install(table)
	iolib.Install(table, w)
	httplib.Install(table)
	return table
}
