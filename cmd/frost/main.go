// Command frost is the command-line driver for the Frost expression
// language: it reads a source file or an inline expression, evaluates it,
// and reports results and errors the way a script runner should.
package main

import (
	"fmt"
	"os"

	"github.com/frost-lang/frost/cmd/frost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
