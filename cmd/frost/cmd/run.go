package cmd

import (
	"fmt"
	"os"

	"github.com/frost-lang/frost/ast"
	"github.com/frost-lang/frost/eval"
	"github.com/frost-lang/frost/lexer"
	"github.com/frost-lang/frost/parser"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Frost source file or expression",
	Long: `Execute a Frost program from a file or inline expression.

Examples:
  # Run a script file
  frost run script.fr

  # Evaluate an inline expression
  frost run -e "print(1 + 2)"

Setting the PARSE_TREE environment variable to "true" switches this
command from evaluating the program to printing its parse tree instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	source, name, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	program, parseErrs := parseSource(source)
	if len(parseErrs) > 0 {
		for _, perr := range parseErrs {
			fmt.Fprintln(os.Stderr, perr)
		}
		return fmt.Errorf("parsing %s failed with %d error(s)", name, len(parseErrs))
	}

	if os.Getenv("PARSE_TREE") == "true" {
		fmt.Println(ast.DumpProgram(program))
		return nil
	}

	table := newRootTable(os.Stdout)
	result := eval.RunProgramIn(table, program)
	for _, rerr := range result.Errors {
		fmt.Fprintln(os.Stderr, rerr)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("execution of %s failed with %d error(s)", name, len(result.Errors))
	}
	return nil
}

// parseSource lexes and parses source, returning every lexer and parser
// error found. Parsing continues past individual statement errors so all
// of them are reported together.
func parseSource(source string) (*ast.Program, []error) {
	l := lexer.New(source)
	program, errs := parser.ParseProgram(l)
	errs = append(errs, l.Errors()...)
	return program, errs
}
