package cmd

import (
	"fmt"
	"os"

	"github.com/frost-lang/frost/ast"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Frost source file or expression and print its tree",
	Long: `Parse a Frost program without evaluating it, printing the resulting
parse tree. Useful for inspecting how source is structured, independently
of the PARSE_TREE environment toggle on "run".`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	source, name, err := resolveInput(parseExpr, args)
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

	fmt.Println(ast.DumpProgram(program))
	return nil
}
