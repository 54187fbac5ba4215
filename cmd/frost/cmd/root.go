package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "frost",
	Short: "Frost expression language interpreter",
	Long: `frost evaluates Frost, a small expression-oriented scripting language:
def bindings, lambdas, array and map literals, the map/filter/foreach/reduce
higher-order forms, and a built-in standard library covering math, strings,
arrays, JSON, system introspection, and I/O.`,
	Version: Version,
}

// Execute runs the root command and returns any error it produced, letting
// main decide how to report it and which exit code to use.
func Execute() error {
	// Best-effort: a .env file next to the invocation is optional, and its
	// absence is not an error condition.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
