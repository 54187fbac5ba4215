package cmd

import (
	"fmt"
	"os"
)

// resolveInput returns the source text and a display name for it, taking
// either an inline expression (when expr is non-empty) or a single file
// path from args. Exactly one of the two must be supplied.
func resolveInput(expr string, args []string) (source, name string, err error) {
	if expr != "" {
		return expr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline source")
}
