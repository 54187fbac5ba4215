package value

import "strings"

// ToInternalString renders the string bare outside a container, and
// double-quoted with escapes inside one.
func (s String) ToInternalString(inStructure bool) string {
	if !inStructure {
		return string(s)
	}
	return quoteString(string(s))
}

var stringEscapes = strings.NewReplacer(
	"\\", `\\`,
	"\"", `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func quoteString(s string) string {
	return "\"" + stringEscapes.Replace(s) + "\""
}
