package debug

import (
	"fmt"
	"os"

	"github.com/fundsxml/flatxml/flat"
)

// Logf writes debug output to stderr. Entry slices are expanded to one
// line per entry for readability.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []flat.Entry:
			args[i] = "\n   |" + flat.Lines(x)
		case flat.Entry:
			args[i] = x.Line()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
