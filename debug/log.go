package debug

import (
	"fmt"
	"os"

	"github.com/jamerfort/tclhl7/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*ir.Node); ok {
			args[i] = fmt.Sprintf("%v", n.Value())
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
