package hl7

import (
	"fmt"

	"github.com/jamerfort/tclhl7/debug"
	"github.com/jamerfort/tclhl7/ir"
)

// Delete removes every matched node from its immediate parent
// sequence, shifting later siblings down. Matches are processed from
// highest to lowest address so no removal invalidates an address not
// yet processed in the same batch; expansion is never applied.
func Delete(m Message, query string) (Message, error) {
	if err := m.check(); err != nil {
		return Message{}, fmt.Errorf("%w: delete %q", err, query)
	}
	addrs, err := resolve(m, query, false)
	if err != nil {
		return Message{}, err
	}
	root := m.root.Clone()
	for i := len(addrs) - 1; i >= 0; i-- {
		if debug.Mutate() {
			debug.Logf("delete %s\n", addrs[i])
		}
		ir.Remove(root, addrs[i])
	}
	return m.withRoot(root), nil
}
