// Package ir provides the structural representation of an HL7 message.
//
// # Usage
//
//	// Build nodes directly
//	field := ir.FromStrings("X", "Y")
//
//	// Convert from native Go values
//	node, err := ir.FromValue([]any{"X", "Y"})
//
//	// Walk, grow and remove by index path
//	n := ir.Walk(root, []int{1, 3, 0})
//
// A message is a single recursive Node type: a leaf string at the
// subcomponent level, or an ordered sequence of child nodes at every
// level above it. Depth is not stored on nodes; operations take the
// node's Level explicitly.
//
// # Related Packages
//
//   - github.com/jamerfort/tclhl7/ir/addr - address and query grammar
//   - github.com/jamerfort/tclhl7/parse - parse text to IR
//   - github.com/jamerfort/tclhl7/encode - encode IR to text
package ir
