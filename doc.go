// Package hl7 is an addressing and mutation library for HL7 v2-style
// delimited text. It parses raw text into a five-level tree (segment,
// field, repetition, component, subcomponent), addresses nodes with
// dotted query addresses, and reserializes with byte-faithful
// round-tripping.
//
// # Usage
//
//	msg, err := hl7.Parse("MSH|^~\\&|SEND\rPID|||X~Y\r")
//
//	// Read
//	vals, err := hl7.GetStrings(msg, "PID.3.*")
//
//	// Mutate; every operation returns a new Message
//	msg2, err := hl7.Set(msg, "PID.3.0", "Z")
//	out, err := hl7.Data(msg2)
//
// Query addresses have one to five dot-joined parts. The first part
// matches segments by name, index, or glob pattern; deeper parts take
// indices, `*`, `min-max` ranges, `min-end` ranges, and comma-joined
// unions of these. See the ir/addr package for the grammar.
//
// Messages are immutable values: mutating operations clone, so holding
// an old Message across a Set or Delete is always safe.
package hl7
