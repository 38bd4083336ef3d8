package ir

import "fmt"

// Level identifies a nesting level. MessageLevel is the root sequence
// of segments; static address depth d addresses a node at Level(d).
type Level int

const (
	MessageLevel Level = iota
	SegmentLevel
	FieldLevel
	RepetitionLevel
	ComponentLevel
	SubcomponentLevel
)

// MaxDepth is the number of addressable levels.
const MaxDepth = int(SubcomponentLevel)

func (l Level) String() string {
	switch l {
	case MessageLevel:
		return "message"
	case SegmentLevel:
		return "segment"
	case FieldLevel:
		return "field"
	case RepetitionLevel:
		return "repetition"
	case ComponentLevel:
		return "component"
	case SubcomponentLevel:
		return "subcomponent"
	default:
		return fmt.Sprintf("<err: %d is not a level>", l)
	}
}

// levelPolicy captures the per-depth differences of the otherwise
// uniform five-level structure.
type levelPolicy struct {
	// ForceExpand resolves the level as if expand were always
	// requested, regardless of the caller's flag.
	ForceExpand bool
	// AllowAdd permits appending to a node addressed at this level.
	AllowAdd bool
	// AllowInsert permits inserting at an index addressed at this
	// level.
	AllowInsert bool
}

var policies = [...]levelPolicy{
	SegmentLevel:      {ForceExpand: false, AllowAdd: false, AllowInsert: true},
	FieldLevel:        {ForceExpand: true, AllowAdd: true, AllowInsert: false},
	RepetitionLevel:   {ForceExpand: false, AllowAdd: true, AllowInsert: true},
	ComponentLevel:    {ForceExpand: false, AllowAdd: true, AllowInsert: true},
	SubcomponentLevel: {ForceExpand: false, AllowAdd: false, AllowInsert: true},
}

// Policy returns the resolution and mutation policy for an addressable
// level.
func (l Level) Policy() levelPolicy {
	return policies[l]
}
