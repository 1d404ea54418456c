package schema

import "fmt"

// ArityKind classifies how many value tokens an option consumes.
type ArityKind int

const (
	// ArityNone is a boolean flag that consumes no value tokens.
	ArityNone ArityKind = iota
	// ArityOne consumes exactly one value token.
	ArityOne
	// ArityMany consumes a fixed number of value tokens.
	ArityMany
)

// Arity describes the value consumption of an option. Count is 0 for
// ArityNone, 1 for ArityOne and n for ArityMany.
type Arity struct {
	Kind  ArityKind
	Count int
}

// None returns the arity of a boolean flag.
func None() Arity {
	return Arity{Kind: ArityNone}
}

// One returns the arity of a single-value option.
func One() Arity {
	return Arity{Kind: ArityOne, Count: 1}
}

// Many returns the arity of an option consuming exactly n value tokens.
// The validator rejects n < 1.
func Many(n int) Arity {
	return Arity{Kind: ArityMany, Count: n}
}

func (a Arity) String() string {
	switch a.Kind {
	case ArityNone:
		return "none"
	case ArityOne:
		return "one"
	case ArityMany:
		return fmt.Sprintf("many:%d", a.Count)
	default:
		return fmt.Sprintf("arity(%d)", int(a.Kind))
	}
}
