package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Parse when a help token short-circuits the
// scan. It signals "help was requested", not a parse failure; callers
// typically exit zero after seeing it.
var ErrHelp = errors.New("help requested")

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// MissingOptionArgument: an option requiring values had fewer
	// tokens remaining than its arity demands.
	MissingOptionArgument ErrorKind = iota
	// InvalidOptionArgument: a supplied value is outside the option's
	// closed possible-values set.
	InvalidOptionArgument
	// MissingPositional: tokens ran out before all positionals filled.
	MissingPositional
	// MissingRequiredOption: a required option was never matched.
	MissingRequiredOption
	// ConflictingOptions: two mutually exclusive options both matched.
	ConflictingOptions
	// RepeatedOption: an already-claimed option matched again.
	RepeatedOption
)

func (k ErrorKind) String() string {
	switch k {
	case MissingOptionArgument:
		return "missing option argument"
	case InvalidOptionArgument:
		return "invalid option argument"
	case MissingPositional:
		return "missing positional"
	case MissingRequiredOption:
		return "missing required option"
	case ConflictingOptions:
		return "conflicting options"
	case RepeatedOption:
		return "repeated option"
	default:
		return fmt.Sprintf("parse error(%d)", int(k))
	}
}

// Error is a structured parse failure. Name is the schema name of the
// option or positional involved; the remaining fields are populated
// per kind.
type Error struct {
	Kind ErrorKind
	// Name is the option or positional the failure concerns.
	Name string
	// Conflict is the other option name for ConflictingOptions.
	Conflict string
	// Value is the offending token for InvalidOptionArgument.
	Value string
	// Allowed is the possible-values set for InvalidOptionArgument.
	Allowed []string
	// Want is the number of values the option requires, for
	// MissingOptionArgument.
	Want int
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingOptionArgument:
		if e.Want > 1 {
			return fmt.Sprintf("option %q requires %d values", e.Name, e.Want)
		}
		return fmt.Sprintf("option %q requires a value", e.Name)
	case InvalidOptionArgument:
		return fmt.Sprintf("option %q: invalid value %q (allowed: %s)",
			e.Name, e.Value, strings.Join(e.Allowed, ", "))
	case MissingPositional:
		return fmt.Sprintf("missing positional argument %q", e.Name)
	case MissingRequiredOption:
		return fmt.Sprintf("required option %q not set", e.Name)
	case ConflictingOptions:
		return fmt.Sprintf("option %q conflicts with %q", e.Name, e.Conflict)
	case RepeatedOption:
		return fmt.Sprintf("option %q already set", e.Name)
	default:
		return e.Kind.String()
	}
}

// KindOf extracts the ErrorKind from err. The second return is false
// when err is not a parse *Error (including ErrHelp).
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
