// Package schema defines the declarative model of a command line:
// named options, positional parameters, and the program metadata shown
// in help output. A Schema is validated once at construction time and
// is immutable afterwards, so it is safe to share between concurrent
// parses.
package schema

import "fmt"

// OptionSpec describes one named option. At least one of Long or Short
// must be set. Default and PossibleValues carry raw string tokens; the
// validator enforces that their counts and memberships are consistent
// with the declared arity.
type OptionSpec struct {
	// Name is the unique key under which the parsed value is stored.
	Name string
	// Long is the long form including its dashes, e.g. "--force".
	Long string
	// Short is the short form including its dash, e.g. "-f".
	Short string
	// Arity declares how many value tokens the option consumes.
	Arity Arity
	// Metavar is the placeholder shown for the option's value(s) in help.
	Metavar string
	// Description is the help line shown under the option.
	Description string
	// Required marks the option as mandatory. Mutually exclusive with
	// Default.
	Required bool
	// Default holds the preset value(s): exactly one entry for One,
	// exactly Count entries for Many. Flags cannot carry a default.
	Default []string
	// PossibleValues, when non-empty, is the closed set of accepted
	// value strings.
	PossibleValues []string
	// ConflictsWith names options that must not appear together with
	// this one.
	ConflictsWith []string
}

// PositionalSpec describes one argument identified by position. A
// positional always binds exactly one token and is always required.
type PositionalSpec struct {
	Name        string
	Metavar     string
	Description string
}

// EntryKind discriminates the two schema entry variants.
type EntryKind int

const (
	EntryOption EntryKind = iota
	EntryPositional
)

// Entry is one declared schema element, either an option or a
// positional. Exactly one of Option/Positional is non-nil, matching
// Kind.
type Entry struct {
	Kind       EntryKind
	Option     *OptionSpec
	Positional *PositionalSpec
}

// Opt wraps an OptionSpec as a schema entry.
func Opt(o OptionSpec) Entry {
	return Entry{Kind: EntryOption, Option: &o}
}

// Pos wraps a PositionalSpec as a schema entry.
func Pos(p PositionalSpec) Entry {
	return Entry{Kind: EntryPositional, Positional: &p}
}

// Schema is a validated, immutable sequence of options and positionals.
// Declaration order is significant: options are matched against tokens
// in declaration order, and positionals consume tokens left to right in
// declaration order.
type Schema struct {
	entries     []Entry
	options     []*OptionSpec
	positionals []*PositionalSpec
}

// New validates the given entries and constructs a Schema. A non-nil
// error is always a ValidationErrors listing every rule violation; a
// schema that fails validation is never constructed.
func New(entries ...Entry) (*Schema, error) {
	if err := NewValidator().Validate(entries); err != nil {
		return nil, err
	}
	s := &Schema{entries: entries}
	for _, e := range entries {
		switch e.Kind {
		case EntryOption:
			s.options = append(s.options, e.Option)
		case EntryPositional:
			s.positionals = append(s.positionals, e.Positional)
		}
	}
	return s, nil
}

// MustNew is New but panics on validation failure. Schema mistakes are
// programming errors, so most callers construct their schema through
// MustNew at program start.
func MustNew(entries ...Entry) *Schema {
	s, err := New(entries...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

// Entries returns the declared entries in declaration order. The
// returned slice must not be modified.
func (s *Schema) Entries() []Entry {
	return s.entries
}

// Options returns the option specs in declaration order.
func (s *Schema) Options() []*OptionSpec {
	return s.options
}

// Positionals returns the positional specs in declaration order.
func (s *Schema) Positionals() []*PositionalSpec {
	return s.positionals
}

// Option returns the option spec with the given name, or nil.
func (s *Schema) Option(name string) *OptionSpec {
	for _, o := range s.options {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Positional returns the positional spec with the given name, or nil.
func (s *Schema) Positional(name string) *PositionalSpec {
	for _, p := range s.positionals {
		if p.Name == name {
			return p
		}
	}
	return nil
}
