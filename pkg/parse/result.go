package parse

import (
	"github.com/CliForge/argonaut/pkg/schema"
)

// ValueKind discriminates the variants a result field can hold.
type ValueKind int

const (
	// FlagValue holds a boolean (arity none).
	FlagValue ValueKind = iota
	// SingleValue holds one string (arity one).
	SingleValue
	// MultiValue holds a fixed-size string slice (arity many).
	MultiValue
	// PositionalValue holds one string bound by position.
	PositionalValue
)

// Value is the tagged variant stored per result field. Exactly the
// field matching Kind is meaningful.
type Value struct {
	Kind ValueKind
	Bool bool
	Str  string
	Strs []string
}

// Field identifies one result slot in declaration order.
type Field struct {
	Name       string
	Positional bool
}

// Result is the typed record produced by a parse. Its shape is a pure
// projection of the schema: one field per option and positional, in
// declaration order with options and positionals interleaved exactly
// as declared. Flags project to booleans, single-value options to
// strings, many:N options to N-element string slices, positionals to
// strings.
type Result struct {
	values  map[string]Value
	changed map[string]bool
	fields  []Field
}

// newResult projects the schema onto an initialized result record:
// every option gets its declared default, or its arity-appropriate
// zero value (false, "", or N empty strings); every positional starts
// empty. The projection is deterministic and side-effect free.
func newResult(s *schema.Schema) *Result {
	r := &Result{
		values:  make(map[string]Value),
		changed: make(map[string]bool),
	}
	for _, e := range s.Entries() {
		switch e.Kind {
		case schema.EntryOption:
			o := e.Option
			r.fields = append(r.fields, Field{Name: o.Name})
			switch o.Arity.Kind {
			case schema.ArityNone:
				r.values[o.Name] = Value{Kind: FlagValue}
			case schema.ArityOne:
				v := Value{Kind: SingleValue}
				if len(o.Default) == 1 {
					v.Str = o.Default[0]
				}
				r.values[o.Name] = v
			case schema.ArityMany:
				slots := make([]string, o.Arity.Count)
				copy(slots, o.Default)
				r.values[o.Name] = Value{Kind: MultiValue, Strs: slots}
			}
		case schema.EntryPositional:
			p := e.Positional
			r.fields = append(r.fields, Field{Name: p.Name, Positional: true})
			r.values[p.Name] = Value{Kind: PositionalValue}
		}
	}
	return r
}

// Lookup returns the raw tagged value for a field.
func (r *Result) Lookup(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Bool returns the value of a flag. Unknown names return false.
func (r *Result) Bool(name string) bool {
	return r.values[name].Bool
}

// String returns the value of a single-value option or a positional.
// Unknown names return "".
func (r *Result) String(name string) string {
	return r.values[name].Str
}

// Positional returns the value bound to a positional. Unknown names
// return "".
func (r *Result) Positional(name string) string {
	return r.values[name].Str
}

// Strings returns the values of a many:N option. The returned slice is
// the stored slice; callers must not modify it.
func (r *Result) Strings(name string) []string {
	return r.values[name].Strs
}

// Changed reports whether the field was set by an input token, as
// opposed to keeping its default or zero value.
func (r *Result) Changed(name string) bool {
	return r.changed[name]
}

// Fields returns the result slots in declaration order.
func (r *Result) Fields() []Field {
	return r.fields
}

// Map flattens the result for serialization: booleans for flags,
// strings for single values and positionals, string slices for multi
// values.
func (r *Result) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(r.fields))
	for _, f := range r.fields {
		v := r.values[f.Name]
		switch v.Kind {
		case FlagValue:
			out[f.Name] = v.Bool
		case MultiValue:
			out[f.Name] = v.Strs
		default:
			out[f.Name] = v.Str
		}
	}
	return out
}

func (r *Result) setBool(name string, b bool) {
	v := r.values[name]
	v.Bool = b
	r.values[name] = v
	r.changed[name] = true
}

func (r *Result) setString(name, s string) {
	v := r.values[name]
	v.Str = s
	r.values[name] = v
	r.changed[name] = true
}

func (r *Result) setStrings(name string, ss []string) {
	v := r.values[name]
	v.Strs = ss
	r.values[name] = v
	r.changed[name] = true
}
