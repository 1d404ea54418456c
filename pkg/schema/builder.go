package schema

// Builder accumulates schema entries in declaration order. It exists
// for callers that assemble a schema incrementally; Build runs the same
// validation as New.
type Builder struct {
	entries []Entry
}

// NewBuilder creates an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Option appends an option declaration.
func (b *Builder) Option(o OptionSpec) *Builder {
	b.entries = append(b.entries, Opt(o))
	return b
}

// Positional appends a positional declaration.
func (b *Builder) Positional(p PositionalSpec) *Builder {
	b.entries = append(b.entries, Pos(p))
	return b
}

// Build validates the accumulated entries and constructs the schema.
func (b *Builder) Build() (*Schema, error) {
	return New(b.entries...)
}
