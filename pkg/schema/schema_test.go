package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArityHelpers(t *testing.T) {
	assert.Equal(t, Arity{Kind: ArityNone}, None())
	assert.Equal(t, Arity{Kind: ArityOne, Count: 1}, One())
	assert.Equal(t, Arity{Kind: ArityMany, Count: 4}, Many(4))

	assert.Equal(t, "none", None().String())
	assert.Equal(t, "one", One().String())
	assert.Equal(t, "many:4", Many(4).String())
}

func TestBuilderPreservesDeclarationOrder(t *testing.T) {
	s, err := NewBuilder().
		Option(OptionSpec{Name: "alpha", Short: "-a", Arity: None()}).
		Positional(PositionalSpec{Name: "mid"}).
		Option(OptionSpec{Name: "beta", Short: "-b", Arity: None()}).
		Build()
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, EntryOption, entries[0].Kind)
	assert.Equal(t, "alpha", entries[0].Option.Name)
	assert.Equal(t, EntryPositional, entries[1].Kind)
	assert.Equal(t, "mid", entries[1].Positional.Name)
	assert.Equal(t, "beta", entries[2].Option.Name)
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.12.3")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 12, Patch: 3}, v)
	assert.Equal(t, "1.12.3", v.String())

	for _, bad := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.-2.3"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, "version %q", bad)
	}
}
