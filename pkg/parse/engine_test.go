package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CliForge/argonaut/pkg/schema"
)

var testProgram = schema.Program{
	Name:        "tool",
	Version:     schema.Version{Major: 1},
	Description: "test tool",
}

type recordingRenderer struct {
	calls   int
	program schema.Program
}

func (r *recordingRenderer) RenderHelp(p schema.Program, _ *schema.Schema) error {
	r.calls++
	r.program = p
	return nil
}

type recordingSink struct {
	errs []error
}

func (r *recordingSink) ParseError(err error) {
	r.errs = append(r.errs, err)
}

func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, kind, pe.Kind)
	return pe
}

func TestDefaultRoundTrip(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "flag", Short: "-f", Arity: schema.None()}),
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One(), Default: []string{"hello"}}),
		schema.Opt(schema.OptionSpec{Name: "pair", Short: "-p", Arity: schema.Many(2), Default: []string{"a", "b"}}),
	)

	res, err := New(testProgram, s).Parse(nil)
	require.NoError(t, err)

	assert.False(t, res.Bool("flag"))
	assert.Equal(t, "hello", res.String("word"))
	assert.Equal(t, []string{"a", "b"}, res.Strings("pair"))
	assert.False(t, res.Changed("word"))
	assert.False(t, res.Changed("pair"))
}

func TestEndToEnd(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "foo", Short: "-f", Arity: schema.None()}),
		schema.Opt(schema.OptionSpec{Name: "bar", Short: "-b", Arity: schema.One()}),
		schema.Opt(schema.OptionSpec{Name: "baz", Short: "-z", Arity: schema.Many(2)}),
		schema.Pos(schema.PositionalSpec{Name: "cux"}),
	)

	res, err := New(testProgram, s).Parse([]string{"-z", "a", "b", "-b", "x", "alpha"})
	require.NoError(t, err)

	assert.False(t, res.Bool("foo"))
	assert.Equal(t, "x", res.String("bar"))
	assert.Equal(t, []string{"a", "b"}, res.Strings("baz"))
	assert.Equal(t, "alpha", res.Positional("cux"))

	assert.True(t, res.Changed("bar"))
	assert.True(t, res.Changed("baz"))
	assert.False(t, res.Changed("foo"))
}

func TestOptionOrderIrrelevant(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "a", Short: "-a", Arity: schema.One()}),
		schema.Opt(schema.OptionSpec{Name: "b", Short: "-b", Arity: schema.One()}),
	)
	p := New(testProgram, s)

	r1, err := p.Parse([]string{"-a", "1", "-b", "2"})
	require.NoError(t, err)
	r2, err := p.Parse([]string{"-b", "2", "-a", "1"})
	require.NoError(t, err)

	assert.Equal(t, r1.Map(), r2.Map())
}

func TestArityManyAtomicity(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "triple", Short: "-t", Arity: schema.Many(3)}),
	)
	p := New(testProgram, s)

	res, err := p.Parse([]string{"-t", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Strings("triple"))

	res, err = p.Parse([]string{"-t", "a", "b"})
	pe := requireKind(t, err, MissingOptionArgument)
	assert.Equal(t, "triple", pe.Name)
	assert.Equal(t, 3, pe.Want)
	assert.Nil(t, res)
}

func TestMissingOptionArgumentForSingle(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One()}),
	)
	_, err := New(testProgram, s).Parse([]string{"-w"})
	pe := requireKind(t, err, MissingOptionArgument)
	assert.Equal(t, "word", pe.Name)
}

func TestPositionalLeftToRight(t *testing.T) {
	s := schema.MustNew(
		schema.Pos(schema.PositionalSpec{Name: "x"}),
		schema.Pos(schema.PositionalSpec{Name: "y"}),
		schema.Pos(schema.PositionalSpec{Name: "z"}),
	)
	res, err := New(testProgram, s).Parse([]string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, "1", res.Positional("x"))
	assert.Equal(t, "2", res.Positional("y"))
	assert.Equal(t, "3", res.Positional("z"))
}

func TestPositionalsConsumeAfterLastOptionMatch(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One()}),
		schema.Pos(schema.PositionalSpec{Name: "target"}),
	)

	// The unmatched "stray" before the option is skipped; positional
	// consumption begins after the last successful match.
	res, err := New(testProgram, s).Parse([]string{"stray", "-w", "v", "alpha"})
	require.NoError(t, err)
	assert.Equal(t, "v", res.String("word"))
	assert.Equal(t, "alpha", res.Positional("target"))
}

func TestMissingPositional(t *testing.T) {
	s := schema.MustNew(
		schema.Pos(schema.PositionalSpec{Name: "x"}),
		schema.Pos(schema.PositionalSpec{Name: "y"}),
	)
	_, err := New(testProgram, s).Parse([]string{"only"})
	pe := requireKind(t, err, MissingPositional)
	assert.Equal(t, "y", pe.Name)

	_, err = New(testProgram, s).Parse(nil)
	pe = requireKind(t, err, MissingPositional)
	assert.Equal(t, "x", pe.Name)
}

func TestRequiredEnforcement(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "out", Short: "-o", Arity: schema.One(), Required: true}),
	)
	p := New(testProgram, s)

	_, err := p.Parse(nil)
	pe := requireKind(t, err, MissingRequiredOption)
	assert.Equal(t, "out", pe.Name)

	res, err := p.Parse([]string{"-o", "file"})
	require.NoError(t, err)
	assert.Equal(t, "file", res.String("out"))
}

func TestConflictingOptions(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "quiet", Short: "-q", Arity: schema.None(), ConflictsWith: []string{"loud"}}),
		schema.Opt(schema.OptionSpec{Name: "loud", Short: "-l", Arity: schema.None()}),
	)
	p := New(testProgram, s)

	_, err := p.Parse([]string{"-q", "-l"})
	pe := requireKind(t, err, ConflictingOptions)
	assert.Equal(t, "quiet", pe.Name)
	assert.Equal(t, "loud", pe.Conflict)

	res, err := p.Parse([]string{"-q"})
	require.NoError(t, err)
	assert.True(t, res.Bool("quiet"))

	res, err = p.Parse([]string{"-l"})
	require.NoError(t, err)
	assert.True(t, res.Bool("loud"))
}

func TestPossibleValuesGate(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{
			Name: "mode", Short: "-m", Arity: schema.One(),
			PossibleValues: []string{"a", "b", "c"},
		}),
	)
	p := New(testProgram, s)

	_, err := p.Parse([]string{"-m", "z"})
	pe := requireKind(t, err, InvalidOptionArgument)
	assert.Equal(t, "mode", pe.Name)
	assert.Equal(t, "z", pe.Value)
	assert.Equal(t, []string{"a", "b", "c"}, pe.Allowed)

	res, err := p.Parse([]string{"-m", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", res.String("mode"))
}

func TestPossibleValuesGateForMany(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{
			Name: "pair", Short: "-p", Arity: schema.Many(2),
			PossibleValues: []string{"a", "b"},
		}),
	)
	// First invalid slot fails the whole claim.
	_, err := New(testProgram, s).Parse([]string{"-p", "a", "z"})
	pe := requireKind(t, err, InvalidOptionArgument)
	assert.Equal(t, "z", pe.Value)
}

func TestRepeatedOptionFailsByDefault(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One()}),
	)
	_, err := New(testProgram, s).Parse([]string{"-w", "a", "-w", "b"})
	pe := requireKind(t, err, RepeatedOption)
	assert.Equal(t, "word", pe.Name)
}

func TestAllowRepeatsOverwrites(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One()}),
	)
	res, err := New(testProgram, s, WithAllowRepeats()).Parse([]string{"-w", "a", "-w", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", res.String("word"))
}

func TestSlotClaimingIsUnconditionalByDefault(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "pair", Short: "-p", Arity: schema.Many(2)}),
		schema.Opt(schema.OptionSpec{Name: "flag", Short: "-f", Arity: schema.None()}),
	)
	// "-f" is swallowed as a value slot.
	res, err := New(testProgram, s).Parse([]string{"-p", "a", "-f"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "-f"}, res.Strings("pair"))
	assert.False(t, res.Bool("flag"))
}

func TestStrictSlotsRejectFlagLikeValues(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "pair", Short: "-p", Arity: schema.Many(2)}),
		schema.Opt(schema.OptionSpec{Name: "flag", Short: "-f", Arity: schema.None()}),
	)
	_, err := New(testProgram, s, WithStrictSlots()).Parse([]string{"-p", "a", "-f"})
	pe := requireKind(t, err, MissingOptionArgument)
	assert.Equal(t, "pair", pe.Name)
}

func TestPrefixMatchingIsDefault(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "force", Short: "-f", Arity: schema.None()}),
		schema.Pos(schema.PositionalSpec{Name: "target"}),
	)

	res, err := New(testProgram, s).Parse([]string{"-fxyz", "alpha"})
	require.NoError(t, err)
	assert.True(t, res.Bool("force"))
	assert.Equal(t, "alpha", res.Positional("target"))
}

func TestExactMatchingTreatsNearMissAsPositional(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "force", Short: "-f", Arity: schema.None()}),
		schema.Pos(schema.PositionalSpec{Name: "target"}),
	)

	res, err := New(testProgram, s, WithMatchMode(MatchExact)).Parse([]string{"-fxyz"})
	require.NoError(t, err)
	assert.False(t, res.Bool("force"))
	assert.Equal(t, "-fxyz", res.Positional("target"))
}

func TestHelpShortCircuits(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "out", Short: "-o", Arity: schema.One(), Required: true}),
		schema.Pos(schema.PositionalSpec{Name: "target"}),
	)
	renderer := &recordingRenderer{}
	p := New(testProgram, s, WithHelpRenderer(renderer))

	// Help wins anywhere in the stream, before required/positional
	// checks run.
	for _, tokens := range [][]string{
		{"-h"},
		{"--help"},
		{"-o", "x", "--help", "target"},
	} {
		res, err := p.Parse(tokens)
		assert.ErrorIs(t, err, ErrHelp, "tokens %v", tokens)
		assert.Nil(t, res)
	}
	assert.Equal(t, 3, renderer.calls)
	assert.Equal(t, testProgram, renderer.program)
}

func TestHelpWithoutRendererStillShortCircuits(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "flag", Short: "-f", Arity: schema.None()}),
	)
	_, err := New(testProgram, s).Parse([]string{"-h"})
	assert.ErrorIs(t, err, ErrHelp)
}

func TestErrorSinkReceivesFailures(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "out", Short: "-o", Arity: schema.One(), Required: true}),
	)
	sink := &recordingSink{}
	_, err := New(testProgram, s, WithErrorSink(sink)).Parse(nil)
	require.Error(t, err)

	require.Len(t, sink.errs, 1)
	assert.Equal(t, err, sink.errs[0])
}

func TestSharedSchemaAcrossParsers(t *testing.T) {
	s := schema.MustNew(
		schema.Opt(schema.OptionSpec{Name: "word", Short: "-w", Arity: schema.One(), Default: []string{"d"}}),
	)
	p := New(testProgram, s)

	res1, err := p.Parse([]string{"-w", "set"})
	require.NoError(t, err)
	res2, err := p.Parse(nil)
	require.NoError(t, err)

	// A parse never leaks state into the schema or later parses.
	assert.Equal(t, "set", res1.String("word"))
	assert.Equal(t, "d", res2.String("word"))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(&Error{Kind: RepeatedOption})
	require.True(t, ok)
	assert.Equal(t, RepeatedOption, kind)

	_, ok = KindOf(ErrHelp)
	assert.False(t, ok)
}
