package parse

import "github.com/CliForge/argonaut/pkg/schema"

// HelpRenderer is the presentation collaborator invoked when a help
// token short-circuits a parse. The engine supplies structured data
// only; formatting and coloring belong to the implementation.
type HelpRenderer interface {
	RenderHelp(program schema.Program, s *schema.Schema) error
}

// ErrorSink receives parse failures for human-readable rendering. The
// error is always also returned to the caller; the sink is a gated
// side effect, not the propagation path.
type ErrorSink interface {
	ParseError(err error)
}

// Option configures a Parser.
type Option func(*config)

type config struct {
	mode         MatchMode
	strictSlots  bool
	allowRepeats bool
	help         HelpRenderer
	sink         ErrorSink
}

// WithMatchMode selects prefix or exact token matching. The default is
// MatchPrefix.
func WithMatchMode(m MatchMode) Option {
	return func(c *config) { c.mode = m }
}

// WithStrictSlots makes value claiming reject a candidate token that
// itself matches a known option form, failing the parse with
// MissingOptionArgument. By default value tokens are claimed
// unconditionally.
func WithStrictSlots() Option {
	return func(c *config) { c.strictSlots = true }
}

// WithAllowRepeats makes a repeated option overwrite its earlier value
// instead of failing with RepeatedOption.
func WithAllowRepeats() Option {
	return func(c *config) { c.allowRepeats = true }
}

// WithHelpRenderer installs the collaborator invoked on a help token.
// Without one, help requests still short-circuit with ErrHelp but
// nothing is printed.
func WithHelpRenderer(r HelpRenderer) Option {
	return func(c *config) { c.help = r }
}

// WithErrorSink installs a diagnostic sink for parse failures.
func WithErrorSink(s ErrorSink) Option {
	return func(c *config) { c.sink = s }
}
