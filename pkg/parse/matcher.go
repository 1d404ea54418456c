package parse

import (
	"strings"

	"github.com/CliForge/argonaut/pkg/schema"
)

// MatchMode selects how a token is tested against an option's declared
// forms.
type MatchMode int

const (
	// MatchPrefix accepts a token when a declared short or long form
	// is a prefix of it. This is the reference behavior: "-f" matches
	// "-f" but also "-fxyz". The ambiguity this allows is deliberate
	// and documented; use MatchExact to rule it out.
	MatchPrefix MatchMode = iota
	// MatchExact accepts a token only when it equals a declared form.
	MatchExact
)

// matcher classifies tokens against a schema's options. Options are
// tested in declaration order; the first spec whose short or long form
// matches wins. Positionals are never matched by scanning.
type matcher struct {
	options []*schema.OptionSpec
	mode    MatchMode
}

func newMatcher(s *schema.Schema, mode MatchMode) matcher {
	return matcher{options: s.Options(), mode: mode}
}

// match returns the first option whose short or long form matches the
// token under the configured mode, or nil.
func (m matcher) match(token string) *schema.OptionSpec {
	for _, o := range m.options {
		if m.matchesForm(token, o.Short) || m.matchesForm(token, o.Long) {
			return o
		}
	}
	return nil
}

// matchesAny reports whether the token matches any declared option
// form. Used by strict slot checking.
func (m matcher) matchesAny(token string) bool {
	return m.match(token) != nil
}

func (m matcher) matchesForm(token, form string) bool {
	if form == "" {
		return false
	}
	if m.mode == MatchExact {
		return token == form
	}
	return strings.HasPrefix(token, form)
}

// isHelpToken reports whether the token triggers the built-in help
// short circuit. Help detection is always prefix-based ("-h" or
// "--help" as a token prefix), independent of the match mode; this is
// part of the fixed CLI surface.
func isHelpToken(token string) bool {
	return strings.HasPrefix(token, "-h") || strings.HasPrefix(token, "--help")
}
