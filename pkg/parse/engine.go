// Package parse implements the schema-driven parsing engine: a single
// left-to-right pass over an in-memory token list that interleaves
// option matching with positional consumption, applies defaults, and
// enforces required and conflict rules. The engine is synchronous and
// keeps no state between parses; a Parser may be shared by concurrent
// parses because the schema it holds is immutable.
package parse

import (
	"github.com/CliForge/argonaut/pkg/schema"
)

// Parser binds a validated schema and program metadata to a parsing
// configuration.
type Parser struct {
	program schema.Program
	schema  *schema.Schema
	cfg     config
	m       matcher
}

// New creates a parser for the given program and schema. The schema
// must already be validated (schema.New/MustNew guarantee this).
func New(program schema.Program, s *schema.Schema, opts ...Option) *Parser {
	cfg := config{mode: MatchPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		program: program,
		schema:  s,
		cfg:     cfg,
		m:       newMatcher(s, cfg.mode),
	}
}

// Parse consumes the token list (program name already stripped) and
// returns the typed result, ErrHelp if a help token was seen, or a
// structured *Error. On failure no result is returned; the engine
// never substitutes defaults for bad input and never exits the
// process.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	res := newResult(p.schema)
	claimed := make(map[string]bool)

	// boundary is the cursor position reached after the last
	// successful option match; positional consumption starts there.
	boundary := 0

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if isHelpToken(tok) {
			if p.cfg.help != nil {
				_ = p.cfg.help.RenderHelp(p.program, p.schema)
			}
			return nil, ErrHelp
		}

		opt := p.m.match(tok)
		if opt == nil {
			// Provisionally a positional candidate.
			i++
			continue
		}

		if claimed[opt.Name] && !p.cfg.allowRepeats {
			return nil, p.fail(&Error{Kind: RepeatedOption, Name: opt.Name})
		}

		switch opt.Arity.Kind {
		case schema.ArityNone:
			res.setBool(opt.Name, true)
			claimed[opt.Name] = true
			i++

		case schema.ArityOne:
			val, err := p.claimValues(opt, tokens, i, 1)
			if err != nil {
				return nil, p.fail(err)
			}
			res.setString(opt.Name, val[0])
			claimed[opt.Name] = true
			i += 2

		case schema.ArityMany:
			n := opt.Arity.Count
			vals, err := p.claimValues(opt, tokens, i, n)
			if err != nil {
				return nil, p.fail(err)
			}
			res.setStrings(opt.Name, vals)
			claimed[opt.Name] = true
			i += n + 1
		}
		boundary = i
	}

	// Positionals bind to the unclaimed tail, left to right in
	// declaration order.
	j := boundary
	for _, pos := range p.schema.Positionals() {
		if j >= len(tokens) {
			return nil, p.fail(&Error{Kind: MissingPositional, Name: pos.Name})
		}
		res.setString(pos.Name, tokens[j])
		j++
	}

	for _, o := range p.schema.Options() {
		if o.Required && !claimed[o.Name] {
			return nil, p.fail(&Error{Kind: MissingRequiredOption, Name: o.Name})
		}
	}

	for _, o := range p.schema.Options() {
		if !claimed[o.Name] {
			continue
		}
		for _, other := range o.ConflictsWith {
			if claimed[other] {
				return nil, p.fail(&Error{Kind: ConflictingOptions, Name: o.Name, Conflict: other})
			}
		}
	}

	return res, nil
}

// claimValues claims exactly n tokens following the match at position
// i. Claiming is atomic: either all n slots are taken or the parse
// fails. Under strict slots a candidate that matches a known option
// form aborts the claim.
func (p *Parser) claimValues(opt *schema.OptionSpec, tokens []string, i, n int) ([]string, error) {
	if len(tokens)-i-1 < n {
		return nil, &Error{Kind: MissingOptionArgument, Name: opt.Name, Want: n}
	}
	vals := make([]string, n)
	for k := 0; k < n; k++ {
		tok := tokens[i+1+k]
		if p.cfg.strictSlots && p.m.matchesAny(tok) {
			return nil, &Error{Kind: MissingOptionArgument, Name: opt.Name, Want: n}
		}
		if opt.PossibleValues != nil && !containsValue(opt.PossibleValues, tok) {
			return nil, &Error{
				Kind:    InvalidOptionArgument,
				Name:    opt.Name,
				Value:   tok,
				Allowed: opt.PossibleValues,
			}
		}
		vals[k] = tok
	}
	return vals, nil
}

func (p *Parser) fail(err error) error {
	if p.cfg.sink != nil {
		p.cfg.sink.ParseError(err)
	}
	return err
}

func containsValue(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
