// Package help renders usage, help and error text for a schema. It is
// the presentation side of the library: the parsing engine hands it
// structured data (program metadata plus the schema) and never formats
// text itself. Two renderers share one layout: Text writes plain,
// byte-stable output, Pterm writes a styled terminal screen.
package help

import (
	"fmt"
	"strings"

	"github.com/CliForge/argonaut/pkg/schema"
)

// UsageLine builds the one-line usage summary: program name, an
// [OPTIONS] placeholder when options exist, then the positional
// metavars in declaration order.
func UsageLine(p schema.Program, s *schema.Schema) string {
	parts := []string{p.Name}
	if len(s.Options()) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	for _, pos := range s.Positionals() {
		parts = append(parts, Metavar(pos.Metavar, pos.Name))
	}
	return strings.Join(parts, " ")
}

// OptionLine builds the summary line for one option: its forms, the
// metavar repeated per arity, and the default/possible/required/
// conflicts annotations.
func OptionLine(o *schema.OptionSpec) string {
	var b strings.Builder
	b.WriteString(Forms(o))

	if o.Arity.Kind != schema.ArityNone {
		mv := Metavar(o.Metavar, o.Name)
		for i := 0; i < o.Arity.Count; i++ {
			b.WriteString(" ")
			b.WriteString(mv)
		}
	}
	if len(o.Default) > 0 {
		fmt.Fprintf(&b, "  [default: %s]", strings.Join(o.Default, " "))
	}
	if len(o.PossibleValues) > 0 {
		fmt.Fprintf(&b, "  [possible: %s]", strings.Join(o.PossibleValues, "|"))
	}
	if o.Required {
		b.WriteString("  (required)")
	}
	if len(o.ConflictsWith) > 0 {
		fmt.Fprintf(&b, "  (conflicts: %s)", strings.Join(o.ConflictsWith, ", "))
	}
	return b.String()
}

// Forms joins the declared short and long forms, short first.
func Forms(o *schema.OptionSpec) string {
	switch {
	case o.Short != "" && o.Long != "":
		return o.Short + ", " + o.Long
	case o.Short != "":
		return o.Short
	default:
		return o.Long
	}
}

// Metavar returns the display placeholder: the declared metavar, or
// the upper-cased name when none was declared.
func Metavar(metavar, name string) string {
	if metavar != "" {
		return metavar
	}
	return strings.ToUpper(name)
}
