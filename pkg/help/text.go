package help

import (
	"fmt"
	"io"

	"github.com/CliForge/argonaut/pkg/schema"
)

// Text renders help as plain, uncolored text. Its output is byte
// stable, which makes it the renderer of choice for tests and for
// non-terminal sinks.
type Text struct {
	out io.Writer
}

// NewText creates a plain-text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{out: w}
}

// RenderHelp writes the full help screen: header, USAGE block, an
// ARGUMENTS block when positionals exist, and the OPTIONS block with
// the implicit --help entry last.
func (t *Text) RenderHelp(p schema.Program, s *schema.Schema) error {
	fmt.Fprintf(t.out, "%s %s\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintln(t.out, p.Description)
	}

	fmt.Fprintf(t.out, "\nUSAGE:\n    %s\n", UsageLine(p, s))

	if len(s.Positionals()) > 0 {
		fmt.Fprintf(t.out, "\nARGUMENTS:\n")
		for _, pos := range s.Positionals() {
			fmt.Fprintf(t.out, "    %s\n", Metavar(pos.Metavar, pos.Name))
			if pos.Description != "" {
				fmt.Fprintf(t.out, "        %s\n", pos.Description)
			}
		}
	}

	fmt.Fprintf(t.out, "\nOPTIONS:\n")
	for _, o := range s.Options() {
		fmt.Fprintf(t.out, "    %s\n", OptionLine(o))
		if o.Description != "" {
			fmt.Fprintf(t.out, "        %s\n", o.Description)
		}
	}
	fmt.Fprintf(t.out, "    -h, --help\n        print this help and exit\n")

	return nil
}
