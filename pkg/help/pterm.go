package help

import (
	"github.com/pterm/pterm"

	"github.com/CliForge/argonaut/pkg/schema"
)

// Pterm renders the same help layout as Text, styled for terminals:
// bold cyan section headers, gray descriptions.
type Pterm struct {
	section *pterm.Style
	dim     *pterm.Style
}

// NewPterm creates a styled terminal renderer. Output goes through
// pterm's default writer; callers that need to disable color entirely
// should call pterm.DisableColor or use the Text renderer.
func NewPterm() *Pterm {
	return &Pterm{
		section: pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
		dim:     pterm.NewStyle(pterm.FgGray),
	}
}

// RenderHelp writes the styled help screen.
func (r *Pterm) RenderHelp(p schema.Program, s *schema.Schema) error {
	pterm.NewStyle(pterm.Bold).Printfln("%s %s", p.Name, p.Version)
	if p.Description != "" {
		pterm.Println(p.Description)
	}

	pterm.Println()
	r.section.Println("USAGE:")
	pterm.Printfln("    %s", UsageLine(p, s))

	if len(s.Positionals()) > 0 {
		pterm.Println()
		r.section.Println("ARGUMENTS:")
		for _, pos := range s.Positionals() {
			pterm.Printfln("    %s", Metavar(pos.Metavar, pos.Name))
			if pos.Description != "" {
				r.dim.Printfln("        %s", pos.Description)
			}
		}
	}

	pterm.Println()
	r.section.Println("OPTIONS:")
	for _, o := range s.Options() {
		pterm.Printfln("    %s", OptionLine(o))
		if o.Description != "" {
			r.dim.Printfln("        %s", o.Description)
		}
	}
	pterm.Printfln("    -h, --help")
	r.dim.Printfln("        print this help and exit")

	return nil
}
