package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/CliForge/argonaut/pkg/schema"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema-file>",
		Short: "Validate a schema document",
		Long: `Validate a declarative schema document.

This command checks:
  - Document syntax (YAML or JSON) and arity spellings
  - Option and positional naming rules
  - Default/required/possible-values consistency per arity
  - Conflict references`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				var verrs schema.ValidationErrors
				if errors.As(err, &verrs) {
					pterm.Error.Printfln("%s: %d problem(s) found", args[0], len(verrs))
					for _, ve := range verrs {
						pterm.Printfln("  - %s: %s", ve.Field, ve.Message)
					}
					return fmt.Errorf("schema validation failed")
				}
				return err
			}

			pterm.Success.Printfln("%s: schema is valid (%d options, %d positionals)",
				args[0], len(f.Schema.Options()), len(f.Schema.Positionals()))
			return nil
		},
	}

	return cmd
}
