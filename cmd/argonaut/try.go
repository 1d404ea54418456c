package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CliForge/argonaut/pkg/help"
	"github.com/CliForge/argonaut/pkg/parse"
	"github.com/CliForge/argonaut/pkg/schema"
)

func newTryCmd() *cobra.Command {
	var (
		exact        bool
		strictSlots  bool
		allowRepeats bool
	)

	cmd := &cobra.Command{
		Use:   "try <schema-file> [args...]",
		Short: "Parse an argument list against a schema",
		Long: `Parse an argument list against a schema document and print the typed
result as YAML, or the structured parse error.

Tool flags must come before the schema file; everything after it is
handed to the engine untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			var opts []parse.Option
			if exact {
				opts = append(opts, parse.WithMatchMode(parse.MatchExact))
			}
			if strictSlots {
				opts = append(opts, parse.WithStrictSlots())
			}
			if allowRepeats {
				opts = append(opts, parse.WithAllowRepeats())
			}
			opts = append(opts,
				parse.WithHelpRenderer(help.NewPterm()),
				parse.WithErrorSink(help.NewDiag(os.Stderr)),
			)

			res, err := parse.New(f.Program, f.Schema, opts...).Parse(args[1:])
			if errors.Is(err, parse.ErrHelp) {
				return nil
			}
			if err != nil {
				if kind, ok := parse.KindOf(err); ok {
					return fmt.Errorf("%s: %w", kind, err)
				}
				return err
			}

			out, err := yaml.Marshal(res.Map())
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	// Keep engine tokens out of our own flag parsing.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&exact, "exact", false, "Match option forms exactly instead of by prefix")
	cmd.Flags().BoolVar(&strictSlots, "strict-slots", false, "Reject value tokens that match another option")
	cmd.Flags().BoolVar(&allowRepeats, "allow-repeats", false, "Let repeated options overwrite instead of failing")

	return cmd
}
