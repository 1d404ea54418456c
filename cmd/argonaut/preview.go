package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CliForge/argonaut/pkg/help"
	"github.com/CliForge/argonaut/pkg/schema"
)

func newPreviewCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "preview <schema-file>",
		Short: "Render the help screen for a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			if plain || viper.GetBool("no-color") {
				return help.NewText(os.Stdout).RenderHelp(f.Program, f.Schema)
			}
			return help.NewPterm().RenderHelp(f.Program, f.Schema)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Render without terminal styling")

	return cmd
}
