// Package main implements the argonaut schema tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Version is set at build time
	version = "0.3.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "argonaut",
		Short: "Argonaut - validate, preview and exercise CLI schemas",
		Long: `Argonaut works with declarative command-line schemas (YAML or JSON):
validate them, preview the help screen a consumer would see, and try
parsing argument lists against them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("no-color") {
				pterm.DisableColor()
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Accept snake_case spellings of flags
	cmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	viper.SetEnvPrefix("ARGONAUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("no-color", cmd.PersistentFlags().Lookup("no-color"))

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newTryCmd())

	return cmd
}
