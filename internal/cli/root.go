// Package cli provides the command-line interface for huelab.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/huelab/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the huelab command tree. Constructing a fresh tree per
// call keeps flag state isolated, which the CLI tests rely on.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "huelab",
		Short: "A colour-theory palette generator",
		Long: `Huelab is a colour-theory engine for the terminal: it derives
multi-colour palettes from a base colour and a scheme, checks and adjusts
them for WCAG contrast compliance, previews colour-vision deficiencies,
derives light/dark variants, extracts dominant colours from images, and
exports the result as CSS, QSS, Tailwind config, JSON or SVG.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from the persistent verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "huelab",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
