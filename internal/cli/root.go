// Package cli provides the Cobra command structure for gomdfmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdfmt",
		Short: "A CommonMark formatter for Markdown files",
		Long: `gomdfmt rewrites Markdown into normalized CommonMark.

It parses each document, then renders it back with minimal delimiters,
context-aware escaping, optional line wrapping and consistent blank lines.
Formatting is idempotent: running gomdfmt on its own output changes nothing.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch color {
			case "auto", "always", "never":
			default:
				return usageError("invalid --color %q: must be auto, always or never", color)
			}

			level := "info"
			if debug {
				level = "debug"
				logging.SetLevel(level)
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitInvalidUsage, Err: err}
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
