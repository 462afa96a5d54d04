// Package cli provides the command-line interface for linecursor.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linecursor/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linecursor",
		Short: "Stream text files line by line with filtering",
		Long: `Linecursor streams large text files line by line, keeping track of the
current position, while skipping lines you don't care about.

It supports:
  - Blank-line and comment filtering (configurable prefixes)
  - Regex keep-patterns
  - Resuming from a given position
  - Plain and gzip-compressed input (decided by extension or forced)

Output is plain text or JSON, with optional line positions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewReadCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
