package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"linecursor/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a linecursor configuration file without reading any input.

Checks:
  - YAML syntax
  - Compression mode
  - Start position range
  - Filter regex validity
  - Comment prefixes`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Start position:   %d\n", cfg.StartPosition)
	fmt.Fprintf(w, "  Compression:      %s\n", cfg.Compression)
	fmt.Fprintf(w, "  Skip blank lines: %v\n", cfg.Filter.SkipBlank)

	if len(cfg.Filter.CommentPrefixes) > 0 {
		fmt.Fprintf(w, "  Comment prefixes: %s\n", strings.Join(cfg.Filter.CommentPrefixes, ", "))
	}
	if cfg.Filter.Pattern != "" {
		fmt.Fprintf(w, "  Keep pattern:     %s\n", cfg.Filter.Pattern)
	}
	if !cfg.Filter.Active() {
		fmt.Fprintf(w, "\nWarning: filter is inactive, every line will be emitted\n")
	}

	return nil
}
