package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"linecursor/pkg/inspect"
	"linecursor/pkg/linefile"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	SampleSize      int
	CommentPrefixes []string
	Compression     string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Sample a file and report its line composition",
		Long: `Sample the beginning of a file and report how its lines classify:
blank, comment, or data. Useful for checking what a filter would skip
before streaming the whole file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100, "Number of lines to sample")
	cmd.Flags().StringSliceVar(&opts.CommentPrefixes, "comment-prefix", []string{"#"}, "Comment prefix (can be repeated)")
	cmd.Flags().StringVar(&opts.Compression, "compression", "auto", "Compression mode (auto|gzip|none)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	path := args[0]

	mode := linefile.Compression(opts.Compression)
	if !mode.Valid() {
		return fmt.Errorf("invalid compression mode %q (use auto, gzip, or none)", opts.Compression)
	}

	ins := inspect.New(
		inspect.WithSampleSize(opts.SampleSize),
		inspect.WithCommentPrefixes(opts.CommentPrefixes),
		inspect.WithCompression(mode),
	)

	result, err := ins.File(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Inspecting %s...\n\n", path)
	fmt.Fprintf(w, "  Compressed:    %v\n", result.Compressed)

	sampled := fmt.Sprintf("%d", result.SampledLines)
	if result.Truncated {
		sampled += " (more lines follow)"
	}
	fmt.Fprintf(w, "  Lines sampled: %s\n", sampled)
	fmt.Fprintf(w, "  Blank:         %d\n", result.BlankLines)
	fmt.Fprintf(w, "  Comments:      %d\n", result.CommentLines)
	fmt.Fprintf(w, "  Data:          %d\n", result.DataLines)

	if result.FirstDataPosition >= 0 {
		fmt.Fprintf(w, "\nFirst data line (position %d):\n  %s\n", result.FirstDataPosition, result.FirstDataLine)
	} else {
		fmt.Fprintf(w, "\nNo data lines in sample\n")
	}

	return nil
}
