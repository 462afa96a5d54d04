package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"linecursor/pkg/config"
	"linecursor/pkg/linefile"
	"linecursor/pkg/lineiter"
	"linecursor/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ReadOptions holds command-line options for the read command.
type ReadOptions struct {
	Output        string
	ConfigPath    string
	Quiet         bool
	Verbose       bool
	ShowPositions bool
	Limit         int

	// Filter overrides
	SkipBlank       bool
	CommentPrefixes []string
	Pattern         string
	StartPosition   int
	Compression     string
}

// NewReadCommand creates the read command.
func NewReadCommand() *cobra.Command {
	opts := &ReadOptions{}

	cmd := &cobra.Command{
		Use:   "read <file>...",
		Short: "Stream files line by line through the filter",
		Long: `Read one or more text files line by line, skipping filtered lines.

Lines are trimmed and tracked by 0-based position; filtered-out lines
still advance the position, so emitted positions match the raw file.

Exit codes:
  0 - Lines were emitted
  1 - No lines survived the filter
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no lines")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show summary and timing after the lines")
	cmd.Flags().BoolVarP(&opts.ShowPositions, "positions", "p", false, "Prefix each line with its position")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Stop after this many emitted lines (0 = no limit)")

	cmd.Flags().BoolVar(&opts.SkipBlank, "skip-blank", true, "Skip blank lines")
	cmd.Flags().StringSliceVar(&opts.CommentPrefixes, "comment-prefix", []string{"#"}, "Comment prefix to skip (can be repeated)")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "Keep only lines matching this regex")
	cmd.Flags().IntVar(&opts.StartPosition, "start-position", -1, "Initial iterator position")
	cmd.Flags().StringVar(&opts.Compression, "compression", "auto", "Compression mode (auto|gzip|none)")

	return cmd
}

func runRead(cmd *cobra.Command, args []string, opts *ReadOptions) error {
	cfg, err := loadReadConfig(cmd, opts)
	if err != nil {
		return err
	}

	keep := cfg.Filter.Func()

	report := output.NewReport(args)
	started := report.Metadata.ReadAt

	for _, path := range args {
		skipped, err := readFile(path, cfg, keep, opts.Limit, report)
		if err != nil {
			return err
		}
		report.Summary.FilesRead++
		report.Summary.LinesSkipped += skipped
		if opts.Limit > 0 && report.Summary.LinesEmitted >= opts.Limit {
			break
		}
	}

	report.Metadata.Duration = time.Since(started)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.Empty() {
		ExitCode = 1
	}

	return nil
}

// readFile streams one file into the report, honoring the overall limit.
func readFile(path string, cfg *config.Config, keep lineiter.FilterFunc, limit int, report *output.Report) (skipped int, err error) {
	fileOpts := []linefile.Option{
		linefile.WithStartPosition(cfg.StartPosition),
		linefile.WithCompression(cfg.CompressionMode()),
	}
	if keep != nil {
		fileOpts = append(fileOpts, linefile.WithFilter(keep))
	}

	var emitted int
	err = linefile.With(path, func(it *lineiter.Iterator) error {
		for {
			if limit > 0 && report.Summary.LinesEmitted >= limit {
				return nil
			}
			line, err := it.Next()
			if errors.Is(err, io.EOF) {
				// Filtered-out lines advanced the position without being emitted.
				skipped = (it.Position() - cfg.StartPosition) - emitted
				return nil
			}
			if err != nil {
				return err
			}
			emitted++
			report.Add(output.Line{
				Text:     line,
				Position: it.Position(),
				Source:   path,
			})
		}
	}, fileOpts...)

	return skipped, err
}

// loadReadConfig merges the config file (or defaults) with flag overrides.
// Explicitly set flags win over config file values.
func loadReadConfig(cmd *cobra.Command, opts *ReadOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("skip-blank") {
		cfg.Filter.SkipBlank = opts.SkipBlank
	}
	if flags.Changed("comment-prefix") {
		cfg.Filter.CommentPrefixes = opts.CommentPrefixes
	}
	if flags.Changed("pattern") {
		cfg.Filter.Pattern = opts.Pattern
	}
	if flags.Changed("start-position") {
		cfg.StartPosition = opts.StartPosition
	}
	if flags.Changed("compression") {
		cfg.Compression = opts.Compression
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func createFormatter(opts *ReadOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose:       opts.Verbose,
		Quiet:         opts.Quiet,
		ShowPositions: opts.ShowPositions,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
