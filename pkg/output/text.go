package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatSummary(report, w)
	}

	for _, line := range report.Lines {
		if f.opts.ShowPositions {
			fmt.Fprintf(w, "%d: %s\n", line.Position, line.Text)
		} else {
			fmt.Fprintln(w, line.Text)
		}
	}

	if f.opts.Verbose {
		fmt.Fprintln(w, "---")
		if err := f.formatSummary(report, w); err != nil {
			return err
		}
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatSummary(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%d file(s) read, %d line(s) emitted, %d skipped\n",
		report.Summary.FilesRead,
		report.Summary.LinesEmitted,
		report.Summary.LinesSkipped)
	return nil
}
