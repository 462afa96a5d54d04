package output

import (
	"context"
	"io"
)

// Formatter renders a read report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds source and timing metadata to the output.
	Verbose bool

	// Quiet restricts output to the summary.
	Quiet bool

	// ShowPositions prefixes each line with its position.
	ShowPositions bool
}
