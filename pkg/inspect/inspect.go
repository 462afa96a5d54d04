// Package inspect samples text files and reports how their lines would
// classify under blank/comment filtering.
package inspect

import (
	"errors"
	"io"
	"strings"

	"linecursor/pkg/linefile"
)

// Result holds the outcome of sampling a file.
type Result struct {
	// Path is the file that was inspected.
	Path string

	// Compressed reports whether the file was read through gzip.
	Compressed bool

	// SampledLines is the number of lines examined.
	SampledLines int

	// BlankLines counts lines that are empty after trimming.
	BlankLines int

	// CommentLines counts lines starting with a comment prefix.
	CommentLines int

	// DataLines counts everything else.
	DataLines int

	// FirstDataLine is the first non-blank, non-comment line, if any.
	FirstDataLine string

	// FirstDataPosition is the position of FirstDataLine, or -1.
	FirstDataPosition int

	// Truncated reports that the sample limit was hit before end of file.
	Truncated bool
}

// Inspector samples files line by line.
type Inspector struct {
	sampleSize      int
	commentPrefixes []string
	compression     linefile.Compression
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(ins *Inspector) {
		if n > 0 {
			ins.sampleSize = n
		}
	}
}

// WithCommentPrefixes sets the prefixes that mark a comment line
// (default "#").
func WithCommentPrefixes(prefixes []string) Option {
	return func(ins *Inspector) {
		if len(prefixes) > 0 {
			ins.commentPrefixes = prefixes
		}
	}
}

// WithCompression sets the compression mode used to open files
// (default auto).
func WithCompression(mode linefile.Compression) Option {
	return func(ins *Inspector) {
		ins.compression = mode
	}
}

// New creates an Inspector with default settings.
func New(opts ...Option) *Inspector {
	ins := &Inspector{
		sampleSize:      100,
		commentPrefixes: []string{"#"},
		compression:     linefile.CompressionAuto,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// File samples up to the configured number of lines from path and
// classifies each one. Lines are walked unfiltered so the counts match
// raw file positions.
func (ins *Inspector) File(path string) (*Result, error) {
	lf, err := linefile.Open(path, linefile.WithCompression(ins.compression))
	if err != nil {
		return nil, err
	}
	defer lf.Close()

	result := &Result{
		Path:              path,
		Compressed:        lf.Compressed(),
		FirstDataPosition: -1,
	}

	it := lf.Iter()
	for result.SampledLines < ins.sampleSize {
		line, err := it.Next()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return nil, lf.Annotate(err)
		}

		result.SampledLines++
		switch ins.classify(line) {
		case classBlank:
			result.BlankLines++
		case classComment:
			result.CommentLines++
		default:
			result.DataLines++
			if result.FirstDataPosition < 0 {
				result.FirstDataLine = line
				result.FirstDataPosition = it.Position()
			}
		}
	}

	result.Truncated = !it.IsEmpty()
	return result, nil
}

type lineClass int

const (
	classData lineClass = iota
	classBlank
	classComment
)

func (ins *Inspector) classify(line string) lineClass {
	if line == "" {
		return classBlank
	}
	for _, prefix := range ins.commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return classComment
		}
	}
	return classData
}
