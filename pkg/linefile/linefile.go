// Package linefile opens plain or gzip-compressed text files for line
// iteration, guaranteeing the underlying handle is closed and that
// failures escaping a read are annotated with the file position.
package linefile

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"linecursor/pkg/lineiter"
)

// Compression selects how a file is decoded.
type Compression string

const (
	// CompressionAuto decides by file extension: ".gz" means gzip.
	CompressionAuto Compression = "auto"
	// CompressionGzip always decompresses with gzip.
	CompressionGzip Compression = "gzip"
	// CompressionNone always reads the file as plain text.
	CompressionNone Compression = "none"
)

// Valid reports whether c is a known compression mode.
func (c Compression) Valid() bool {
	switch c {
	case CompressionAuto, CompressionGzip, CompressionNone:
		return true
	}
	return false
}

// File is an open text file wrapped in a line iterator.
// It retains the handle so Close can release it regardless of how far
// the iterator was driven.
type File struct {
	path       string
	mode       Compression
	startPos   int
	filter     lineiter.FilterFunc
	compressed bool

	f  *os.File
	gz *gzip.Reader
	it *lineiter.Iterator
}

// Option configures how a File is opened.
type Option func(*File)

// WithStartPosition sets the iterator's initial position (default -1).
func WithStartPosition(pos int) Option {
	return func(lf *File) {
		lf.startPos = pos
	}
}

// WithFilter sets a standing filter on the iterator.
func WithFilter(keep lineiter.FilterFunc) Option {
	return func(lf *File) {
		lf.filter = keep
	}
}

// WithCompression sets the compression mode (default CompressionAuto).
func WithCompression(mode Compression) Option {
	return func(lf *File) {
		lf.mode = mode
	}
}

// Open opens the file at path and builds a line iterator over its
// contents, decompressing with gzip when the resolved mode calls for it.
func Open(path string, opts ...Option) (*File, error) {
	lf := &File{
		path:     path,
		mode:     CompressionAuto,
		startPos: -1,
	}
	for _, opt := range opts {
		opt(lf)
	}

	if !lf.mode.Valid() {
		return nil, fmt.Errorf("invalid compression mode %q (use auto, gzip, or none)", lf.mode)
	}

	lf.compressed = lf.mode == CompressionGzip
	if lf.mode == CompressionAuto {
		lf.compressed = filepath.Ext(path) == ".gz"
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	lf.f = f

	var r io.Reader = f
	if lf.compressed {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		lf.gz = gz
		r = gz
	}

	iterOpts := []lineiter.Option{lineiter.WithStartPosition(lf.startPos)}
	if lf.filter != nil {
		iterOpts = append(iterOpts, lineiter.WithFilter(lf.filter))
	}
	lf.it = lineiter.New(lineiter.NewReaderSource(r), iterOpts...)

	return lf, nil
}

// Iter returns the line iterator over the file's contents.
func (lf *File) Iter() *lineiter.Iterator {
	return lf.it
}

// Path returns the path the file was opened with.
func (lf *File) Path() string {
	return lf.path
}

// Compressed reports whether the file is being read through gzip.
func (lf *File) Compressed() bool {
	return lf.compressed
}

// Close releases the gzip stream, if any, and the file handle.
func (lf *File) Close() error {
	var gzErr error
	if lf.gz != nil {
		gzErr = lf.gz.Close()
		lf.gz = nil
	}
	if lf.f != nil {
		err := lf.f.Close()
		lf.f = nil
		if err != nil {
			return err
		}
	}
	return gzErr
}

// Annotate wraps err with the file path and the iterator's current
// position. The original error remains visible to errors.Is/As.
// A nil err stays nil.
func (lf *File) Annotate(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("Error reading %s at line=%d: %w", lf.path, lf.it.Position(), err)
}

// With opens path, hands the iterator to fn, and closes the file on
// every exit path. A failure returned by fn comes back annotated with
// the path and final position. When fn succeeds, a close failure is
// returned instead.
func With(path string, fn func(*lineiter.Iterator) error, opts ...Option) error {
	lf, err := Open(path, opts...)
	if err != nil {
		return err
	}
	err = fn(lf.it)
	closeErr := lf.Close()
	if err != nil {
		return lf.Annotate(err)
	}
	return closeErr
}
