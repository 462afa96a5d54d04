package lineiter

import (
	"bufio"
	"io"
)

// Source yields raw text lines in order.
// Implementations return io.EOF once no more lines are available and must
// keep returning an error after the first failure.
type Source interface {
	// Next returns the next raw line without its trailing newline.
	// Returns io.EOF when the source is exhausted.
	Next() (string, error)
}

// SliceSource is a Source backed by an in-memory slice of lines.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource creates a Source that yields the given lines in order.
func NewSliceSource(lines []string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next returns the next line from the slice, or io.EOF.
func (s *SliceSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// ReaderSource is a Source that splits an io.Reader into lines.
type ReaderSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource creates a Source reading lines from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return &ReaderSource{scanner: scanner}
}

// Next returns the next line from the reader.
// Returns io.EOF at end of input; read failures are returned as-is.
func (s *ReaderSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
