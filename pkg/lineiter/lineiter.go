// Package lineiter provides a resumable, peekable, position-tracking
// iterator over a sequence of text lines.
//
// The iterator trims each consumed line, tracks a 0-based position
// (-1 until the first line is consumed), supports single-line lookahead
// without consuming, forward jumps, and transparent skipping of
// uninteresting lines through a caller-supplied filter.
package lineiter

import (
	"errors"
	"io"
	"strings"
)

// FilterFunc reports whether a trimmed line should be kept.
type FilterFunc func(line string) bool

// Iterator reads lines from a Source one at a time.
// It owns the source exclusively and is not safe for concurrent use.
type Iterator struct {
	src    Source
	filter FilterFunc

	// Single-slot lookahead holding the next trimmed, unconsumed line.
	peeked    string
	hasPeeked bool

	current  string
	started  bool
	position int

	// Sticky source error; io.EOF once exhausted.
	err error
}

// Option configures an Iterator.
type Option func(*Iterator)

// WithStartPosition sets the initial position.
// Useful when resuming in the middle of a file. Defaults to -1,
// meaning no line has been consumed yet.
func WithStartPosition(pos int) Option {
	return func(it *Iterator) {
		it.position = pos
	}
}

// WithFilter sets a standing filter applied by every consuming call.
// Lines rejected by keep are skipped transparently, but still advance
// the position.
func WithFilter(keep FilterFunc) Option {
	return func(it *Iterator) {
		it.filter = keep
	}
}

// New creates an Iterator over src.
func New(src Source, opts ...Option) *Iterator {
	it := &Iterator{
		src:      src,
		position: -1,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// pull fetches one raw line from the source, latching any error so that
// exhaustion and read failures are sticky.
func (it *Iterator) pull() (string, error) {
	if it.err != nil {
		return "", it.err
	}
	line, err := it.src.Next()
	if err != nil {
		it.err = err
		return "", err
	}
	return line, nil
}

// next consumes exactly one raw line, ignoring the standing filter.
// The line is trimmed, recorded as the current line, and the position
// advances by one.
func (it *Iterator) next() (string, error) {
	var line string
	if it.hasPeeked {
		line = it.peeked
		it.hasPeeked = false
	} else {
		var err error
		line, err = it.pull()
		if err != nil {
			return "", err
		}
	}
	it.current = strings.TrimSpace(line)
	it.started = true
	it.position++
	return it.current, nil
}

// Next returns the next line, trimmed.
// When a standing filter is set, rejected lines are skipped silently;
// the position still counts them. Returns io.EOF once the source is
// exhausted, including while searching for a line the filter keeps.
func (it *Iterator) Next() (string, error) {
	if it.filter == nil {
		return it.next()
	}
	for {
		line, err := it.next()
		if err != nil {
			return "", err
		}
		if it.filter(line) {
			return line, nil
		}
	}
}

// NextMatching consumes lines until keep accepts one and returns it.
// The predicate applies only to this call and stacks on top of the
// standing filter, which still runs underneath. Returns io.EOF if the
// source drains before a match; the position reflects every line
// examined along the way.
func (it *Iterator) NextMatching(keep FilterFunc) (string, error) {
	for {
		line, err := it.Next()
		if err != nil {
			return "", err
		}
		if keep(line) {
			return line, nil
		}
	}
}

// NextMatchingOr is NextMatching with a fallback: exhaustion returns def
// instead of io.EOF. Other errors still propagate.
func (it *Iterator) NextMatchingOr(keep FilterFunc, def string) (string, error) {
	line, err := it.NextMatching(keep)
	if errors.Is(err, io.EOF) {
		return def, nil
	}
	return line, err
}

// Peek returns the next line, trimmed, without consuming it.
// Neither the position nor the current line changes, and the standing
// filter is not applied. Repeated peeks return the same line until a
// consuming call takes it.
func (it *Iterator) Peek() (string, error) {
	if !it.hasPeeked {
		line, err := it.pull()
		if err != nil {
			return "", err
		}
		it.peeked = strings.TrimSpace(line)
		it.hasPeeked = true
	}
	return it.peeked, nil
}

// PeekOr is Peek with a fallback: exhaustion returns def instead of
// io.EOF. Other errors still propagate.
func (it *Iterator) PeekOr(def string) (string, error) {
	line, err := it.Peek()
	if errors.Is(err, io.EOF) {
		return def, nil
	}
	return line, err
}

// Jump advances n lines and returns the line landed on.
// The standing filter is ignored: every raw line counts as one step, so
// the position advances by exactly n. n must be at least 1; otherwise
// ErrJumpBackward is returned and nothing changes.
func (it *Iterator) Jump(n int) (string, error) {
	if n < 1 {
		return "", ErrJumpBackward
	}
	for i := 0; i < n-1; i++ {
		if _, err := it.next(); err != nil {
			return "", err
		}
	}
	return it.next()
}

// IsEmpty reports whether the iterator has no further lines.
// It never consumes a line; a latched read failure also counts as empty
// and resurfaces on the next consuming call.
func (it *Iterator) IsEmpty() bool {
	_, err := it.Peek()
	return err != nil
}

// CurrentLine returns the last consumed line, trimmed.
// Returns ErrNotStarted if nothing has been consumed yet.
func (it *Iterator) CurrentLine() (string, error) {
	if !it.started {
		return "", ErrNotStarted
	}
	return it.current, nil
}

// Position returns the 0-based position of the last consumed line,
// or the start position (-1 by default) before the first consume.
func (it *Iterator) Position() int {
	return it.position
}
