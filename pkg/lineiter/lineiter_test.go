package lineiter

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// isData keeps non-blank lines that are not "#" comments.
func isData(line string) bool {
	return len(line) > 0 && line[0] != '#'
}

func collect(t *testing.T, it *Iterator) []string {
	t.Helper()

	var lines []string
	for {
		line, err := it.Next()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestNext_OrderAndPositions(t *testing.T) {
	input := []string{"a", "b", "c"}
	it := New(NewSliceSource(input))

	if it.Position() != -1 {
		t.Errorf("initial Position() = %d, want -1", it.Position())
	}

	for i, want := range input {
		line, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if line != want {
			t.Errorf("Next() = %q, want %q", line, want)
		}
		if it.Position() != i {
			t.Errorf("Position() = %d, want %d", it.Position(), i)
		}
	}

	if _, err := it.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after exhaustion error = %v, want io.EOF", err)
	}
}

func TestNext_TrimsWhitespace(t *testing.T) {
	it := New(NewSliceSource([]string{"  padded \t", "\tx\n"}))

	line, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "padded" {
		t.Errorf("Next() = %q, want %q", line, "padded")
	}

	line, err = it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "x" {
		t.Errorf("Next() = %q, want %q", line, "x")
	}
}

func TestNext_StickyExhaustion(t *testing.T) {
	it := New(NewSliceSource([]string{"only"}))

	if _, err := it.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := it.Next(); !errors.Is(err, io.EOF) {
			t.Errorf("Next() call %d after exhaustion error = %v, want io.EOF", i, err)
		}
	}
	if _, err := it.Peek(); !errors.Is(err, io.EOF) {
		t.Errorf("Peek() after exhaustion error = %v, want io.EOF", err)
	}
	if it.Position() != 0 {
		t.Errorf("Position() = %d, want 0", it.Position())
	}
}

func TestNext_StandingFilterSkipsAndCountsPositions(t *testing.T) {
	it := New(
		NewSliceSource([]string{"Hello", "", "# comment", "World", "How", "are", "you?"}),
		WithFilter(isData),
	)

	line, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "Hello" || it.Position() != 0 {
		t.Errorf("first Next() = %q at %d, want %q at 0", line, it.Position(), "Hello")
	}

	// Skips the blank line and the comment, counting both.
	line, err = it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "World" || it.Position() != 3 {
		t.Errorf("second Next() = %q at %d, want %q at 3", line, it.Position(), "World")
	}

	current, err := it.CurrentLine()
	if err != nil {
		t.Fatalf("CurrentLine() error = %v", err)
	}
	if current != "World" {
		t.Errorf("CurrentLine() = %q, want %q", current, "World")
	}

	line, err = it.Jump(3)
	if err != nil {
		t.Fatalf("Jump(3) error = %v", err)
	}
	if line != "you?" || it.Position() != 6 {
		t.Errorf("Jump(3) = %q at %d, want %q at 6", line, it.Position(), "you?")
	}

	if !it.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}

	line, err = it.PeekOr("default")
	if err != nil {
		t.Fatalf("PeekOr() error = %v", err)
	}
	if line != "default" {
		t.Errorf("PeekOr() = %q, want %q", line, "default")
	}
}

func TestNext_FilterExhaustionPropagates(t *testing.T) {
	it := New(
		NewSliceSource([]string{"", "# no", "", "# data"}),
		WithFilter(isData),
	)

	if _, err := it.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
	// Every examined line counted, even though none was returned.
	if it.Position() != 3 {
		t.Errorf("Position() = %d, want 3", it.Position())
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	it := New(NewSliceSource([]string{"a", "b", "c"}), WithFilter(func(s string) bool { return s != "b" }))

	line, err := it.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if line != "a" {
		t.Errorf("Peek() = %q, want %q", line, "a")
	}
	if it.Position() != -1 {
		t.Errorf("Position() after Peek() = %d, want -1", it.Position())
	}
	if _, err := it.CurrentLine(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("CurrentLine() after Peek() error = %v, want ErrNotStarted", err)
	}

	// Repeated peeks return the same line.
	for i := 0; i < 3; i++ {
		again, err := it.Peek()
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if again != "a" {
			t.Errorf("repeated Peek() = %q, want %q", again, "a")
		}
	}

	line, err = it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "a" || it.Position() != 0 {
		t.Errorf("Next() = %q at %d, want %q at 0", line, it.Position(), "a")
	}

	// Peek ignores the standing filter: "b" is visible even though Next skips it.
	line, err = it.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if line != "b" || it.Position() != 0 {
		t.Errorf("Peek() = %q at %d, want %q at 0", line, it.Position(), "b")
	}

	line, err = it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "c" || it.Position() != 2 {
		t.Errorf("Next() = %q at %d, want %q at 2", line, it.Position(), "c")
	}
}

func TestPeek_TrimsWhitespace(t *testing.T) {
	it := New(NewSliceSource([]string{"  spaced  "}))

	line, err := it.Peek()
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if line != "spaced" {
		t.Errorf("Peek() = %q, want %q", line, "spaced")
	}
}

func TestJump_EquivalentToRepeatedConsumes(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e"}

	jumped := New(NewSliceSource(input))
	stepped := New(NewSliceSource(input))

	got, err := jumped.Jump(4)
	if err != nil {
		t.Fatalf("Jump(4) error = %v", err)
	}

	var want string
	for i := 0; i < 4; i++ {
		want, err = stepped.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
	}

	if got != want {
		t.Errorf("Jump(4) = %q, want %q", got, want)
	}
	if jumped.Position() != stepped.Position() {
		t.Errorf("Jump(4) position = %d, want %d", jumped.Position(), stepped.Position())
	}
}

func TestJump_IgnoresStandingFilter(t *testing.T) {
	it := New(
		NewSliceSource([]string{"# a", "", "# b", "data"}),
		WithFilter(isData),
	)

	line, err := it.Jump(2)
	if err != nil {
		t.Fatalf("Jump(2) error = %v", err)
	}
	if line != "" || it.Position() != 1 {
		t.Errorf("Jump(2) = %q at %d, want %q at 1", line, it.Position(), "")
	}
}

func TestJump_RejectsNonPositiveSteps(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		it := New(NewSliceSource([]string{"a", "b"}))
		if _, err := it.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}

		if _, err := it.Jump(n); !errors.Is(err, ErrJumpBackward) {
			t.Errorf("Jump(%d) error = %v, want ErrJumpBackward", n, err)
		}

		// State must be untouched.
		if it.Position() != 0 {
			t.Errorf("Position() after Jump(%d) = %d, want 0", n, it.Position())
		}
		current, err := it.CurrentLine()
		if err != nil {
			t.Fatalf("CurrentLine() error = %v", err)
		}
		if current != "a" {
			t.Errorf("CurrentLine() after Jump(%d) = %q, want %q", n, current, "a")
		}
	}
}

func TestJump_ExhaustionMidway(t *testing.T) {
	it := New(NewSliceSource([]string{"a", "b"}))

	if _, err := it.Jump(5); !errors.Is(err, io.EOF) {
		t.Errorf("Jump(5) error = %v, want io.EOF", err)
	}
	if it.Position() != 1 {
		t.Errorf("Position() = %d, want 1", it.Position())
	}
}

func TestJump_ConsumesPeekedLine(t *testing.T) {
	it := New(NewSliceSource([]string{"a", "b"}))

	if _, err := it.Peek(); err != nil {
		t.Fatalf("Peek() error = %v", err)
	}

	line, err := it.Jump(2)
	if err != nil {
		t.Fatalf("Jump(2) error = %v", err)
	}
	if line != "b" || it.Position() != 1 {
		t.Errorf("Jump(2) = %q at %d, want %q at 1", line, it.Position(), "b")
	}
}

func TestNextMatching_StacksOnStandingFilter(t *testing.T) {
	it := New(
		NewSliceSource([]string{"# skip", "alpha", "World", "beta"}),
		WithFilter(isData),
	)

	line, err := it.NextMatching(func(s string) bool { return strings.HasPrefix(s, "W") })
	if err != nil {
		t.Fatalf("NextMatching() error = %v", err)
	}
	if line != "World" || it.Position() != 2 {
		t.Errorf("NextMatching() = %q at %d, want %q at 2", line, it.Position(), "World")
	}
}

func TestNextMatching_Exhaustion(t *testing.T) {
	it := New(NewSliceSource([]string{"", "# no", "", "# data"}))

	if _, err := it.NextMatching(isData); !errors.Is(err, io.EOF) {
		t.Errorf("NextMatching() error = %v, want io.EOF", err)
	}
}

func TestNextMatchingOr_DefaultOnExhaustion(t *testing.T) {
	it := New(NewSliceSource([]string{"", "# no", "", "# data"}))

	line, err := it.NextMatchingOr(isData, "fallback")
	if err != nil {
		t.Fatalf("NextMatchingOr() error = %v", err)
	}
	if line != "fallback" {
		t.Errorf("NextMatchingOr() = %q, want %q", line, "fallback")
	}
	// Position reflects the lines consumed while searching.
	if it.Position() != 3 {
		t.Errorf("Position() = %d, want 3", it.Position())
	}

	// Without a default the exhaustion is visible again.
	if _, err := it.NextMatching(isData); !errors.Is(err, io.EOF) {
		t.Errorf("NextMatching() error = %v, want io.EOF", err)
	}
}

func TestNextMatchingOr_MatchBeforeExhaustion(t *testing.T) {
	it := New(NewSliceSource([]string{"", "# comment", "hello"}))

	line, err := it.NextMatchingOr(isData, "fallback")
	if err != nil {
		t.Fatalf("NextMatchingOr() error = %v", err)
	}
	if line != "hello" || it.Position() != 2 {
		t.Errorf("NextMatchingOr() = %q at %d, want %q at 2", line, it.Position(), "hello")
	}
}

func TestCurrentLine_BeforeFirstConsume(t *testing.T) {
	it := New(NewSliceSource([]string{"a"}))

	if _, err := it.CurrentLine(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("CurrentLine() error = %v, want ErrNotStarted", err)
	}
}

func TestIsEmpty_FreshIterator(t *testing.T) {
	if it := New(NewSliceSource(nil)); !it.IsEmpty() {
		t.Error("IsEmpty() on empty source = false, want true")
	}

	it := New(NewSliceSource([]string{"a"}))
	if it.IsEmpty() {
		t.Error("IsEmpty() on non-empty source = true, want false")
	}

	// The check must not have consumed anything.
	line, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "a" || it.Position() != 0 {
		t.Errorf("Next() after IsEmpty() = %q at %d, want %q at 0", line, it.Position(), "a")
	}
}

func TestWithStartPosition(t *testing.T) {
	it := New(NewSliceSource([]string{"a", "b"}), WithStartPosition(10))

	if it.Position() != 10 {
		t.Errorf("initial Position() = %d, want 10", it.Position())
	}

	if _, err := it.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if it.Position() != 11 {
		t.Errorf("Position() = %d, want 11", it.Position())
	}
}

func TestCollect_RoundTrip(t *testing.T) {
	input := []string{" a ", "", "b", "  c"}
	want := []string{"a", "", "b", "c"}

	got := collect(t, New(NewSliceSource(input)))
	if len(got) != len(want) {
		t.Fatalf("collected %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNext_SourceErrorPropagatesAndSticks(t *testing.T) {
	boom := errors.New("boom")
	it := New(&failingSource{lines: []string{"ok"}, err: boom})

	line, err := it.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if line != "ok" {
		t.Errorf("Next() = %q, want %q", line, "ok")
	}

	if _, err := it.Next(); !errors.Is(err, boom) {
		t.Errorf("Next() error = %v, want boom", err)
	}
	// The failure is latched, not retried.
	if _, err := it.Next(); !errors.Is(err, boom) {
		t.Errorf("repeated Next() error = %v, want boom", err)
	}
	if !it.IsEmpty() {
		t.Error("IsEmpty() on failed source = false, want true")
	}
}

// failingSource yields its lines, then a permanent error.
type failingSource struct {
	lines []string
	pos   int
	err   error
}

func (s *failingSource) Next() (string, error) {
	if s.pos >= len(s.lines) {
		return "", s.err
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
