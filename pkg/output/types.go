// Package output provides formatting for line-read reports.
package output

import "time"

// Line is a single emitted line with its position context.
type Line struct {
	// Text is the trimmed line content.
	Text string `json:"text"`

	// Position is the 0-based position within the source file.
	Position int `json:"position"`

	// Source is the file path the line came from.
	Source string `json:"source,omitempty"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// FilesRead is the number of files processed.
	FilesRead int `json:"files_read"`

	// LinesEmitted is the number of lines that passed the filter.
	LinesEmitted int `json:"lines_emitted"`

	// LinesSkipped is the number of lines the filter discarded.
	LinesSkipped int `json:"lines_skipped"`
}

// Metadata provides context about the read.
type Metadata struct {
	// Sources lists the files that were read.
	Sources []string `json:"sources"`

	// ReadAt is when the read was performed.
	ReadAt time.Time `json:"read_at"`

	// Duration is how long the read took.
	Duration time.Duration `json:"duration"`
}

// Report is the complete output of a read.
type Report struct {
	Lines    []Line   `json:"lines"`
	Summary  Summary  `json:"summary"`
	Metadata Metadata `json:"metadata"`
}

// NewReport creates an empty report for the given sources.
func NewReport(sources []string) *Report {
	return &Report{
		Metadata: Metadata{
			Sources: sources,
			ReadAt:  time.Now(),
		},
	}
}

// Add appends an emitted line and updates the summary.
func (r *Report) Add(line Line) {
	r.Lines = append(r.Lines, line)
	r.Summary.LinesEmitted++
}

// Empty reports whether no lines were emitted.
func (r *Report) Empty() bool {
	return r.Summary.LinesEmitted == 0
}
