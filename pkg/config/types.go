// Package config provides configuration loading and validation for line
// reading: start position, compression mode, and the line filter.
package config

import (
	"regexp"
	"strings"

	"linecursor/pkg/linefile"
	"linecursor/pkg/lineiter"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// StartPosition is the iterator's initial position.
	// -1 means no line has been consumed yet.
	StartPosition int `yaml:"start_position"`

	// Compression selects how files are decoded (auto, gzip, none).
	Compression string `yaml:"compression"`

	Filter FilterConfig `yaml:"filter"`
}

// CompressionMode returns the compression setting as a linefile mode.
func (c *Config) CompressionMode() linefile.Compression {
	return linefile.Compression(c.Compression)
}

// FilterConfig defines which lines are kept by consuming reads.
// All checks apply to trimmed lines and must all pass for a line to be kept.
type FilterConfig struct {
	// SkipBlank drops lines that are empty after trimming.
	SkipBlank bool `yaml:"skip_blank"`

	// CommentPrefixes drops lines starting with any of these prefixes.
	CommentPrefixes []string `yaml:"comment_prefixes"`

	// Pattern is an optional regex; when set, only matching lines are kept.
	Pattern string `yaml:"pattern,omitempty"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled keep regex, or nil.
func (f *FilterConfig) CompiledPattern() *regexp.Regexp {
	return f.compiledPattern
}

// Active reports whether the filter would reject anything at all.
func (f *FilterConfig) Active() bool {
	return f.SkipBlank || len(f.CommentPrefixes) > 0 || f.Pattern != ""
}

// Func composes the configured checks into a single keep-predicate.
// Returns nil when the filter is inactive.
func (f *FilterConfig) Func() lineiter.FilterFunc {
	if !f.Active() {
		return nil
	}

	skipBlank := f.SkipBlank
	prefixes := f.CommentPrefixes
	pattern := f.compiledPattern

	return func(line string) bool {
		if skipBlank && line == "" {
			return false
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				return false
			}
		}
		if pattern != nil && !pattern.MatchString(line) {
			return false
		}
		return true
	}
}
