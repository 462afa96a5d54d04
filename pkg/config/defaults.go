package config

import "os"

// Default values for configuration.
const (
	DefaultStartPosition = -1
	DefaultCompression   = "auto"
	DefaultCommentPrefix = "#"
)

// Environment variable names.
const (
	EnvCompression = "LINECURSOR_COMPRESSION"
)

// DefaultConfig returns a configuration with sensible defaults:
// skip blank lines and "#" comments, decide compression by extension.
func DefaultConfig() *Config {
	return &Config{
		StartPosition: DefaultStartPosition,
		Compression:   DefaultCompression,
		Filter: FilterConfig{
			SkipBlank:       true,
			CommentPrefixes: []string{DefaultCommentPrefix},
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if mode := os.Getenv(EnvCompression); mode != "" {
		c.Compression = mode
	}
}
