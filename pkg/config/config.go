package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// Unspecified fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the filter regex.
func Validate(cfg *Config) error {
	if cfg.StartPosition < -1 {
		return fmt.Errorf("start_position: must be >= -1, got %d", cfg.StartPosition)
	}

	if !cfg.CompressionMode().Valid() {
		return fmt.Errorf("compression: invalid mode %q (must be auto, gzip, or none)", cfg.Compression)
	}

	if err := validateFilter(&cfg.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	return nil
}

func validateFilter(f *FilterConfig) error {
	for i, prefix := range f.CommentPrefixes {
		if strings.TrimSpace(prefix) == "" {
			return fmt.Errorf("comment_prefixes[%d]: prefix must not be blank", i)
		}
	}

	if f.Pattern == "" {
		f.compiledPattern = nil
		return nil
	}

	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	f.compiledPattern = re

	return nil
}
