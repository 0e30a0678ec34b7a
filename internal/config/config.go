package config

import (
	"fmt"
	"strings"
)

// Config represents the top-level configuration structure parsed from
// embedgen.yaml. All fields are optional; ApplyDefaults fills in anything
// missing, so an absent configuration file behaves like an empty one.
type Config struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Output contains settings controlling the generated artifacts.
	Output OutputConfig `yaml:"output"`
	// Mime contains content-type lookup settings.
	Mime MimeConfig `yaml:"mime"`
	// Exclude is a list of gitignore-style patterns; matching files and
	// directories are skipped during the walk.
	Exclude []string `yaml:"exclude"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stdout.
	Path string `yaml:"path"`
}

// OutputConfig controls the shape of the generated .c/.h pair.
type OutputConfig struct {
	// BytesPerLine is the number of hex escapes emitted per literal line.
	BytesPerLine int `yaml:"bytes_per_line"`
	// FallbackType is the content type used when no MIME mapping exists.
	FallbackType string `yaml:"fallback_type"`
	// IndexAlias determines whether a top-level index.html gets a second
	// table row served at "/". Defaults to true.
	IndexAlias *bool `yaml:"index_alias"`
}

// MimeConfig configures content-type resolution.
type MimeConfig struct {
	// Overrides maps a file extension (with leading dot) to a content type,
	// consulted before the standard extension table.
	Overrides map[string]string `yaml:"overrides"`
}

// Validate checks the configuration for errors, such as an unknown log
// level or malformed MIME overrides.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	if config.Output.BytesPerLine < 1 || config.Output.BytesPerLine > 64 {
		return fmt.Errorf("invalid bytes_per_line: %d (allowed: 1-64)", config.Output.BytesPerLine)
	}

	if config.Output.FallbackType == "" {
		return fmt.Errorf("fallback_type must not be empty")
	}

	for ext, typ := range config.Mime.Overrides {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("mime override %q: extension must start with a dot", ext)
		}
		if typ == "" {
			return fmt.Errorf("mime override %q: content type must not be empty", ext)
		}
	}

	for _, pattern := range config.Exclude {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("exclude patterns must not be blank")
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	if config.Output.BytesPerLine == 0 {
		config.Output.BytesPerLine = 16
	}
	if config.Output.FallbackType == "" {
		config.Output.FallbackType = "application/octet-stream"
	}
	if config.Output.IndexAlias == nil {
		t := true
		config.Output.IndexAlias = &t
	}
}
