// Package config defines core configuration types for mdstylecheck.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
//
// Configuration only covers how results are presented. The rule set is fixed.
package config

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Log levels accepted by LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is the root configuration structure for mdstylecheck.
// Zero values mean "not set" so that partial configs can be layered.
type Config struct {
	// Format specifies the output format ("text" or "json").
	Format OutputFormat `yaml:"format,omitempty" toml:"format,omitempty"`

	// Color controls colorized output ("auto", "always" or "never").
	Color ColorMode `yaml:"color,omitempty" toml:"color,omitempty"`

	// LogLevel is the level for diagnostic logging on stderr.
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`

	// FailOnIssues makes the check command exit non-zero when diagnostics are found.
	FailOnIssues *bool `yaml:"fail_on_issues,omitempty" toml:"fail_on_issues,omitempty"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	failOnIssues := false
	return &Config{
		Format:       FormatText,
		Color:        ColorAuto,
		LogLevel:     LogLevelInfo,
		FailOnIssues: &failOnIssues,
	}
}

// ShouldFailOnIssues reports whether diagnostics should produce a failing exit code.
func (c *Config) ShouldFailOnIssues() bool {
	return c != nil && c.FailOnIssues != nil && *c.FailOnIssues
}

// Merge overlays the fields set in other onto a copy of c.
// Fields left at their zero value in other are not applied.
func (c *Config) Merge(other *Config) *Config {
	merged := c.Clone()
	if merged == nil {
		merged = &Config{}
	}
	if other == nil {
		return merged
	}

	if other.Format != "" {
		merged.Format = other.Format
	}
	if other.Color != "" {
		merged.Color = other.Color
	}
	if other.LogLevel != "" {
		merged.LogLevel = other.LogLevel
	}
	if other.FailOnIssues != nil {
		failOnIssues := *other.FailOnIssues
		merged.FailOnIssues = &failOnIssues
	}

	return merged
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.FailOnIssues != nil {
		failOnIssues := *c.FailOnIssues
		clone.FailOnIssues = &failOnIssues
	}

	return &clone
}
