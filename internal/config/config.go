// Package config provides configuration management for the question loader.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"quizload/internal/source"
)

// Configuration validation errors.
var (
	ErrMissingInputPath    = errors.New("input.path is required")
	ErrInvalidEncoding     = errors.New("input.encoding must be one of: latin1, windows-1252, utf-8")
	ErrInvalidDelimiter    = errors.New("input.delimiter must be a single character other than a quote or newline")
	ErrMissingOutputPath   = errors.New("output.path is required")
	ErrInvalidOutputFormat = errors.New("output.format must be 'json' or 'jsonl'")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete loader configuration.
type Config struct {
	Loader   LoaderConfig   `yaml:"loader"`
	Features FeaturesConfig `yaml:"features"`
}

// LoaderConfig contains loader-specific settings.
type LoaderConfig struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes the delimited source file.
type InputConfig struct {
	Path       string `yaml:"path"`
	Encoding   string `yaml:"encoding"`
	Delimiter  string `yaml:"delimiter"`
	LazyQuotes bool   `yaml:"lazy_quotes"`
}

// OutputConfig defines where results are written.
type OutputConfig struct {
	Path            string `yaml:"path"`
	Format          string `yaml:"format"`
	DiagnosticsPath string `yaml:"diagnostics_path"`
	ReportPath      string `yaml:"report_path"`
	PrettyPrint     bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	FailOnDiagnostics bool `yaml:"fail_on_diagnostics"`
	SignReport        bool `yaml:"sign_report"`
}

// Default returns the built-in configuration. Input and output paths are left empty.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			Input: InputConfig{
				Encoding:   "latin1",
				Delimiter:  ",",
				LazyQuotes: true,
			},
			Output: OutputConfig{
				Format:      "json",
				PrettyPrint: true,
			},
			Logging: LoggingConfig{Level: "info"},
		},
		Features: FeaturesConfig{SignReport: true},
	}
}

// LoadFile reads a YAML file on top of Default. The result is not validated,
// since command-line flags may still fill in required fields.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode parses YAML into cfg without validating it. Keys missing from data
// keep their current values.
func decode(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	in := c.Loader.Input

	if in.Path == "" {
		return ErrMissingInputPath
	}

	if _, err := source.LookupEncoding(in.Encoding); err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidEncoding, in.Encoding)
	}

	if _, err := c.DelimiterRune(); err != nil {
		return err
	}

	out := c.Loader.Output

	if out.Path == "" {
		return ErrMissingOutputPath
	}

	if out.Format != "json" && out.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Loader.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// DelimiterRune returns the configured delimiter as a rune. "\t" and "tab" select a tab.
func (c *Config) DelimiterRune() (rune, error) {
	d := c.Loader.Input.Delimiter

	switch d {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(d)
	if size != len(d) || r == utf8.RuneError || r == '"' || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDelimiter, d)
	}

	return r, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s (%s), Output: %s (%s)}",
		c.Loader.Input.Path,
		c.Loader.Input.Encoding,
		c.Loader.Output.Path,
		c.Loader.Output.Format,
	)
}
