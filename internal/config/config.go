// Package config handles configuration loading and validation for csvjoin.
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings
type Config struct {
	Log    LogConfig    `yaml:"log"`
	CSV    CSVConfig    `yaml:"csv"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Format is the console format (text, json)
	Format string `yaml:"format"`

	// SeqURL enables shipping logs to a Seq server when set
	SeqURL string `yaml:"seq_url"`
}

// CSVConfig controls how delimited files are read and written
type CSVConfig struct {
	Delimiter        string `yaml:"delimiter"`
	Comment          string `yaml:"comment"`
	TrimLeadingSpace bool   `yaml:"trim_leading_space"`
	LazyQuotes       bool   `yaml:"lazy_quotes"`
	UseCRLF          bool   `yaml:"use_crlf"`
}

// ServerConfig holds settings for the TCP join service
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		CSV: CSVConfig{
			Delimiter: ",",
		},
		Server: ServerConfig{
			Port: 4444,
		},
	}
}

// Load reads a YAML configuration file over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Log.Format)
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("invalid csv delimiter: %q (must be a single character)", c.CSV.Delimiter)
	}

	if strings.ContainsAny(c.CSV.Delimiter, "\"\r\n") {
		return fmt.Errorf("invalid csv delimiter: %q (quotes and line breaks are reserved)", c.CSV.Delimiter)
	}

	if c.CSV.Comment != "" && utf8.RuneCountInString(c.CSV.Comment) != 1 {
		return fmt.Errorf("invalid csv comment: %q (must be a single character)", c.CSV.Comment)
	}

	if c.CSV.Comment != "" && c.CSV.Comment == c.CSV.Delimiter {
		return fmt.Errorf("csv comment and delimiter must differ")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", c.Server.Port)
	}

	return nil
}

// DelimiterRune returns the configured field delimiter
func (c CSVConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CommentRune returns the configured comment character, or 0 when unset
func (c CSVConfig) CommentRune() rune {
	if c.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Comment)
	return r
}
