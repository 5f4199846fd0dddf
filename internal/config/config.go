// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to defaults.
type Config struct {
	// MinContentLength is the trimmed length below which content is
	// flagged as too short.
	MinContentLength int `json:"min_content_length,omitempty" validate:"omitempty,gte=1"`

	// Indent is the number of spaces used to indent cleaned JSON output.
	Indent int `json:"indent,omitempty" validate:"omitempty,gte=0,lte=8"`

	// Verbose prints per-stage summaries to stdout.
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the configuration used when no --config file is given.
func Default() *Config {
	return &Config{
		MinContentLength: 30,
		Indent:           2,
	}
}

// LoadConfig loads configuration from a JSON file and fills unset fields
// with defaults. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Decode through pointer fields so an explicit zero, notably
	// "indent": 0 for compact output, is distinguishable from absent.
	var file struct {
		MinContentLength *int  `json:"min_content_length"`
		Indent           *int  `json:"indent"`
		Verbose          *bool `json:"verbose"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg := Default()
	if file.MinContentLength != nil {
		cfg.MinContentLength = *file.MinContentLength
	}
	if file.Indent != nil {
		cfg.Indent = *file.Indent
	}
	if file.Verbose != nil {
		cfg.Verbose = *file.Verbose
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
