// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for routelens.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the routelens configuration.
type Config struct {
	// Format is the command output format (text, yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Source contains source scanning configuration
	Source SourceConfig `mapstructure:"source" yaml:"source" json:"source"`

	// Analysis contains route analysis configuration
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`

	// Tool contains external request tool configuration
	Tool ToolConfig `mapstructure:"tool" yaml:"tool" json:"tool"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// SourceConfig contains source scanning configuration.
type SourceConfig struct {
	// Paths is a list of paths to scan
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// AnalysisConfig contains route analysis configuration.
type AnalysisConfig struct {
	// ExcludeComments skips route calls found inside comments
	ExcludeComments bool `mapstructure:"excludeComments" yaml:"excludeComments" json:"excludeComments"`

	// EntryFile is the application entry file passed to the request tool
	EntryFile string `mapstructure:"entryFile" yaml:"entryFile" json:"entryFile"`
}

// ToolConfig contains external request tool configuration.
type ToolConfig struct {
	// Binary is the request tool executable name
	Binary string `mapstructure:"binary" yaml:"binary" json:"binary"`

	// ExtraArgs are pass-through arguments appended to every invocation
	ExtraArgs []string `mapstructure:"extraArgs" yaml:"extraArgs" json:"extraArgs"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"routelens.yaml",
	"routelens.json",
	".routelens.yaml",
	".routelens.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"text",
	"yaml",
	"json",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format: "text",
		Source: SourceConfig{
			Paths:   []string{"."},
			Include: []string{"**/*.ts", "**/*.tsx", "**/*.mts", "**/*.js", "**/*.jsx", "**/*.mjs"},
			Exclude: []string{
				"node_modules/**",
				"dist/**",
				"build/**",
				".git/**",
				"**/*.d.ts",
				"**/*.test.ts",
				"**/*.spec.ts",
			},
		},
		Analysis: AnalysisConfig{
			ExcludeComments: true,
		},
		Tool: ToolConfig{
			Binary: "hono-request",
		},
		Watch: WatchConfig{
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. routelens.yaml
// 2. routelens.json
// 3. .routelens.yaml
// 4. .routelens.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("source.paths", defaults.Source.Paths)
	v.SetDefault("source.include", defaults.Source.Include)
	v.SetDefault("source.exclude", defaults.Source.Exclude)
	v.SetDefault("analysis.excludeComments", defaults.Analysis.ExcludeComments)
	v.SetDefault("analysis.entryFile", defaults.Analysis.EntryFile)
	v.SetDefault("tool.binary", defaults.Tool.Binary)
	v.SetDefault("tool.extraArgs", defaults.Tool.ExtraArgs)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if c.Tool.Binary == "" {
		errs = append(errs, ValidationError{
			Field:   "tool.binary",
			Message: "request tool binary is required",
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
