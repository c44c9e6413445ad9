// Package config loads culling-graph settings from YAML files.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable culling-graph settings.
type Config struct {
	LogPath       string `yaml:"log_path"`       // overrides the %LOCALAPPDATA% lookup
	OutputDir     string `yaml:"output_dir"`     // overrides %TEMP%
	DefaultFormat string `yaml:"default_format"` // "html" | "json"
	OpenBrowser   *bool  `yaml:"open_browser"`
	Quiet         bool   `yaml:"quiet"` // suppress the banner
}

// Defaults returns the default configuration.
func Defaults() Config {
	open := true
	return Config{
		DefaultFormat: "html",
		OpenBrowser:   &open,
	}
}

// ShouldOpen reports whether the rendered report should be launched.
func (c Config) ShouldOpen() bool {
	return c.OpenBrowser == nil || *c.OpenBrowser
}

// GlobalPath returns the location of the per-user config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "culling-graph", "config.yaml"), nil
}

// LoadGlobal reads ~/.config/culling-graph/config.yaml.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path, true)
}

// LoadProject reads .culling-graph.yaml in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".culling-graph.yaml", false)
}

func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Unset values fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	for _, c := range []*Config{global, project} {
		if c == nil {
			continue
		}
		if c.LogPath != "" {
			result.LogPath = c.LogPath
		}
		if c.OutputDir != "" {
			result.OutputDir = c.OutputDir
		}
		if c.DefaultFormat != "" {
			result.DefaultFormat = c.DefaultFormat
		}
		if c.OpenBrowser != nil {
			open := *c.OpenBrowser
			result.OpenBrowser = &open
		}
		if c.Quiet {
			result.Quiet = true
		}
	}
	return result
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
