// Package config loads and validates the csv2html YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits; generous, but bounded against pathological inputs.
const (
	MaxPathLength      = 4096 // Filesystem limit on common platforms
	MaxTitleLength     = 200  // Fragment title
	MaxLinkLabelLength = 100  // Anchor text for entry links
	MaxColorLength     = 20   // "#888888" or a CSS color name
	MaxModeLength      = 20   // "colored-table" is the longest mode
	MaxCandidates      = 32   // Column spellings per logical field
)

// Config holds all configuration for fragment generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Meta    MetaConfig    `yaml:"meta"`
	Render  RenderConfig  `yaml:"render"`
	Columns ColumnsConfig `yaml:"columns"`
	Preview PreviewConfig `yaml:"preview"`
}

// InputConfig defines the source CSV.
type InputConfig struct {
	Path string `yaml:"path"` // Default input CSV (empty = "table.csv")
}

// OutputConfig defines the generated fragment destination.
type OutputConfig struct {
	Path string `yaml:"path"` // Default output file (empty = "tags_list.html")
}

// MetaConfig defines the optional cluster metadata CSV.
type MetaConfig struct {
	Path string `yaml:"path"` // Metadata CSV (empty = "clusters.csv", used only if present)
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	Mode         string `yaml:"mode"`         // "table", "nested-list", "colored-table"
	Title        string `yaml:"title"`        // Fragment heading (empty = "Table of Contents")
	IntroFile    string `yaml:"introFile"`    // Markdown file rendered above the title
	DefaultColor string `yaml:"defaultColor"` // Cluster heading fallback color (colored-table)
	LinkLabel    string `yaml:"linkLabel"`    // Anchor text for entry links
}

// ColumnsConfig overrides the header spellings tried per logical field,
// in priority order. Empty lists keep the built-in candidates.
type ColumnsConfig struct {
	Name       []string `yaml:"name"`
	Tag        []string `yaml:"tag"`
	URL        []string `yaml:"url"`
	Characters []string `yaml:"characters"`
}

// PreviewConfig defines the optional PDF preview of the fragment.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`    // Output PDF (empty = output path with .pdf)
	Timeout string `yaml:"timeout"` // Go duration string (empty = "30s")
}

// DefaultConfig returns a neutral configuration; all paths empty so the
// caller's defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks mode, field lengths, and the preview timeout syntax.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("meta.path", c.Meta.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.mode", c.Render.Mode, MaxModeLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.title", c.Render.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.introFile", c.Render.IntroFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.defaultColor", c.Render.DefaultColor, MaxColorLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.linkLabel", c.Render.LinkLabel, MaxLinkLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.path", c.Preview.Path, MaxPathLength); err != nil {
		return err
	}

	for field, list := range map[string][]string{
		"columns.name":       c.Columns.Name,
		"columns.tag":        c.Columns.Tag,
		"columns.url":        c.Columns.URL,
		"columns.characters": c.Columns.Characters,
	} {
		if len(list) > MaxCandidates {
			return fmt.Errorf("%s: too many candidates (%d, max %d)", field, len(list), MaxCandidates)
		}
	}

	if c.Preview.Timeout != "" {
		d, err := time.ParseDuration(c.Preview.Timeout)
		if err != nil {
			return fmt.Errorf("preview.timeout: invalid duration %q", c.Preview.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("preview.timeout: must be positive, got %q", c.Preview.Timeout)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/csv2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "csv2html", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
