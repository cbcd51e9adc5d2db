package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-csv2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CSV2HTML_CONFIG: config file path
	Input      string        // CSV2HTML_INPUT: input CSV path
	Output     string        // CSV2HTML_OUTPUT: output fragment path
	Mode       string        // CSV2HTML_MODE: render mode
	Meta       string        // CSV2HTML_META: cluster metadata CSV path
	Timeout    time.Duration // CSV2HTML_TIMEOUT: PDF preview timeout
}

// knownEnvVars lists valid CSV2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CSV2HTML_CONFIG":  true,
	"CSV2HTML_INPUT":   true,
	"CSV2HTML_OUTPUT":  true,
	"CSV2HTML_MODE":    true,
	"CSV2HTML_META":    true,
	"CSV2HTML_TIMEOUT": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized CSV2HTML_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CSV2HTML_CONFIG"),
		Input:      os.Getenv("CSV2HTML_INPUT"),
		Output:     os.Getenv("CSV2HTML_OUTPUT"),
		Mode:       os.Getenv("CSV2HTML_MODE"),
		Meta:       os.Getenv("CSV2HTML_META"),
	}

	if timeout := os.Getenv("CSV2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CSV2HTML_* variables.
// Helps catch typos like CSV2HTML_INPT instead of CSV2HTML_INPUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CSV2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values the config file left empty; CLI flags are merged
// afterwards and override both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" && cfg.Input.Path == "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" && cfg.Output.Path == "" {
		cfg.Output.Path = env.Output
	}
	if env.Mode != "" && cfg.Render.Mode == "" {
		cfg.Render.Mode = env.Mode
	}
	if env.Meta != "" && cfg.Meta.Path == "" {
		cfg.Meta.Path = env.Meta
	}
	if env.Timeout > 0 && cfg.Preview.Timeout == "" {
		cfg.Preview.Timeout = env.Timeout.String()
	}
}
