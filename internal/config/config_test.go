package config_test

// Notes:
// - LoadConfig: tests path vs name handling, YAML parsing, unknown-field
//   rejection, and validation on load
// - Validate: tests mode/timeout/length checks on manually built configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-csv2html/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csv2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File Loading and Parsing
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
input:
  path: data/table.csv
output:
  path: out/tags_list.html
meta:
  path: data/clusters.csv
render:
  mode: colored-table
  title: Story Map
  defaultColor: "#e5c07b"
  linkLabel: Read
columns:
  tag: [cluster, arc]
preview:
  enabled: true
  timeout: 45s
`)

		cfg, err := config.LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "data/table.csv" {
			t.Errorf("Input.Path = %q", cfg.Input.Path)
		}
		if cfg.Render.Mode != "colored-table" {
			t.Errorf("Render.Mode = %q", cfg.Render.Mode)
		}
		if got := cfg.Columns.Tag; len(got) != 2 || got[0] != "cluster" {
			t.Errorf("Columns.Tag = %v", got)
		}
		if !cfg.Preview.Enabled || cfg.Preview.Timeout != "45s" {
			t.Errorf("Preview = %+v", cfg.Preview)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig("")
		if !errors.Is(err, config.ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing config name lists tried paths", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig("definitely-not-a-real-config-name")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), ".yaml") {
			t.Errorf("error should list tried paths: %v", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "render: [unclosed")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "bogus: 1")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid timeout rejected on load", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "preview:\n  timeout: soon\n")
		if _, err := config.LoadConfig(path); err == nil {
			t.Error("LoadConfig() expected validation error")
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidate - Manual Config Validation
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "zero config valid",
			mutate: func(*config.Config) {},
		},
		{
			name: "valid timeout",
			mutate: func(c *config.Config) {
				c.Preview.Timeout = "2m"
			},
		},
		{
			name: "negative timeout",
			mutate: func(c *config.Config) {
				c.Preview.Timeout = "-5s"
			},
			wantErr: true,
		},
		{
			name: "unparseable timeout",
			mutate: func(c *config.Config) {
				c.Preview.Timeout = "fast"
			},
			wantErr: true,
		},
		{
			name: "title too long",
			mutate: func(c *config.Config) {
				c.Render.Title = strings.Repeat("x", config.MaxTitleLength+1)
			},
			wantErr: true,
		},
		{
			name: "too many candidates",
			mutate: func(c *config.Config) {
				c.Columns.Tag = make([]string, config.MaxCandidates+1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
