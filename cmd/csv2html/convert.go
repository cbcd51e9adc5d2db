package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	csv2html "github.com/alnah/go-csv2html"
	"github.com/alnah/go-csv2html/internal/config"
	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInputNotFound  = errors.New("input csv not found")
	ErrReadIntro      = errors.New("failed to read intro file")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// filePermissions is rw-r--r--: generated fragments are meant to be readable.
const filePermissions = 0o644

// Default paths matching the established spreadsheet-export workflow.
const (
	defaultInputPath  = "table.csv"
	defaultOutputPath = "tags_list.html"
	defaultMetaPath   = "clusters.csv"
)

// runParams holds the fully resolved parameters for one generation run.
type runParams struct {
	input         string
	output        string
	metaPath      string
	metaDefaulted bool // default clusters.csv: absence is not an error
	mode          csv2html.RenderMode
	title         string
	intro         string
	linkLabel     string
	defaultColor  string
	candidates    csv2html.Candidates
	pdfPath       string
	timeout       time.Duration
	quiet         bool
	verbose       bool
}

// run parses arguments, resolves configuration, and generates the fragment.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.help {
		printUsage(deps.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(deps.Stdout, "csv2html %s\n", Version)
		return nil
	}

	if !flags.quiet {
		warnUnknownEnvVars(deps.Stderr)
	}

	env := loadEnvConfig()

	cfg, err := loadConfiguration(flags, env)
	if err != nil {
		return err
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, positional, cfg)

	params, err := resolveParams(flags, cfg)
	if err != nil {
		return err
	}

	return runGenerate(ctx, params, deps)
}

// loadConfiguration loads the YAML config named by flag or environment.
// Without either, the neutral default config applies.
func loadConfiguration(flags *cliFlags, env *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// A positional argument is an input path with lower precedence than --input.
func mergeFlags(flags *cliFlags, positional []string, cfg *config.Config) {
	if len(positional) > 0 && cfg.Input.Path == "" {
		cfg.Input.Path = positional[0]
	}
	if flags.input != "" {
		cfg.Input.Path = flags.input
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.meta != "" {
		cfg.Meta.Path = flags.meta
	}
	if flags.mode != "" {
		cfg.Render.Mode = flags.mode
	}
	if flags.title != "" {
		cfg.Render.Title = flags.title
	}
	if flags.introFile != "" {
		cfg.Render.IntroFile = flags.introFile
	}
	if flags.linkLabel != "" {
		cfg.Render.LinkLabel = flags.linkLabel
	}
	if flags.color != "" {
		cfg.Render.DefaultColor = flags.color
	}
	if flags.timeout != "" {
		cfg.Preview.Timeout = flags.timeout
	}
	if flags.pdfPath != "" {
		cfg.Preview.Enabled = true
		cfg.Preview.Path = flags.pdfPath
	}
}

// resolveParams turns the merged config into run parameters, applying
// defaults and validating the mode and timeout.
func resolveParams(flags *cliFlags, cfg *config.Config) (*runParams, error) {
	p := &runParams{
		input:        cfg.Input.Path,
		output:       cfg.Output.Path,
		metaPath:     cfg.Meta.Path,
		title:        cfg.Render.Title,
		linkLabel:    cfg.Render.LinkLabel,
		defaultColor: cfg.Render.DefaultColor,
		candidates: csv2html.Candidates{
			Name:       cfg.Columns.Name,
			Tag:        cfg.Columns.Tag,
			URL:        cfg.Columns.URL,
			Characters: cfg.Columns.Characters,
		},
		quiet:   flags.quiet,
		verbose: flags.verbose,
	}

	if p.input == "" {
		p.input = defaultInputPath
	}
	if p.output == "" {
		p.output = defaultOutputPath
	}
	if p.metaPath == "" {
		p.metaPath = defaultMetaPath
		p.metaDefaulted = true
	}

	mode, err := csv2html.ParseRenderMode(cfg.Render.Mode)
	if err != nil {
		return nil, err
	}
	p.mode = mode

	if cfg.Render.IntroFile != "" {
		content, err := os.ReadFile(cfg.Render.IntroFile) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadIntro, err)
		}
		p.intro = string(content)
	}

	if cfg.Preview.Timeout != "" {
		d, err := time.ParseDuration(cfg.Preview.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Preview.Timeout)
		}
		p.timeout = d
	}

	if cfg.Preview.Enabled {
		p.pdfPath = cfg.Preview.Path
		if p.pdfPath == "" {
			p.pdfPath = replaceExtension(p.output, ".pdf")
		}
	}

	return p, nil
}

// replaceExtension swaps the file extension, appending if there is none.
func replaceExtension(path, ext string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[:i] + ext
		case '/', '\\':
			return path + ext
		}
	}
	return path + ext
}

// runGenerate reads the tables, converts, and writes the fragment (and the
// optional PDF preview).
func runGenerate(ctx context.Context, params *runParams, deps *Dependencies) error {
	start := deps.Now()

	table, err := csv2html.ReadTableFile(params.input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s%s", ErrInputNotFound, params.input, hints.ForInputNotFound(params.input))
		}
		return err
	}

	meta, err := loadMeta(params)
	if err != nil {
		return err
	}

	opts := []csv2html.Option{
		csv2html.WithMode(params.mode),
		csv2html.WithCandidates(params.candidates),
	}
	if params.timeout > 0 {
		opts = append(opts, csv2html.WithTimeout(params.timeout))
	}
	if params.defaultColor != "" {
		opts = append(opts, csv2html.WithDefaultColor(params.defaultColor))
	}
	if params.linkLabel != "" {
		opts = append(opts, csv2html.WithLinkLabel(params.linkLabel))
	}

	conv, err := csv2html.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	result, err := conv.Convert(ctx, csv2html.Input{
		Table: table,
		Meta:  meta,
		Title: params.title,
		Intro: params.intro,
	})
	if err != nil {
		switch {
		case errors.Is(err, csv2html.ErrMissingColumn):
			return fmt.Errorf("%w%s", err, hints.ForMissingColumn())
		case errors.Is(err, csv2html.ErrNoValidRows):
			return fmt.Errorf("%w%s", err, hints.ForNoValidRows())
		}
		return err
	}

	// #nosec G306 -- fragments are meant to be readable
	if err := os.WriteFile(params.output, []byte(result.HTML), filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if params.pdfPath != "" {
		pdf, err := conv.Preview(ctx, result.HTML)
		if err != nil {
			return err
		}
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(params.pdfPath, pdf, filePermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}

	printSummary(params, result, deps, deps.Now().Sub(start))
	return nil
}

// loadMeta reads the cluster metadata CSV. The default clusters.csv is
// optional; an explicitly configured path must exist.
func loadMeta(params *runParams) (*csv2html.Table, error) {
	if params.metaDefaulted && !fileutil.FileExists(params.metaPath) {
		return nil, nil
	}

	meta, err := csv2html.ReadTableFile(params.metaPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, params.metaPath)
		}
		return nil, err
	}
	return meta, nil
}

// printSummary writes the one-line run report, with extra detail in
// verbose mode.
func printSummary(params *runParams, result *csv2html.Result, deps *Dependencies, elapsed time.Duration) {
	if params.quiet {
		return
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s with %d items across %d clusters.\n",
		params.output, result.Entries, result.Groups)

	if params.verbose {
		if result.Skipped > 0 {
			fmt.Fprintf(deps.Stdout, "Skipped %d row(s) missing a name or tag value.\n", result.Skipped)
		}
		if params.pdfPath != "" {
			fmt.Fprintf(deps.Stdout, "Preview written to %s\n", params.pdfPath)
		}
		fmt.Fprintf(deps.Stdout, "Done in %v\n", elapsed.Round(time.Millisecond))
	}
}
