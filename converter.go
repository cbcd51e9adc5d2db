package csv2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-csv2html/internal/fileutil"
	"github.com/alnah/go-csv2html/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfRenderer                = (*rodRenderer)(nil)
)

// Converter orchestrates the CSV-to-fragment conversion pipeline.
// Create with NewConverter(), use Convert() for conversion, Preview() for
// an optional PDF rendering, and Close() when done.
type Converter struct {
	cfg            converterConfig
	renderer       pipeline.FragmentRenderer
	introConverter pipeline.MarkdownConverter
	pdfRenderer    pdfRenderer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithMode, WithLinkLabel).
// Returns error if the render mode is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			mode:       ModeTable,
			timeout:    defaultTimeout,
			candidates: pipeline.DefaultCandidates(),
		},
		introConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	renderer, err := pipeline.NewRenderer(pipeline.RenderMode(c.cfg.mode), pipeline.RendererOptions{
		DefaultColor: c.cfg.defaultColor,
		LinkLabel:    c.cfg.linkLabel,
	})
	if err != nil {
		return nil, err
	}
	c.renderer = renderer

	return c, nil
}

// Convert runs the full pipeline and returns the fragment with run
// statistics. The context is used for cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	header := input.Table.Header
	cols := pipeline.ResolveColumns(header, c.cfg.candidates)
	if cols.Name == "" || cols.Tag == "" {
		return nil, fmt.Errorf("%w: need name and tag/cluster (case-insensitive); found headers: %s",
			ErrMissingColumn, strings.Join(header, ", "))
	}

	groups := pipeline.Group(header, input.Table.Rows, cols)
	if groups.Len() == 0 {
		return nil, fmt.Errorf("%w: %d rows skipped", ErrNoValidRows, groups.Skipped())
	}

	var meta pipeline.ClusterMeta
	if input.Meta != nil {
		meta = pipeline.ParseClusterMeta(input.Meta.Header, input.Meta.Rows, pipeline.DefaultMetaCandidates())
	}

	var introHTML string
	if input.Intro != "" {
		rendered, err := c.introConverter.ToFragment(ctx, input.Intro)
		if err != nil {
			return nil, fmt.Errorf("rendering intro: %w", err)
		}
		introHTML = rendered
	}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	html, err := c.renderer.RenderFragment(ctx, &pipeline.Document{
		Title:     title,
		IntroHTML: introHTML,
		Groups:    groups,
		Meta:      meta,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering fragment: %w", err)
	}

	return &Result{
		HTML:    html,
		Groups:  groups.Len(),
		Entries: groups.Total(),
		Skipped: groups.Skipped(),
	}, nil
}

// previewTemplate wraps the fragment in a minimal dark-background document
// approximating the host page, so inline light-on-dark styles read right.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
<style>body { background: #1b1b1b; color: #ddd; font-family: sans-serif; }</style>
</head>
<body>
%s
</body>
</html>`

// Preview renders the fragment to PDF via headless Chrome for proofreading.
// The browser is started lazily on first use and kept for reuse until Close.
func (c *Converter) Preview(ctx context.Context, fragment string) ([]byte, error) {
	if fragment == "" {
		return nil, ErrEmptyFragment
	}

	if c.pdfRenderer == nil {
		c.pdfRenderer = newRodRenderer(c.cfg.timeout)
	}

	doc := fmt.Sprintf(previewTemplate, fragment)
	path, cleanup, err := fileutil.WriteTempFile(doc, "html")
	if err != nil {
		return nil, fmt.Errorf("writing preview file: %w", err)
	}
	defer cleanup()

	return c.pdfRenderer.RenderFromFile(ctx, path)
}

// Close releases preview resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfRenderer != nil {
		return c.pdfRenderer.Close()
	}
	return nil
}

// validateInput checks that required fields are present.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have paths validated earlier; both paths converge
// here before processing.
func validateInput(input Input) error {
	if input.Table == nil {
		return ErrNilTable
	}
	if len(input.Table.Header) == 0 {
		return ErrNoHeader
	}
	return nil
}
