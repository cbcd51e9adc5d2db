package csv2html

import (
	"time"

	"github.com/alnah/go-csv2html/internal/pipeline"
)

// RenderMode selects the fragment layout.
type RenderMode string

// Render modes. ModeColoredTable is the table layout plus per-cluster
// color and description metadata from Input.Meta.
const (
	ModeTable        RenderMode = RenderMode(pipeline.ModeTable)
	ModeNestedList   RenderMode = RenderMode(pipeline.ModeNestedList)
	ModeColoredTable RenderMode = RenderMode(pipeline.ModeColoredTable)
)

// ParseRenderMode parses a mode name, accepting short aliases
// ("list", "colored").
func ParseRenderMode(s string) (RenderMode, error) {
	m, err := pipeline.ParseRenderMode(s)
	return RenderMode(m), err
}

// DefaultTitle is used when Input.Title is empty.
const DefaultTitle = "Table of Contents"

// Input contains conversion parameters.
type Input struct {
	Table *Table // source CSV (required)
	Meta  *Table // cluster metadata CSV (optional, colored-table mode)
	Title string // fragment heading (optional, default DefaultTitle)
	Intro string // Markdown rendered above the title (optional)
}

// Result holds the generated fragment and run statistics.
type Result struct {
	HTML    string // self-contained fragment, no document wrapper
	Groups  int    // clusters rendered
	Entries int    // items rendered across all clusters
	Skipped int    // rows dropped for missing name or tag values
}

// Candidates holds the header spellings accepted for each logical field,
// tried in priority order. A nil field keeps the built-in candidates.
type Candidates struct {
	Name       []string
	Tag        []string
	URL        []string
	Characters []string
}

// DefaultCandidates returns the header spellings recognized out of the box.
func DefaultCandidates() Candidates {
	return Candidates(pipeline.DefaultCandidates())
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	mode         RenderMode
	timeout      time.Duration
	defaultColor string
	linkLabel    string
	candidates   pipeline.Candidates
}

// defaultTimeout bounds PDF preview rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithMode sets the fragment layout. Default is ModeTable.
func WithMode(mode RenderMode) Option {
	return func(c *Converter) {
		c.cfg.mode = mode
	}
}

// WithTimeout sets the PDF preview timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("csv2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithDefaultColor sets the cluster heading color used when metadata has
// none (colored-table mode).
func WithDefaultColor(color string) Option {
	return func(c *Converter) {
		c.cfg.defaultColor = color
	}
}

// WithLinkLabel sets the anchor text for entry links.
func WithLinkLabel(label string) Option {
	return func(c *Converter) {
		c.cfg.linkLabel = label
	}
}

// WithCandidates overrides header spellings per logical field. Fields left
// nil keep the defaults.
func WithCandidates(cand Candidates) Option {
	return func(c *Converter) {
		if cand.Name != nil {
			c.cfg.candidates.Name = cand.Name
		}
		if cand.Tag != nil {
			c.cfg.candidates.Tag = cand.Tag
		}
		if cand.URL != nil {
			c.cfg.candidates.URL = cand.URL
		}
		if cand.Characters != nil {
			c.cfg.candidates.Characters = cand.Characters
		}
	}
}

// withPDFRenderer injects a preview backend; used by tests to avoid
// launching a browser.
func withPDFRenderer(r pdfRenderer) Option {
	return func(c *Converter) {
		c.pdfRenderer = r
	}
}
