package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrUnknownMode indicates an unrecognized render mode.
var ErrUnknownMode = errors.New("unknown render mode")

// RenderMode selects the fragment layout.
type RenderMode string

// Render modes. ModeColoredTable is the table layout plus per-cluster
// color and description metadata.
const (
	ModeTable        RenderMode = "table"
	ModeNestedList   RenderMode = "nested-list"
	ModeColoredTable RenderMode = "colored-table"
)

// ParseRenderMode parses a mode name, accepting short aliases.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeTable):
		return ModeTable, nil
	case string(ModeNestedList), "list", "nested":
		return ModeNestedList, nil
	case string(ModeColoredTable), "colored", "coloured":
		return ModeColoredTable, nil
	default:
		return "", fmt.Errorf("%w: %q (must be table, nested-list, or colored-table)", ErrUnknownMode, s)
	}
}

// Renderer defaults.
const (
	DefaultClusterColor = "#ffffff"
	DefaultLinkLabel    = "Content available"
)

// placeholderDash marks an absent link or character list.
const placeholderDash = "—"

// Inline styles reused across layouts. The fragment must survive a host
// that strips <head> and external resources, so everything is inline.
const (
	tableOpen = `<table border="0" cellspacing="0" cellpadding="6" style="border-collapse:collapse;">`
	tableHead = `<thead><tr><th style="padding:6px 10px; text-align:left;">Name</th><th style="padding:6px 10px; text-align:left;">Characters</th><th style="padding:6px 10px; text-align:left;">Link</th></tr></thead>`

	nameCellStyle  = "padding:6px 10px; font-weight:700; color:#fff;"
	charsCellStyle = "padding:6px 10px; font-weight:400; color:#b5b5b5;"
	linkCellStyle  = "padding:6px 10px;"

	captionStyle = "margin:2px 0 10px; font-style:italic; color:#b5b5b5;"

	listStyle      = "margin:0 0 14px 18px; padding:0;"
	listItemStyle  = "margin:4px 0;"
	innerListStyle = "margin:2px 0 2px 16px;"
)

// RendererOptions customizes presentation shared by all modes.
// Zero values fall back to the package defaults.
type RendererOptions struct {
	DefaultColor string // heading color when metadata has none (colored-table)
	LinkLabel    string // anchor text for entry links
}

func (o RendererOptions) withDefaults() RendererOptions {
	if o.DefaultColor == "" {
		o.DefaultColor = DefaultClusterColor
	}
	if o.LinkLabel == "" {
		o.LinkLabel = DefaultLinkLabel
	}
	return o
}

// Document is everything the renderer needs for one fragment.
type Document struct {
	Title     string      // emitted escaped as <h1>; empty = no title
	IntroHTML string      // pre-rendered trusted HTML, emitted verbatim
	Groups    *GroupIndex // required
	Meta      ClusterMeta // consulted only by the colored-table mode
}

// FragmentRenderer renders a Document to a self-contained HTML fragment.
type FragmentRenderer interface {
	RenderFragment(ctx context.Context, doc *Document) (string, error)
}

// Compile-time interface checks.
var (
	_ FragmentRenderer = (*tableRenderer)(nil)
	_ FragmentRenderer = (*nestedListRenderer)(nil)
)

// NewRenderer returns the FragmentRenderer for mode.
func NewRenderer(mode RenderMode, opts RendererOptions) (FragmentRenderer, error) {
	opts = opts.withDefaults()
	switch mode {
	case ModeTable:
		return &tableRenderer{opts: opts}, nil
	case ModeColoredTable:
		return &tableRenderer{opts: opts, colored: true}, nil
	case ModeNestedList:
		return &nestedListRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// tableRenderer emits one table per cluster. With colored set it also
// styles cluster headings from metadata and adds description captions.
type tableRenderer struct {
	opts    RendererOptions
	colored bool
}

func (r *tableRenderer) RenderFragment(ctx context.Context, doc *Document) (string, error) {
	var parts []string
	appendPreamble(&parts, doc)

	for _, label := range doc.Groups.Labels() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if r.colored {
			appendStyledHeading(&parts, label, doc.Meta, r.opts.DefaultColor)
		} else {
			parts = append(parts, "<h2>"+html.EscapeString(label)+"</h2>")
		}

		parts = append(parts, tableOpen, tableHead, "<tbody>")
		for _, e := range doc.Groups.Entries(label) {
			parts = append(parts, fmt.Sprintf(
				`<tr><td style=%q>%s</td><td style=%q>%s</td><td style=%q>%s</td></tr>`,
				nameCellStyle, html.EscapeString(e.Name),
				charsCellStyle, charactersText(e),
				linkCellStyle, linkCell(e, r.opts),
			))
		}
		parts = append(parts, "</tbody></table>")
	}

	return strings.Join(parts, "\n"), nil
}

// nestedListRenderer emits one nested list per cluster: an outer list of
// entries, each with an inner list for characters and link.
type nestedListRenderer struct {
	opts RendererOptions
}

func (r *nestedListRenderer) RenderFragment(ctx context.Context, doc *Document) (string, error) {
	var parts []string
	appendPreamble(&parts, doc)

	for _, label := range doc.Groups.Labels() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		parts = append(parts, "<h2>"+html.EscapeString(label)+"</h2>")
		parts = append(parts, fmt.Sprintf(`<ul style=%q>`, listStyle))
		for _, e := range doc.Groups.Entries(label) {
			parts = append(parts, fmt.Sprintf(`<li style=%q><strong>%s</strong>`, listItemStyle, html.EscapeString(e.Name)))
			parts = append(parts, fmt.Sprintf(`<ul style=%q>`, innerListStyle))
			parts = append(parts, "<li>Characters: "+charactersText(e)+"</li>")
			parts = append(parts, "<li>Link: "+linkCell(e, r.opts)+"</li>")
			parts = append(parts, "</ul>", "</li>")
		}
		parts = append(parts, "</ul>")
	}

	return strings.Join(parts, "\n"), nil
}

// appendPreamble emits the intro block (if any) followed by the title.
func appendPreamble(parts *[]string, doc *Document) {
	if doc.IntroHTML != "" {
		*parts = append(*parts, doc.IntroHTML)
	}
	if doc.Title != "" {
		*parts = append(*parts, "<h1>"+html.EscapeString(doc.Title)+"</h1>")
	}
}

// appendStyledHeading emits a cluster heading colored from metadata, plus
// a description caption when present.
func appendStyledHeading(parts *[]string, label string, meta ClusterMeta, fallback string) {
	style := meta[label]
	color := normalizeColor(style.Color, fallback)
	*parts = append(*parts, fmt.Sprintf(`<h2 style="color:%s;">%s</h2>`,
		html.EscapeString(color), html.EscapeString(label)))
	if style.Description != "" {
		*parts = append(*parts, fmt.Sprintf(`<p style=%q>%s</p>`,
			captionStyle, html.EscapeString(style.Description)))
	}
}

// normalizeColor prefixes a missing "#". Malformed colors are passed
// through untouched; rendering fidelity is the browser's problem.
func normalizeColor(color, fallback string) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return fallback
	}
	if !strings.HasPrefix(color, "#") {
		return "#" + color
	}
	return color
}

// charactersText joins the escaped character list, or a placeholder dash.
func charactersText(e Entry) string {
	if len(e.Characters) == 0 {
		return placeholderDash
	}
	escaped := make([]string, len(e.Characters))
	for i, c := range e.Characters {
		escaped[i] = html.EscapeString(c)
	}
	return strings.Join(escaped, ", ")
}

// linkCell builds the anchor for an entry URL, or a placeholder dash.
// html.EscapeString also escapes quotes, keeping the href attribute safe.
func linkCell(e Entry, opts RendererOptions) string {
	if e.URL == "" {
		return placeholderDash
	}
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`,
		html.EscapeString(e.URL), html.EscapeString(opts.LinkLabel))
}
