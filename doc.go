// Package csv2html converts a tabular CSV dataset into a self-contained
// HTML fragment, grouped by tag/cluster, for embedding into a content host.
//
// # Quick Start
//
// Create a converter, read the source table, and convert:
//
//	conv, err := csv2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	table, err := csv2html.ReadTableFile("table.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, csv2html.Input{Table: table})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tags_list.html", []byte(result.HTML), 0644)
//
// The result contains the fragment (result.HTML) plus item, cluster, and
// skipped-row counts for reporting.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Column resolution (case-insensitive header matching with substring
//     fallback: "Content URL" satisfies the "url" candidate)
//  2. Row grouping by tag/cluster, preserving first-seen order; rows missing
//     a name or tag are skipped, never fatal
//  3. Fragment rendering (table, nested-list, or colored-table layout) with
//     every user-supplied string HTML-escaped
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := csv2html.NewConverter(
//	    csv2html.WithMode(csv2html.ModeColoredTable),
//	    csv2html.WithLinkLabel("Read"),
//	    csv2html.WithCandidates(csv2html.Candidates{Tag: []string{"arc", "cluster"}}),
//	)
//
// Per-conversion data is passed via Input: the source table, an optional
// cluster metadata table (colors and descriptions for the colored-table
// mode), an optional title, and an optional Markdown intro block.
//
// # PDF Preview
//
// Preview renders the fragment to PDF via headless Chrome (go-rod) for
// proofreading before pasting into the host page:
//
//	pdf, err := conv.Preview(ctx, result.HTML)
//
// The browser starts lazily on first use; Close releases it.
package csv2html
