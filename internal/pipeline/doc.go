// Package pipeline implements the CSV-to-HTML conversion pipeline.
//
// This package handles the column resolution, grouping, and rendering stages:
//   - Column resolution: mapping flexible real-world header spellings to
//     fixed logical fields (name, tag/cluster, url, characters)
//   - Row grouping: streaming rows into an insertion-ordered cluster index
//   - Cluster metadata: optional per-cluster color and description lookup
//   - Fragment rendering: table, nested-list, or colored-table HTML output
//   - Intro rendering: optional Markdown intro block via Goldmark
//
// PDF preview generation is handled separately by the root csv2html package
// using headless Chrome (go-rod). This separation keeps the pipeline focused
// on the data-to-markup transformation, while preview rendering handles
// browser concerns.
package pipeline
