package pipeline

import "strings"

// Entry is one rendered row derived from one valid source CSV row.
type Entry struct {
	Name       string
	URL        string // empty means absent; rendered as a placeholder
	Characters []string
}

// GroupIndex maps cluster labels to their entries, preserving first-seen
// order of both clusters and entries within a cluster. Labels are
// whitespace-trimmed but otherwise exact strings: "Red" and "red" are two
// distinct clusters.
type GroupIndex struct {
	labels  []string
	entries map[string][]Entry
	skipped int
}

// NewGroupIndex returns an empty GroupIndex.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{entries: make(map[string][]Entry)}
}

func (g *GroupIndex) add(label string, e Entry) {
	if _, ok := g.entries[label]; !ok {
		g.labels = append(g.labels, label)
	}
	g.entries[label] = append(g.entries[label], e)
}

// Labels returns cluster labels in first-occurrence order.
func (g *GroupIndex) Labels() []string { return g.labels }

// Entries returns the entries of a cluster in source order.
func (g *GroupIndex) Entries(label string) []Entry { return g.entries[label] }

// Len returns the number of clusters.
func (g *GroupIndex) Len() int { return len(g.labels) }

// Total returns the number of entries across all clusters.
func (g *GroupIndex) Total() int {
	n := 0
	for _, es := range g.entries {
		n += len(es)
	}
	return n
}

// Skipped returns how many rows were dropped for missing a name or tag.
func (g *GroupIndex) Skipped() int { return g.skipped }

// Group streams rows into a GroupIndex using the resolved columns.
//
// Rows whose name or tag cell is empty after trimming are skipped and
// counted, never reported as errors. Callers must verify that cols.Name
// and cols.Tag are resolved before calling; unresolved optional columns
// simply yield absent URLs and empty character lists.
func Group(header []string, rows [][]string, cols Columns) *GroupIndex {
	nameIdx := columnIndex(header, cols.Name)
	tagIdx := columnIndex(header, cols.Tag)
	urlIdx := columnIndex(header, cols.URL)
	charsIdx := columnIndex(header, cols.Characters)

	g := NewGroupIndex()
	for _, row := range rows {
		name := cell(row, nameIdx)
		tag := cell(row, tagIdx)
		if name == "" || tag == "" {
			g.skipped++
			continue
		}

		g.add(tag, Entry{
			Name:       name,
			URL:        cell(row, urlIdx),
			Characters: SplitList(cell(row, charsIdx)),
		})
	}
	return g
}

// columnIndex returns the position of the named header, or -1.
func columnIndex(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell returns the trimmed value at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// SplitList splits a comma-separated cell into trimmed, non-empty pieces,
// preserving their order. An empty cell yields a nil slice.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if p := strings.TrimSpace(piece); p != "" {
			out = append(out, p)
		}
	}
	return out
}
