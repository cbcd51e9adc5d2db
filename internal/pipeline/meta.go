package pipeline

// ClusterStyle is optional per-cluster presentation metadata.
type ClusterStyle struct {
	Color       string // hex color, with or without leading "#"
	Description string // plain text caption shown under the heading
}

// ClusterMeta maps a cluster label to its style. Labels are matched with
// the same exact-string semantics as grouping: trimmed, case-preserved.
type ClusterMeta map[string]ClusterStyle

// MetaCandidates holds the header spellings accepted in a cluster
// metadata table.
type MetaCandidates struct {
	Label       []string
	Color       []string
	Description []string
}

// DefaultMetaCandidates returns the metadata header spellings recognized
// out of the box.
func DefaultMetaCandidates() MetaCandidates {
	return MetaCandidates{
		Label:       []string{"tag", "tags", "category", "cluster", "label", "name"},
		Color:       []string{"color hex", "color", "colour", "hex"},
		Description: []string{"description", "desc", "blurb", "notes"},
	}
}

// ParseClusterMeta builds a ClusterMeta from a metadata table. Rows with
// an empty label are skipped; the label column is mandatory, and a table
// without one yields an empty (non-nil) meta rather than an error since
// metadata is best-effort. Later rows for the same label overwrite
// earlier ones.
func ParseClusterMeta(header []string, rows [][]string, c MetaCandidates) ClusterMeta {
	meta := make(ClusterMeta)

	labelCol := ResolveColumn(header, c.Label)
	if labelCol == "" {
		return meta
	}
	labelIdx := columnIndex(header, labelCol)
	colorIdx := columnIndex(header, ResolveColumn(header, c.Color))
	descIdx := columnIndex(header, ResolveColumn(header, c.Description))

	for _, row := range rows {
		label := cell(row, labelIdx)
		if label == "" {
			continue
		}
		meta[label] = ClusterStyle{
			Color:       cell(row, colorIdx),
			Description: cell(row, descIdx),
		}
	}
	return meta
}
