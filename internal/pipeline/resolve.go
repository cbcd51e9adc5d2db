package pipeline

import "strings"

// Candidates holds the header spellings accepted for each logical field,
// tried in priority order.
type Candidates struct {
	Name       []string
	Tag        []string
	URL        []string
	Characters []string
}

// DefaultCandidates returns the header spellings recognized out of the box.
func DefaultCandidates() Candidates {
	return Candidates{
		Name:       []string{"name", "title", "label"},
		Tag:        []string{"tag", "tags", "category", "cluster"},
		URL:        []string{"content url", "url", "link", "href", "permalink"},
		Characters: []string{"characters", "character", "cast", "who"},
	}
}

// Columns holds the actual header names resolved for each logical field.
// An empty string means the field is unresolved. Name and Tag are mandatory
// for grouping; URL and Characters are optional.
type Columns struct {
	Name       string
	Tag        string
	URL        string
	Characters string
}

// ResolveColumns resolves every logical field against the header row.
func ResolveColumns(header []string, c Candidates) Columns {
	return Columns{
		Name:       ResolveColumn(header, c.Name),
		Tag:        ResolveColumn(header, c.Tag),
		URL:        ResolveColumn(header, c.URL),
		Characters: ResolveColumn(header, c.Characters),
	}
}

// ResolveColumn finds the actual header matching one of the candidate
// spellings and returns it, or "" if no candidate matches.
//
// Matching is case-insensitive and ignores surrounding whitespace on both
// sides. Candidates are tried in the caller-supplied priority order; for
// each candidate an exact normalized match wins over a substring match.
// The substring fallback returns the first header in declaration order
// whose normalized text contains the candidate, so "tag" resolves to "Tag"
// even when a later "Subtag" header also contains it.
func ResolveColumn(header []string, candidates []string) string {
	if len(header) == 0 {
		return ""
	}

	normalized := make([]string, len(header))
	exact := make(map[string]string, len(header))
	for i, h := range header {
		norm := strings.ToLower(strings.TrimSpace(h))
		normalized[i] = norm
		exact[norm] = h
	}

	for _, cand := range candidates {
		key := strings.ToLower(strings.TrimSpace(cand))
		if key == "" {
			continue
		}
		if orig, ok := exact[key]; ok {
			return orig
		}
		for i, norm := range normalized {
			if strings.Contains(norm, key) {
				return header[i]
			}
		}
	}
	return ""
}
