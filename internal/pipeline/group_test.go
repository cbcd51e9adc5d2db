package pipeline

// Notes:
// - Group: tests first-seen ordering of clusters and entries, row skipping on
//   missing name/tag values, optional column handling, and short rows
// - SplitList: tests comma splitting with trimming and empty-piece removal

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGroup - Row Grouping
// ---------------------------------------------------------------------------

func TestGroupPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	header := []string{"Name", "Tag"}
	rows := [][]string{
		{"one", "B"},
		{"two", "A"},
		{"three", "B"},
		{"four", "A"},
	}
	cols := ResolveColumns(header, DefaultCandidates())

	g := Group(header, rows, cols)

	wantLabels := []string{"B", "A"}
	if !reflect.DeepEqual(g.Labels(), wantLabels) {
		t.Fatalf("Labels() = %v, want %v", g.Labels(), wantLabels)
	}

	b := g.Entries("B")
	if len(b) != 2 || b[0].Name != "one" || b[1].Name != "three" {
		t.Errorf("Entries(B) = %+v, want [one three] in source order", b)
	}
	if g.Len() != 2 || g.Total() != 4 {
		t.Errorf("Len() = %d, Total() = %d, want 2 and 4", g.Len(), g.Total())
	}
}

func TestGroupSkipsRowsMissingMandatoryValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rows        [][]string
		wantTotal   int
		wantSkipped int
	}{
		{
			name: "empty name dropped",
			rows: [][]string{
				{"", "Red"},
				{"Alpha", "Red"},
			},
			wantTotal:   1,
			wantSkipped: 1,
		},
		{
			name: "whitespace-only tag dropped",
			rows: [][]string{
				{"Alpha", "   "},
			},
			wantTotal:   0,
			wantSkipped: 1,
		},
		{
			name: "short row dropped",
			rows: [][]string{
				{"Alpha"},
			},
			wantTotal:   0,
			wantSkipped: 1,
		},
		{
			name: "all present kept",
			rows: [][]string{
				{"Alpha", "Red"},
				{"Beta", "Blue"},
			},
			wantTotal:   2,
			wantSkipped: 0,
		},
	}

	header := []string{"Name", "Tag"}
	cols := ResolveColumns(header, DefaultCandidates())

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Group(header, tt.rows, cols)
			if g.Total() != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", g.Total(), tt.wantTotal)
			}
			if g.Skipped() != tt.wantSkipped {
				t.Errorf("Skipped() = %d, want %d", g.Skipped(), tt.wantSkipped)
			}
		})
	}
}

func TestGroupCaseVariantTagsStayDistinct(t *testing.T) {
	t.Parallel()

	header := []string{"Name", "Tag"}
	rows := [][]string{
		{"one", "Red"},
		{"two", "red"},
	}
	cols := ResolveColumns(header, DefaultCandidates())

	g := Group(header, rows, cols)
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (tag matching is exact-string)", g.Len())
	}
}

func TestGroupOptionalColumns(t *testing.T) {
	t.Parallel()

	header := []string{"Name", "Tag", "Content URL", "Characters"}
	rows := [][]string{
		{"Alpha", "Red", "http://x", "Ann, Bob"},
		{"Beta", "Red", "  ", ""},
	}
	cols := ResolveColumns(header, DefaultCandidates())

	g := Group(header, rows, cols)
	entries := g.Entries("Red")
	if len(entries) != 2 {
		t.Fatalf("Entries(Red) = %d entries, want 2", len(entries))
	}

	if entries[0].URL != "http://x" {
		t.Errorf("first URL = %q, want http://x", entries[0].URL)
	}
	if want := []string{"Ann", "Bob"}; !reflect.DeepEqual(entries[0].Characters, want) {
		t.Errorf("first Characters = %v, want %v", entries[0].Characters, want)
	}

	if entries[1].URL != "" {
		t.Errorf("whitespace-only URL cell = %q, want absent", entries[1].URL)
	}
	if len(entries[1].Characters) != 0 {
		t.Errorf("empty characters cell = %v, want empty", entries[1].Characters)
	}
}

func TestGroupWithoutOptionalColumnsResolved(t *testing.T) {
	t.Parallel()

	header := []string{"Name", "Tag"}
	rows := [][]string{{"Alpha", "Red"}}
	cols := ResolveColumns(header, DefaultCandidates())

	g := Group(header, rows, cols)
	e := g.Entries("Red")[0]
	if e.URL != "" || len(e.Characters) != 0 {
		t.Errorf("entry = %+v, want absent URL and no characters", e)
	}
}

func TestGroupTrimsNameAndTag(t *testing.T) {
	t.Parallel()

	header := []string{"Name", "Tag"}
	rows := [][]string{{"  Alpha  ", "  Red  "}}
	cols := ResolveColumns(header, DefaultCandidates())

	g := Group(header, rows, cols)
	if got := g.Labels(); len(got) != 1 || got[0] != "Red" {
		t.Fatalf("Labels() = %v, want [Red]", got)
	}
	if e := g.Entries("Red")[0]; e.Name != "Alpha" {
		t.Errorf("Name = %q, want Alpha", e.Name)
	}
}

// ---------------------------------------------------------------------------
// TestSplitList - Character Cell Splitting
// ---------------------------------------------------------------------------

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "single value",
			input:    "Ann",
			expected: []string{"Ann"},
		},
		{
			name:     "trims and drops empty pieces",
			input:    "Ann, Bob,, Cleo ",
			expected: []string{"Ann", "Bob", "Cleo"},
		},
		{
			name:     "only separators",
			input:    ", ,,",
			expected: nil,
		},
		{
			name:     "preserves split order",
			input:    "Zed,Ann",
			expected: []string{"Zed", "Ann"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
