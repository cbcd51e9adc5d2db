package pipeline

// Notes:
// - ParseRenderMode: tests mode names and aliases
// - RenderFragment: tests escaping of user-supplied text, placeholder dashes,
//   preamble ordering, and the colored-table metadata handling
// - normalizeColor: tests "#" prefixing and fallback

import (
	"context"
	"strings"
	"testing"
)

func testGroups(t *testing.T) *GroupIndex {
	t.Helper()
	g := NewGroupIndex()
	g.add("Red", Entry{Name: "Alpha", URL: "http://x", Characters: []string{"Ann", "Bob"}})
	g.add("Red", Entry{Name: "Beta"})
	g.add("Blue", Entry{Name: "Gamma"})
	return g
}

func renderString(t *testing.T, mode RenderMode, doc *Document) string {
	t.Helper()
	r, err := NewRenderer(mode, RendererOptions{})
	if err != nil {
		t.Fatalf("NewRenderer(%s): %v", mode, err)
	}
	out, err := r.RenderFragment(context.Background(), doc)
	if err != nil {
		t.Fatalf("RenderFragment: %v", err)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestParseRenderMode - Mode Names and Aliases
// ---------------------------------------------------------------------------

func TestParseRenderMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected RenderMode
		wantErr  bool
	}{
		{input: "", expected: ModeTable},
		{input: "table", expected: ModeTable},
		{input: "nested-list", expected: ModeNestedList},
		{input: "list", expected: ModeNestedList},
		{input: "colored-table", expected: ModeColoredTable},
		{input: "Colored", expected: ModeColoredTable},
		{input: " TABLE ", expected: ModeTable},
		{input: "grid", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("input_"+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRenderMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRenderMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRenderMode(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseRenderMode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderFragment - Escaping and Placeholders
// ---------------------------------------------------------------------------

func TestRenderFragmentEscapesUserText(t *testing.T) {
	t.Parallel()

	g := NewGroupIndex()
	g.add("<b>Tag</b>", Entry{
		Name:       `<script>alert("x")</script>`,
		URL:        `http://x/?a="1"&b=2`,
		Characters: []string{"A<n>n"},
	})

	for _, mode := range []RenderMode{ModeTable, ModeNestedList, ModeColoredTable} {
		out := renderString(t, mode, &Document{Groups: g})

		if strings.Contains(out, "<script>") {
			t.Errorf("%s: script tag survived escaping:\n%s", mode, out)
		}
		if !strings.Contains(out, "&lt;script&gt;") {
			t.Errorf("%s: expected escaped script text", mode)
		}
		if !strings.Contains(out, "&lt;b&gt;Tag&lt;/b&gt;") {
			t.Errorf("%s: expected escaped cluster label", mode)
		}
		if !strings.Contains(out, "A&lt;n&gt;n") {
			t.Errorf("%s: expected escaped character name", mode)
		}
		// Quotes must not survive inside the href attribute value.
		if !strings.Contains(out, `href="http://x/?a=&#34;1&#34;&amp;b=2"`) {
			t.Errorf("%s: expected quote-escaped href, got:\n%s", mode, out)
		}
	}
}

func TestRenderFragmentPlaceholders(t *testing.T) {
	t.Parallel()

	g := NewGroupIndex()
	g.add("Red", Entry{Name: "Beta"})

	for _, mode := range []RenderMode{ModeTable, ModeNestedList} {
		out := renderString(t, mode, &Document{Groups: g})
		if got := strings.Count(out, placeholderDash); got != 2 {
			t.Errorf("%s: placeholder count = %d, want 2 (characters and link):\n%s", mode, got, out)
		}
		if strings.Contains(out, "<a ") {
			t.Errorf("%s: unexpected anchor for absent URL", mode)
		}
	}
}

func TestRenderFragmentLinkLabel(t *testing.T) {
	t.Parallel()

	g := NewGroupIndex()
	g.add("Red", Entry{Name: "Alpha", URL: "http://x"})

	out := renderString(t, ModeTable, &Document{Groups: g})
	if !strings.Contains(out, `<a href="http://x" target="_blank" rel="noopener">Content available</a>`) {
		t.Errorf("expected default link label anchor, got:\n%s", out)
	}

	r, err := NewRenderer(ModeTable, RendererOptions{LinkLabel: "Read"})
	if err != nil {
		t.Fatal(err)
	}
	out, err = r.RenderFragment(context.Background(), &Document{Groups: g})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, ">Read</a>") {
		t.Errorf("expected custom link label, got:\n%s", out)
	}
}

func TestRenderFragmentPreambleOrder(t *testing.T) {
	t.Parallel()

	out := renderString(t, ModeTable, &Document{
		Title:     "Table of Contents",
		IntroHTML: "<p>intro</p>",
		Groups:    testGroups(t),
	})

	intro := strings.Index(out, "<p>intro</p>")
	title := strings.Index(out, "<h1>Table of Contents</h1>")
	first := strings.Index(out, "<h2>Red</h2>")
	if intro == -1 || title == -1 || first == -1 {
		t.Fatalf("missing preamble pieces:\n%s", out)
	}
	if !(intro < title && title < first) {
		t.Errorf("preamble order wrong: intro=%d title=%d firstGroup=%d", intro, title, first)
	}
}

func TestRenderFragmentGroupOrder(t *testing.T) {
	t.Parallel()

	out := renderString(t, ModeTable, &Document{Groups: testGroups(t)})
	if strings.Index(out, "<h2>Red</h2>") > strings.Index(out, "<h2>Blue</h2>") {
		t.Errorf("clusters rendered out of first-seen order:\n%s", out)
	}
}

func TestRenderFragmentDeterministic(t *testing.T) {
	t.Parallel()

	doc := &Document{Title: "T", Groups: testGroups(t)}
	first := renderString(t, ModeTable, doc)
	second := renderString(t, ModeTable, doc)
	if first != second {
		t.Error("rendering the same document twice produced different output")
	}
}

// ---------------------------------------------------------------------------
// TestRenderFragment - Colored Table Metadata
// ---------------------------------------------------------------------------

func TestColoredTableUsesMeta(t *testing.T) {
	t.Parallel()

	meta := ClusterMeta{
		"Red": {Color: "ff0000", Description: "the red ones"},
	}
	out := renderString(t, ModeColoredTable, &Document{Groups: testGroups(t), Meta: meta})

	if !strings.Contains(out, `<h2 style="color:#ff0000;">Red</h2>`) {
		t.Errorf("expected normalized meta color on Red heading:\n%s", out)
	}
	if !strings.Contains(out, ">the red ones</p>") {
		t.Errorf("expected description caption:\n%s", out)
	}
	// Blue has no metadata: default color, no caption.
	if !strings.Contains(out, `<h2 style="color:`+DefaultClusterColor+`;">Blue</h2>`) {
		t.Errorf("expected default color on Blue heading:\n%s", out)
	}
}

func TestPlainModesIgnoreMeta(t *testing.T) {
	t.Parallel()

	meta := ClusterMeta{"Red": {Color: "#ff0000", Description: "hidden"}}
	for _, mode := range []RenderMode{ModeTable, ModeNestedList} {
		out := renderString(t, mode, &Document{Groups: testGroups(t), Meta: meta})
		if strings.Contains(out, "ff0000") || strings.Contains(out, "hidden") {
			t.Errorf("%s: metadata leaked into plain layout:\n%s", mode, out)
		}
	}
}

func TestRenderFragmentContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRenderer(ModeTable, RendererOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderFragment(ctx, &Document{Groups: testGroups(t)}); err == nil {
		t.Error("expected error from canceled context")
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeColor - Color Normalization
// ---------------------------------------------------------------------------

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		color    string
		expected string
	}{
		{name: "empty falls back", color: "", expected: DefaultClusterColor},
		{name: "whitespace falls back", color: "  ", expected: DefaultClusterColor},
		{name: "prefixes hash", color: "ff0000", expected: "#ff0000"},
		{name: "keeps existing hash", color: "#00ff00", expected: "#00ff00"},
		{name: "malformed passed through", color: "not-a-color", expected: "#not-a-color"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeColor(tt.color, DefaultClusterColor); got != tt.expected {
				t.Errorf("normalizeColor(%q) = %q, want %q", tt.color, got, tt.expected)
			}
		})
	}
}
