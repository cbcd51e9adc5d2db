package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// ErrIntroConversion indicates the intro Markdown could not be rendered.
var ErrIntroConversion = errors.New("intro conversion failed")

// MarkdownConverter abstracts Markdown to HTML fragment conversion.
type MarkdownConverter interface {
	ToFragment(ctx context.Context, content string) (string, error)
}

// Compile-time interface check.
var _ MarkdownConverter = (*GoldmarkConverter)(nil)

// GoldmarkConverter renders the optional intro block using goldmark
// (pure Go). Output is a fragment, not a document: the host page supplies
// its own <html>/<head>.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions
// and class-based syntax highlighting for fenced code blocks.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		// Note: WithUnsafe() intentionally NOT used. Raw HTML in the
		// intro stays escaped, same as all other user-supplied text.
	)
	return &GoldmarkConverter{md: md}
}

// ToFragment converts Markdown to an HTML fragment. Supports context
// cancellation via the goroutine + select pattern since goldmark doesn't
// natively support context.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrIntroConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
