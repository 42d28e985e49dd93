// ABOUTME: Markdown renderer implementation backed by goldmark
// ABOUTME: Converts markdown text to HTML with GFM extensions and heading anchors

package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer implements the MarkdownRenderer interface using goldmark
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a goldmark-backed renderer. Raw HTML in the source
// passes through unmodified: document HTML is trusted here, the content is
// authored, not user-submitted.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown text to an HTML markup string
func (r *Renderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
