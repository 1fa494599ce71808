// Package render provides output renderers for converted documents.
// This file implements the Markdown preview, produced from the same
// sanitized markup the document was converted from.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
)

// MarkdownRenderer converts the sanitized HTML to Markdown using html-to-markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown twin of the converted input.
func (r *MarkdownRenderer) Render(res *core.Result) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(res.HTML)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
