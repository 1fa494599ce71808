// Package core defines the pipeline interfaces for the converter.
// Each stage around the conversion core is a small, replaceable interface.
package core

import (
	"context"
	"errors"
	"io"

	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// ErrInputMissing is returned when there is no markup to convert.
var ErrInputMissing = errors.New("no HTML input")

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	HTML        string
}

// SourceMetadata describes where a document came from.
type SourceMetadata struct {
	Source   string `json:"source"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

// Page is the content fragment selected from a full HTML page.
type Page struct {
	HTML     string
	Title    string
	Language string
}

// Result is one finished conversion together with what produced it.
type Result struct {
	Document ricos.Document
	// HTML is the sanitized markup the document was converted from.
	HTML string
	Meta SourceMetadata
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor selects the main content of a full HTML page.
type Extractor interface {
	Extract(html string) (*Page, error)
}

// Sanitizer restricts markup to the tags and attributes the converter knows.
type Sanitizer interface {
	Sanitize(html string) string
}

// Parser builds a navigable tree from markup.
type Parser interface {
	Parse(r io.Reader) (*html.Node, error)
}

// Renderer turns a conversion result into an output format.
type Renderer interface {
	Render(res *Result) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
