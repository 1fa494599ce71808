// Package extract implements the Extractor interface.
// It isolates the main content from a full HTML page by:
//  1. Finding the best content container (<main>, <article>, or <body>)
//  2. Removing noise elements (nav, footer, scripts, forms, etc.)
//
// Fragments that are not full pages pass through unchanged.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful content to the document.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// pageRegex detects markup that is a whole page rather than a fragment.
var pageRegex = regexp.MustCompile(`(?i)<(!doctype|html|head|body)[\s>]`)

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// IsPage reports whether html looks like a full document.
func IsPage(html string) bool {
	return pageRegex.MatchString(html)
}

// Extract takes raw HTML and returns the inner markup of its main content
// container along with the page title and language.
func (e *HTMLExtractor) Extract(html string) (*core.Page, error) {
	if !IsPage(html) {
		return &core.Page{HTML: html}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	page := &core.Page{
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Language: doc.Find("html").AttrOr("lang", ""),
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	inner, err := content.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing content: %w", err)
	}
	page.HTML = inner
	return page, nil
}
