// Package pipeline wires the collaborators around the conversion core:
// extract → sanitize → parse → convert.
//
// A Pipeline holds no per-conversion state and may be shared; every Run
// gets its own identifier source from NewIDs.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
	"github.com/ditra-consulting/html-to-ricos-converter/core/convert"
	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// Pipeline converts markup strings into documents.
type Pipeline struct {
	// Extractor is optional; when nil the input is used as-is.
	Extractor core.Extractor
	// Sanitizer is optional; when nil the input is trusted.
	Sanitizer core.Sanitizer
	Parser    core.Parser
	// NewIDs returns the identifier source for one conversion.
	NewIDs  func() ricos.IDSource
	Options []convert.Option
}

// RandomIDs returns an ID factory. A zero seed gives a different sequence
// per conversion; any other seed makes output reproducible.
func RandomIDs(seed int64) func() ricos.IDSource {
	return func() ricos.IDSource {
		if seed == 0 {
			return ricos.NewRandomIDs(time.Now().UnixNano())
		}
		return ricos.NewRandomIDs(seed)
	}
}

// Run converts html. source names the input for metadata and logging.
func (p *Pipeline) Run(source, html string) (*core.Result, error) {
	if strings.TrimSpace(html) == "" {
		return nil, core.ErrInputMissing
	}
	logger := log.With().Str("source", source).Logger()
	logger.Debug().Str("size", humanize.Bytes(uint64(len(html)))).Msg("converting")

	meta := core.SourceMetadata{Source: source}
	if p.Extractor != nil {
		page, err := p.Extractor.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		html = page.HTML
		meta.Title = page.Title
		meta.Language = page.Language
		logger.Debug().Str("size", humanize.Bytes(uint64(len(html)))).Msg("extracted content")
	}

	if p.Sanitizer != nil {
		html = p.Sanitizer.Sanitize(html)
		logger.Debug().Str("size", humanize.Bytes(uint64(len(html)))).Msg("sanitized")
	}

	root, err := p.Parser.Parse(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var ids ricos.IDSource
	if p.NewIDs != nil {
		ids = p.NewIDs()
	}
	doc := convert.Convert(root, ids, p.Options...)
	logger.Debug().Int("nodes", len(doc.Nodes)).Msg("converted")

	return &core.Result{Document: doc, HTML: html, Meta: meta}, nil
}
