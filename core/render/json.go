// Package render: JSON renderer.
// Serializes the converted document as the rich-content JSON consumed by
// the downstream editor. This is the contract output; the other renderers
// are previews.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
)

// JSONRenderer produces document JSON.
type JSONRenderer struct {
	Pretty bool
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(pretty bool) *JSONRenderer {
	return &JSONRenderer{Pretty: pretty}
}

// Render marshals the document.
func (r *JSONRenderer) Render(res *core.Result) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if r.Pretty {
		data, err = json.MarshalIndent(res.Document, "", "  ")
	} else {
		data, err = json.Marshal(res.Document)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
