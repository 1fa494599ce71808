// Package parse implements the Parser interface on top of x/net/html.
// Input is treated as a body fragment: the returned root is a <body>
// element holding the parsed nodes, whether or not the markup had one.
package parse

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FragmentParser parses markup in the context of a <body> element.
type FragmentParser struct{}

// New creates a FragmentParser.
func New() *FragmentParser {
	return &FragmentParser{}
}

// Parse reads markup from r and returns a <body> root.
func (p *FragmentParser) Parse(r io.Reader) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}
