// Package convert turns a sanitized HTML tree into a rich-content Document.
//
// The conversion is a pure function of its input: one call walks one tree
// and returns one Document. The parser that produced the tree and the
// identifier source are supplied by the caller, so concurrent calls share
// nothing.
package convert

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// Layout holds the fixed table metadata emitted with every table.
type Layout struct {
	ColWidthRatio int
	ColMinWidth   int
	RowHeight     int
	BorderColor   string
	BorderWidth   int
	BorderStyle   string
}

// DefaultLayout is the table metadata used unless overridden.
var DefaultLayout = Layout{
	ColWidthRatio: 1,
	ColMinWidth:   120,
	RowHeight:     47,
	BorderColor:   "#CCCCCC",
	BorderWidth:   1,
	BorderStyle:   "solid",
}

const (
	defaultImageWidth  = 500
	defaultImageHeight = 300
	defaultMaxDepth    = 256
)

// Option customizes a conversion.
type Option func(*converter)

// WithLayout overrides the table layout metadata.
func WithLayout(l Layout) Option {
	return func(c *converter) { c.layout = l }
}

// WithImageSize sets the size used for images without usable dimensions.
func WithImageSize(width, height int) Option {
	return func(c *converter) {
		if width > 0 {
			c.imageWidth = width
		}
		if height > 0 {
			c.imageHeight = height
		}
	}
}

// WithMaxDepth bounds element nesting. Subtrees below the bound are
// flattened to their text.
func WithMaxDepth(depth int) Option {
	return func(c *converter) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// converter is the state shared by the inline and block passes of a single
// conversion.
type converter struct {
	ids         ricos.IDSource
	layout      Layout
	imageWidth  int
	imageHeight int
	maxDepth    int
	depth       int
}

func newConverter(ids ricos.IDSource, opts []Option) *converter {
	if ids == nil {
		ids = &ricos.Counter{}
	}
	c := &converter{
		ids:         ids,
		layout:      DefaultLayout,
		imageWidth:  defaultImageWidth,
		imageHeight: defaultImageHeight,
		maxDepth:    defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts the tree rooted at root. If root is a whole document the
// <body> element is converted. A nil ids falls back to a Counter.
func Convert(root *html.Node, ids ricos.IDSource, opts ...Option) ricos.Document {
	c := newConverter(ids, opts)
	if root == nil {
		return ricos.Document{Nodes: []*ricos.Node{}}
	}

	body := root
	if root.Type == html.DocumentNode {
		if b := dom.FindFirstNode(root, func(n *html.Node) bool {
			return dom.NodeName(n) == "body"
		}); b != nil {
			body = b
		}
	}

	nodes := c.normalize(c.walk(body))
	if nodes == nil {
		nodes = []*ricos.Node{}
	}
	return ricos.Document{Nodes: nodes}
}

// enter tracks nesting depth; it reports false once the bound is reached.
func (c *converter) enter() bool {
	if c.depth >= c.maxDepth {
		return false
	}
	c.depth++
	return true
}

func (c *converter) leave() {
	c.depth--
}

func (c *converter) spacing() *ricos.Node {
	return ricos.NewSpacing(c.ids.NextID())
}

// blockTags are the elements that break out of inline content.
var blockTags = map[string]bool{
	"p": true, "div": true, "blockquote": true, "pre": true,
	"ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// structuralTags are the elements the tree walker hands to the block
// dispatcher instead of grouping them into a paragraph.
var structuralTags = map[string]bool{
	"table": true, "hr": true, "code": true,
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockTags[dom.NodeName(n)]
}

func isStructural(n *html.Node) bool {
	return isBlock(n) || (n.Type == html.ElementNode && structuralTags[dom.NodeName(n)])
}

func attr(n *html.Node, key string) string {
	return dom.GetAttributeOr(n, key, "")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// collapseSpace folds whitespace runs into single spaces without trimming.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				b.WriteByte(' ')
			}
			space = true
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

// flatText is the element's text content with whitespace collapsed.
func flatText(n *html.Node) string {
	return collapseSpace(dom.CollectText(n))
}
