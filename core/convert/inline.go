package convert

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// inline converts the children of n into a flat run of inline nodes.
func (c *converter) inline(n *html.Node) []*ricos.Node {
	var children []*html.Node
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, ch)
	}
	return c.inlineRun(n, children)
}

// inlineRun converts children, a subset of parent's children, into inline
// nodes. Decorations from parent's style apply to every direct text child;
// they are not inherited by nested elements.
func (c *converter) inlineRun(parent *html.Node, children []*html.Node) []*ricos.Node {
	if !c.enter() {
		return c.flattened(children)
	}
	defer c.leave()

	inherited := parentDecorations(ParseStyle(attr(parent, "style")))

	var out []*ricos.Node
	for _, ch := range children {
		switch ch.Type {
		case html.TextNode:
			if isBlank(ch.Data) {
				continue
			}
			out = append(out, ricos.NewText(collapseSpace(ch.Data), copyDecorations(inherited)...))
		case html.ElementNode:
			out = append(out, c.inlineElement(ch)...)
		}
	}
	return out
}

func (c *converter) inlineElement(n *html.Node) []*ricos.Node {
	switch tag := dom.NodeName(n); tag {
	case "strong", "b":
		return decorated(n, ricos.Bold(700))
	case "em", "i":
		return decorated(n, ricos.Italic())
	case "u":
		return decorated(n, ricos.Underline())
	case "a":
		href, ok := dom.GetAttribute(n, "href")
		if !ok || href == "" {
			return decorated(n, ricos.Underline())
		}
		target := ricos.TargetSelf
		if attr(n, "target") == "_blank" {
			target = ricos.TargetBlank
		}
		return decorated(n, ricos.LinkTo(href, target), ricos.Underline())
	case "span":
		return c.inline(n)
	case "br":
		return []*ricos.Node{ricos.NewText("\n")}
	case "img":
		return []*ricos.Node{c.image(n)}
	default:
		if blockTags[tag] {
			return materialize(c.block(n), c.spacing)
		}
		return c.inline(n)
	}
}

// decorated flattens n to a single text leaf. Decorations of markup nested
// inside n are not kept.
func decorated(n *html.Node, decorations ...ricos.Decoration) []*ricos.Node {
	text := flatText(n)
	if isBlank(text) {
		return nil
	}
	return []*ricos.Node{ricos.NewText(text, decorations...)}
}

// image reads the size attributes; a zero size counts as unset.
func (c *converter) image(n *html.Node) *ricos.Node {
	width, ok := leadingInt(attr(n, "width"))
	if !ok || width == 0 {
		width = c.imageWidth
	}
	height, ok := leadingInt(attr(n, "height"))
	if !ok || height == 0 {
		height = c.imageHeight
	}
	return ricos.NewImage(c.ids.NextID(), attr(n, "src"), width, height)
}

// flattened is used once the depth bound is hit.
func (c *converter) flattened(children []*html.Node) []*ricos.Node {
	var out []*ricos.Node
	for _, ch := range children {
		var text string
		if ch.Type == html.TextNode {
			text = collapseSpace(ch.Data)
		} else {
			text = flatText(ch)
		}
		if !isBlank(text) {
			out = append(out, ricos.NewText(text))
		}
	}
	return out
}

func parentDecorations(s Style) []ricos.Decoration {
	var d []ricos.Decoration
	if s.Color != "" {
		d = append(d, ricos.Color(s.Color))
	}
	if s.FontWeight >= 600 {
		d = append(d, ricos.Bold(s.FontWeight))
	}
	return d
}

func copyDecorations(d []ricos.Decoration) []ricos.Decoration {
	if len(d) == 0 {
		return nil
	}
	return append([]ricos.Decoration(nil), d...)
}
