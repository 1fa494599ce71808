package convert

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// block converts one block-level element. It returns a sequence rather than
// a single node so section containers can carry spacing with them.
func (c *converter) block(n *html.Node) []*ricos.Node {
	if !c.enter() {
		return []*ricos.Node{ricos.NewParagraph(c.ids.NextID(), ricos.AlignAuto, c.flattened([]*html.Node{n})...)}
	}
	defer c.leave()

	switch tag := dom.NodeName(n); tag {
	case "p":
		style := ParseStyle(attr(n, "style"))
		p := ricos.NewParagraph(c.ids.NextID(), alignmentOr(style.Alignment, ricos.AlignAuto), c.inline(n)...)
		if style.HasMargin || style.HasPadding {
			p.ParagraphData.Indentation = 1
		}
		return []*ricos.Node{p}

	case "h1", "h2", "h3", "h4", "h5", "h6":
		style := ParseStyle(attr(n, "style"))
		level := int(tag[1] - '0')
		return []*ricos.Node{ricos.NewHeading(c.ids.NextID(), level, alignmentOr(style.Alignment, ricos.AlignAuto), c.inline(n)...)}

	case "ul", "ol":
		t := ricos.TypeBulletedList
		if tag == "ol" {
			t = ricos.TypeOrderedList
		}
		id := c.ids.NextID()
		return []*ricos.Node{ricos.NewNode(t, id, c.normalize(c.walk(n))...)}

	case "li":
		return []*ricos.Node{ricos.NewNode(ricos.TypeListItem, c.ids.NextID(), c.inline(n)...)}

	case "blockquote":
		return []*ricos.Node{ricos.NewNode(ricos.TypeBlockquote, c.ids.NextID(), c.inline(n)...)}

	case "pre", "code":
		code := ricos.NewNode(ricos.TypeCodeBlock, c.ids.NextID())
		if text := dom.CollectText(n); !isBlank(text) {
			code.Nodes = append(code.Nodes, ricos.NewText(text))
		}
		return []*ricos.Node{code}

	case "div":
		return c.div(n)

	case "table":
		return c.table(n)

	case "hr":
		return []*ricos.Node{ricos.NewNode(ricos.TypeDivider, c.ids.NextID())}

	default:
		return []*ricos.Node{ricos.NewParagraph(c.ids.NextID(), ricos.AlignAuto, c.inline(n)...)}
	}
}

// div converts a container. Containers holding block children are unwrapped;
// others become a single paragraph. Inline elements beside blocks each get
// their own paragraph. Sections are framed by spacing.
func (c *converter) div(n *html.Node) []*ricos.Node {
	class := ParseClass(attr(n, "class"))

	var out []*ricos.Node
	if class.IsSection {
		out = append(out, c.spacing(), c.spacing())
	}

	if hasBlockChild(n) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			switch ch.Type {
			case html.ElementNode:
				if isStructural(ch) {
					out = append(out, c.block(ch)...)
					continue
				}
				if content := c.inlineElement(ch); len(content) > 0 {
					out = append(out, ricos.NewParagraph(c.ids.NextID(), ricos.AlignAuto, content...))
				}
			case html.TextNode:
				if !isBlank(ch.Data) {
					out = append(out, ricos.NewParagraph(c.ids.NextID(), ricos.AlignAuto, ricos.NewText(collapseSpace(ch.Data))))
				}
			}
		}
	} else {
		align := class.Alignment
		if align == "" {
			align = ParseStyle(attr(n, "style")).Alignment
		}
		out = append(out, ricos.NewParagraph(c.ids.NextID(), alignmentOr(align, ricos.AlignAuto), c.inline(n)...))
	}

	if class.IsSection {
		out = append(out, c.spacing(), c.spacing())
	}
	return out
}

func hasBlockChild(n *html.Node) bool {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if isBlock(ch) {
			return true
		}
	}
	return false
}

func isSection(n *html.Node) bool {
	return n.Type == html.ElementNode && dom.NodeName(n) == "div" && ParseClass(attr(n, "class")).IsSection
}
