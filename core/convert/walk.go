package convert

import (
	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// walk converts the children of n into a block sequence. Consecutive inline
// children are gathered into one paragraph; block children go through the
// dispatcher. The result still needs normalize.
func (c *converter) walk(n *html.Node) []*ricos.Node {
	var (
		out []*ricos.Node
		run []*html.Node
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		if content := c.inlineRun(n, run); len(content) > 0 {
			out = append(out, ricos.NewParagraph(c.ids.NextID(), ricos.AlignAuto, content...))
		}
		run = nil
	}

	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch {
		case ch.Type == html.TextNode, ch.Type == html.ElementNode && !isStructural(ch):
			run = append(run, ch)
		case ch.Type == html.ElementNode:
			flush()
			out = append(out, c.block(ch)...)
			if isSection(ch) {
				out = append(out, c.spacing(), c.spacing())
			}
		}
	}
	flush()
	return out
}
