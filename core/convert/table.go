package convert

import (
	"github.com/JohannesKaufmann/dom"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// rowSelector finds rows at any depth below the table, whichever section
// they sit in.
var rowSelector = cascadia.MustCompile("tr")

// table converts a table element. Layout metadata comes from c.layout and is
// not measured from content.
func (c *converter) table(n *html.Node) []*ricos.Node {
	rows := rowSelector.MatchAll(n)
	if len(rows) == 0 {
		return []*ricos.Node{c.spacing()}
	}

	t := ricos.NewNode(ricos.TypeTable, c.ids.NextID())
	cols := 0
	for _, row := range rows {
		header := row.Parent != nil && dom.NodeName(row.Parent) == "thead"

		r := ricos.NewNode(ricos.TypeTableRow, c.ids.NextID())
		width := 0
		for cell := row.FirstChild; cell != nil; cell = cell.NextSibling {
			if cell.Type != html.ElementNode {
				continue
			}
			tag := dom.NodeName(cell)
			if tag != "td" && tag != "th" {
				continue
			}
			tc, span := c.cell(cell, header || tag == "th")
			r.Nodes = append(r.Nodes, tc)
			width += span
		}
		if width > cols {
			cols = width
		}
		t.Nodes = append(t.Nodes, r)
	}

	t.TableData = &ricos.TableData{
		Dimensions: ricos.Dimensions{
			ColsWidthRatio: repeat(c.layout.ColWidthRatio, cols),
			RowsHeight:     repeat(c.layout.RowHeight, len(rows)),
			ColsMinWidth:   repeat(c.layout.ColMinWidth, cols),
		},
		BorderColor: c.layout.BorderColor,
		CellStyle: ricos.CellStyle{
			BorderWidth: c.layout.BorderWidth,
			BorderStyle: c.layout.BorderStyle,
		},
	}
	return []*ricos.Node{t}
}

// cell converts a td or th and returns the number of columns it spans.
func (c *converter) cell(n *html.Node, header bool) (*ricos.Node, int) {
	content := c.inline(n)
	if len(content) == 0 {
		if text := flatText(n); !isBlank(text) {
			content = []*ricos.Node{ricos.NewText(text)}
		}
	}
	if header {
		for _, t := range content {
			if t.Type == ricos.TypeText && !ricos.HasDecoration(t, ricos.DecorationBold) {
				t.TextData.Decorations = append(t.TextData.Decorations, ricos.Bold(700))
			}
		}
	}

	id := c.ids.NextID()
	tc := ricos.NewNode(ricos.TypeTableCell, id, ricos.NewParagraph(c.ids.NextID(), ricos.AlignCenter, content...))

	span := 1
	var data ricos.CellData
	if v, ok := dom.GetAttribute(n, "colspan"); ok {
		data.Colspan = 1
		if k, ok := leadingInt(v); ok && k > 0 {
			data.Colspan = k
		}
		span = data.Colspan
	}
	if v, ok := dom.GetAttribute(n, "rowspan"); ok {
		data.Rowspan = 1
		if k, ok := leadingInt(v); ok && k > 0 {
			data.Rowspan = k
		}
	}
	if data.Colspan > 0 || data.Rowspan > 0 {
		tc.CellData = &data
	}
	return tc, span
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
