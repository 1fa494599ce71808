package convert

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ditra-consulting/html-to-ricos-converter/core/parse"
	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

func convertString(t *testing.T, markup string, opts ...Option) ricos.Document {
	t.Helper()
	root, err := parse.New().Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return Convert(root, &ricos.Counter{}, opts...)
}

// kinds lists node types, showing spacing nodes as "SPACE".
func kinds(nodes []*ricos.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if ricos.IsSpacing(n) {
			out[i] = "SPACE"
			continue
		}
		out[i] = string(n.Type)
	}
	return out
}

func TestConvert_PlainText(t *testing.T) {
	doc := convertString(t, "Hello world")

	require.Len(t, doc.Nodes, 1)
	p := doc.Nodes[0]
	assert.Equal(t, ricos.TypeParagraph, p.Type)
	require.Len(t, p.Nodes, 1)
	assert.Equal(t, "Hello world", p.Nodes[0].TextData.Text)
	assert.Empty(t, p.Nodes[0].TextData.Decorations)
	assert.Equal(t, "", p.Nodes[0].ID)
	assert.NotEmpty(t, p.ID)
}

func TestConvert_Empty(t *testing.T) {
	doc := convertString(t, "   ")
	assert.NotNil(t, doc.Nodes)
	assert.Empty(t, doc.Nodes)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[]}`, string(data))
}

func TestConvert_AdjacentHeadingsShareOneSpacing(t *testing.T) {
	doc := convertString(t, "<h2>A</h2><h2>B</h2>")
	assert.Equal(t, []string{"HEADING", "SPACE", "HEADING"}, kinds(doc.Nodes))
}

func TestConvert_HeadingSpacing(t *testing.T) {
	doc := convertString(t, "<h1>Title</h1><p>a</p><h4>Sub</h4><p>b</p>")
	assert.Equal(t, []string{"HEADING", "SPACE", "PARAGRAPH", "SPACE", "HEADING", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))
	assert.Equal(t, 1, doc.Nodes[0].HeadingData.Level)
	assert.Equal(t, 4, doc.Nodes[4].HeadingData.Level)
}

func TestConvert_HeadingAlignment(t *testing.T) {
	doc := convertString(t, `<h3 style="text-align: center">x</h3><h5>y</h5>`)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, ricos.AlignCenter, doc.Nodes[0].HeadingData.TextStyle.TextAlignment)
	assert.Equal(t, ricos.AlignAuto, doc.Nodes[2].HeadingData.TextStyle.TextAlignment)
}

func TestConvert_TableHeaderCellsAreBold(t *testing.T) {
	doc := convertString(t, "<table><tr><th>H</th></tr><tr><td>C</td></tr></table>")

	require.Len(t, doc.Nodes, 1)
	table := doc.Nodes[0]
	require.Equal(t, ricos.TypeTable, table.Type)
	require.Len(t, table.Nodes, 2)

	header := cellText(t, table, 0, 0)
	assert.Equal(t, "H", header.TextData.Text)
	assert.True(t, ricos.HasDecoration(header, ricos.DecorationBold))
	assert.Equal(t, 700, *header.TextData.Decorations[0].FontWeightValue)

	data := cellText(t, table, 1, 0)
	assert.Equal(t, "C", data.TextData.Text)
	assert.False(t, ricos.HasDecoration(data, ricos.DecorationBold))
}

func cellText(t *testing.T, table *ricos.Node, row, col int) *ricos.Node {
	t.Helper()
	cell := table.Nodes[row].Nodes[col]
	require.Equal(t, ricos.TypeTableCell, cell.Type)
	require.Len(t, cell.Nodes, 1)
	p := cell.Nodes[0]
	require.Equal(t, ricos.TypeParagraph, p.Type)
	assert.Equal(t, ricos.AlignCenter, p.ParagraphData.TextStyle.TextAlignment)
	require.NotEmpty(t, p.Nodes)
	return p.Nodes[0]
}

func TestConvert_TableLayout(t *testing.T) {
	doc := convertString(t, `<table><thead><tr><td>A</td><td>B</td></tr></thead>
		<tbody><tr><td colspan="2">wide</td></tr><tr><td>x</td></tr></tbody></table>`)

	require.Len(t, doc.Nodes, 1)
	table := doc.Nodes[0]
	require.Len(t, table.Nodes, 3)

	dims := table.TableData.Dimensions
	assert.Equal(t, []int{1, 1}, dims.ColsWidthRatio)
	assert.Equal(t, []int{120, 120}, dims.ColsMinWidth)
	assert.Equal(t, []int{47, 47, 47}, dims.RowsHeight)
	assert.Equal(t, "#CCCCCC", table.TableData.BorderColor)
	assert.Equal(t, ricos.CellStyle{BorderWidth: 1, BorderStyle: "solid"}, table.TableData.CellStyle)

	// thead cells count as header cells even when written as td.
	assert.True(t, ricos.HasDecoration(cellText(t, table, 0, 1), ricos.DecorationBold))

	wide := table.Nodes[1].Nodes[0]
	require.NotNil(t, wide.CellData)
	assert.Equal(t, 2, wide.CellData.Colspan)
	assert.Nil(t, table.Nodes[2].Nodes[0].CellData)
	// Rows keep their own cell counts.
	assert.Len(t, table.Nodes[2].Nodes, 1)
}

func TestConvert_TableLayoutOverride(t *testing.T) {
	layout := DefaultLayout
	layout.BorderColor = "#000000"
	layout.RowHeight = 30
	doc := convertString(t, "<table><tr><td>a</td></tr></table>", WithLayout(layout))

	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "#000000", doc.Nodes[0].TableData.BorderColor)
	assert.Equal(t, []int{30}, doc.Nodes[0].TableData.Dimensions.RowsHeight)
}

func TestConvert_EmptyTableActsAsSpacing(t *testing.T) {
	doc := convertString(t, "<p>a</p><table></table><p>b</p>")
	assert.Equal(t, []string{"PARAGRAPH", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))

	doc = convertString(t, "<table></table>")
	assert.Empty(t, doc.Nodes)
}

func TestConvert_BlankCellsStayEmpty(t *testing.T) {
	doc := convertString(t, "<table><tr><td>  </td><td><span> </span></td></tr></table>")
	require.Len(t, doc.Nodes, 1)
	row := doc.Nodes[0].Nodes[0]
	require.Len(t, row.Nodes, 2)
	assert.Empty(t, row.Nodes[0].Nodes[0].Nodes)
}

func TestConvert_Link(t *testing.T) {
	doc := convertString(t, `<a href="http://x.com">t</a>`)

	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Nodes, 1)
	text := doc.Nodes[0].Nodes[0]
	assert.Equal(t, "t", text.TextData.Text)

	data, err := json.Marshal(text.TextData.Decorations)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"LINK","linkData":{"link":{"url":"http://x.com","target":"SELF","rel":{"noreferrer":true}}}},
		{"type":"UNDERLINE"}
	]`, string(data))
}

func TestConvert_LinkTargetBlank(t *testing.T) {
	doc := convertString(t, `<p><a href="/docs" target="_blank">docs</a></p>`)
	text := doc.Nodes[0].Nodes[0]
	assert.Equal(t, ricos.TargetBlank, text.TextData.Decorations[0].LinkData.Link.Target)
}

func TestConvert_SectionSpacingCollapses(t *testing.T) {
	doc := convertString(t, `<div class="section"><p>x</p></div>`)
	assert.Equal(t, []string{"PARAGRAPH"}, kinds(doc.Nodes))

	doc = convertString(t, `<p>a</p><div class="section"><p>x</p><p>y</p></div><p>b</p>`)
	assert.Equal(t, []string{"PARAGRAPH", "SPACE", "PARAGRAPH", "PARAGRAPH", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))

	doc = convertString(t, `<p>a</p><div class="container">inline only</div><p>b</p>`)
	assert.Equal(t, []string{"PARAGRAPH", "SPACE", "PARAGRAPH", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))
}

func TestConvert_SpacingInvariants(t *testing.T) {
	markup := `<div class="section"><h2>One</h2><ul><li>a</li></ul></div>
		<blockquote>q</blockquote><pre>code</pre><table></table>
		<div class="section"><div class="section"><h3>Two</h3></div></div>
		<p>tail</p><h6>end</h6>`
	doc := convertString(t, markup)

	require.NotEmpty(t, doc.Nodes)
	assert.False(t, ricos.IsSpacing(doc.Nodes[0]), "leading spacing")
	assert.False(t, ricos.IsSpacing(doc.Nodes[len(doc.Nodes)-1]), "trailing spacing")
	for i := 1; i < len(doc.Nodes); i++ {
		assert.False(t, ricos.IsSpacing(doc.Nodes[i-1]) && ricos.IsSpacing(doc.Nodes[i]), "adjacent spacing at %d", i)
	}
	for i, n := range doc.Nodes {
		if n.Type != ricos.TypeHeading {
			continue
		}
		if i > 0 {
			assert.True(t, ricos.IsSpacing(doc.Nodes[i-1]), "no spacing before heading %d", i)
		}
		if i < len(doc.Nodes)-1 {
			assert.True(t, ricos.IsSpacing(doc.Nodes[i+1]), "no spacing after heading %d", i)
		}
	}
}

func TestConvert_Lists(t *testing.T) {
	doc := convertString(t, "<ul>\n<li>a</li>\n<li>b</li>\n</ul><ol><li>c</li></ol><p>d</p>")

	assert.Equal(t, []string{"BULLETED_LIST", "SPACE", "ORDERED_LIST", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))
	assert.Equal(t, []string{"LIST_ITEM", "LIST_ITEM"}, kinds(doc.Nodes[0].Nodes))
	assert.Equal(t, "b", ricos.PlainText(doc.Nodes[0].Nodes[1]))
}

func TestConvert_NestedListKeepsSpacingInsideItem(t *testing.T) {
	doc := convertString(t, "<ul><li>a<ul><li>b</li></ul></li></ul>")

	require.Len(t, doc.Nodes, 1)
	item := doc.Nodes[0].Nodes[0]
	assert.Equal(t, []string{"TEXT", "BULLETED_LIST", "SPACE"}, kinds(item.Nodes))
}

func TestConvert_BlockInsideInline(t *testing.T) {
	doc := convertString(t, "<blockquote>said <h2>loud</h2></blockquote>")

	require.Len(t, doc.Nodes, 1)
	quote := doc.Nodes[0]
	assert.Equal(t, ricos.TypeBlockquote, quote.Type)
	// The spliced heading keeps its own before/after spacing.
	assert.Equal(t, []string{"TEXT", "SPACE", "HEADING", "SPACE", "SPACE"}, kinds(quote.Nodes))
}

func TestConvert_CodeBlock(t *testing.T) {
	doc := convertString(t, "<pre>  x := 1\n  <b>y</b></pre><p>after</p>")

	assert.Equal(t, []string{"CODE_BLOCK", "SPACE", "PARAGRAPH"}, kinds(doc.Nodes))
	code := doc.Nodes[0]
	require.Len(t, code.Nodes, 1)
	assert.Equal(t, "  x := 1\n  y", code.Nodes[0].TextData.Text)
	assert.Empty(t, code.Nodes[0].TextData.Decorations)
}

func TestConvert_BlankCodeBlockHasNoText(t *testing.T) {
	doc := convertString(t, "<pre>   </pre>")
	require.Equal(t, []string{"CODE_BLOCK"}, kinds(doc.Nodes))
	assert.NotNil(t, doc.Nodes[0].Nodes)
	assert.Empty(t, doc.Nodes[0].Nodes)
}

func TestConvert_TopLevelCode(t *testing.T) {
	doc := convertString(t, "<code>fmt.Println()</code>")
	assert.Equal(t, []string{"CODE_BLOCK"}, kinds(doc.Nodes))
}

func TestConvert_ParagraphStyle(t *testing.T) {
	doc := convertString(t, `<p style="margin-left: 20px; text-align: justify">x</p><p>y</p>`)

	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, 1, doc.Nodes[0].ParagraphData.Indentation)
	assert.Equal(t, ricos.AlignJustify, doc.Nodes[0].ParagraphData.TextStyle.TextAlignment)
	assert.Equal(t, 0, doc.Nodes[1].ParagraphData.Indentation)
	assert.Equal(t, ricos.AlignAuto, doc.Nodes[1].ParagraphData.TextStyle.TextAlignment)
}

func TestConvert_Div(t *testing.T) {
	doc := convertString(t, `<div class="text-right">only <em>inline</em></div>`)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, ricos.AlignRight, doc.Nodes[0].ParagraphData.TextStyle.TextAlignment)
	assert.Equal(t, "only inline", ricos.PlainText(doc.Nodes[0]))

	doc = convertString(t, `<div>stray<p>x</p><span>s</span></div>`)
	assert.Equal(t, []string{"PARAGRAPH", "PARAGRAPH", "PARAGRAPH"}, kinds(doc.Nodes))
	assert.Equal(t, "stray", ricos.PlainText(doc.Nodes[0]))
	assert.Equal(t, "s", ricos.PlainText(doc.Nodes[2]))
}

func TestConvert_DivKeepsInlineChildrenBesideBlocks(t *testing.T) {
	doc := convertString(t, `<div><p>x</p><img src="a.png"></div>`)
	require.Equal(t, []string{"PARAGRAPH", "PARAGRAPH"}, kinds(doc.Nodes))
	require.Len(t, doc.Nodes[1].Nodes, 1)
	assert.Equal(t, ricos.TypeImage, doc.Nodes[1].Nodes[0].Type)
	assert.Equal(t, "a.png", doc.Nodes[1].Nodes[0].ImageData.Image.Src.URL)

	doc = convertString(t, `<div><p>x</p><a href="http://x.com">link</a></div>`)
	require.Len(t, doc.Nodes, 2)
	link := doc.Nodes[1].Nodes[0]
	assert.Equal(t, "link", link.TextData.Text)
	assert.True(t, ricos.HasDecoration(link, ricos.DecorationLink))
	assert.True(t, ricos.HasDecoration(link, ricos.DecorationUnderline))

	doc = convertString(t, `<div><p>x</p>see <strong>bold</strong></div>`)
	require.Equal(t, []string{"PARAGRAPH", "PARAGRAPH", "PARAGRAPH"}, kinds(doc.Nodes))
	assert.Equal(t, "see ", ricos.PlainText(doc.Nodes[1]))
	assert.True(t, ricos.HasDecoration(doc.Nodes[2].Nodes[0], ricos.DecorationBold))

	doc = convertString(t, `<div><p>x</p><hr><em> </em></div>`)
	assert.Equal(t, []string{"PARAGRAPH", "DIVIDER"}, kinds(doc.Nodes))
}

func TestConvert_DividerAndUnknownTags(t *testing.T) {
	doc := convertString(t, "<p>a</p><hr><p>b</p>")
	assert.Equal(t, []string{"PARAGRAPH", "DIVIDER", "PARAGRAPH"}, kinds(doc.Nodes))
}

func TestConvert_InlineGrouping(t *testing.T) {
	doc := convertString(t, "Hello <b>bold</b> and <i>it</i><p>next</p>")

	require.Len(t, doc.Nodes, 2)
	first := doc.Nodes[0]
	require.Len(t, first.Nodes, 4)
	assert.Equal(t, "Hello ", first.Nodes[0].TextData.Text)
	assert.True(t, ricos.HasDecoration(first.Nodes[1], ricos.DecorationBold))
	assert.Equal(t, " and ", first.Nodes[2].TextData.Text)
	assert.True(t, ricos.HasDecoration(first.Nodes[3], ricos.DecorationItalic))
}

func TestConvert_ParentScopedDecorations(t *testing.T) {
	doc := convertString(t, `<p style="color: #ff0000; font-weight: bold">hi <strong>there</strong> you</p>`)

	require.Len(t, doc.Nodes, 1)
	texts := doc.Nodes[0].Nodes
	require.Len(t, texts, 3)

	data, err := json.Marshal(texts[0].TextData.Decorations)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"COLOR","colorData":{"color":"#ff0000"}},{"type":"BOLD","fontWeightValue":700}]`, string(data))

	// The strong child is flattened with only its own decoration.
	require.Len(t, texts[1].TextData.Decorations, 1)
	assert.Equal(t, ricos.DecorationBold, texts[1].TextData.Decorations[0].Type)

	assert.True(t, ricos.HasDecoration(texts[2], ricos.DecorationColor))
}

func TestConvert_LightFontWeightIsNotBold(t *testing.T) {
	doc := convertString(t, `<p style="font-weight: 500">x</p>`)
	assert.False(t, ricos.HasDecoration(doc.Nodes[0].Nodes[0], ricos.DecorationBold))
}

func TestConvert_SpanStyle(t *testing.T) {
	doc := convertString(t, `<p>a <span style="color: red">b</span></p>`)

	texts := doc.Nodes[0].Nodes
	require.Len(t, texts, 2)
	assert.Empty(t, texts[0].TextData.Decorations)
	require.Len(t, texts[1].TextData.Decorations, 1)
	assert.Equal(t, "red", texts[1].TextData.Decorations[0].ColorData.Color)
}

func TestConvert_FlatteningDropsNestedDecorations(t *testing.T) {
	doc := convertString(t, `<p><strong>bold <em>and italic</em></strong></p>`)

	texts := doc.Nodes[0].Nodes
	require.Len(t, texts, 1)
	assert.Equal(t, "bold and italic", texts[0].TextData.Text)
	assert.False(t, ricos.HasDecoration(texts[0], ricos.DecorationItalic))
}

func TestConvert_LineBreakAndWhitespace(t *testing.T) {
	doc := convertString(t, "<p>a\n   line<br>b</p>")

	texts := doc.Nodes[0].Nodes
	require.Len(t, texts, 3)
	assert.Equal(t, "a line", texts[0].TextData.Text)
	assert.Equal(t, "\n", texts[1].TextData.Text)
	assert.Equal(t, "b", texts[2].TextData.Text)
}

func TestConvert_Images(t *testing.T) {
	doc := convertString(t, `<p><img src="a.png"><img src="b.png" width="640px" height="x"></p>`)

	imgs := doc.Nodes[0].Nodes
	require.Len(t, imgs, 2)
	assert.Equal(t, ricos.TypeImage, imgs[0].Type)
	assert.Equal(t, "a.png", imgs[0].ImageData.Image.Src.URL)
	assert.Equal(t, 500, imgs[0].ImageData.Image.Width)
	assert.Equal(t, 300, imgs[0].ImageData.Image.Height)
	assert.Equal(t, 640, imgs[1].ImageData.Image.Width)
	assert.Equal(t, 300, imgs[1].ImageData.Image.Height)
	assert.NotEmpty(t, imgs[1].ID)

	doc = convertString(t, `<p><img src="a.png"></p>`, WithImageSize(800, 600))
	assert.Equal(t, 800, doc.Nodes[0].Nodes[0].ImageData.Image.Width)

	doc = convertString(t, `<p><img src="a.png" width="0" height="0px"></p>`)
	assert.Equal(t, 500, doc.Nodes[0].Nodes[0].ImageData.Image.Width)
	assert.Equal(t, 300, doc.Nodes[0].Nodes[0].ImageData.Image.Height)
}

func TestConvert_DepthBound(t *testing.T) {
	doc := convertString(t, "<p><span><span><span>deep</span></span></span></p>", WithMaxDepth(2))

	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "deep", ricos.PlainText(doc.Nodes[0]))
}

func TestConvert_LinearGrowth(t *testing.T) {
	const n = 200
	doc := convertString(t, strings.Repeat("<p>x</p>", n))
	assert.Len(t, doc.Nodes, n)

	nested := strings.Repeat("<div><p>x</p>", 50) + strings.Repeat("</div>", 50)
	doc = convertString(t, nested)
	assert.Len(t, doc.Nodes, 50)
}

func TestConvert_WholeDocumentUsesBody(t *testing.T) {
	root, err := parse.New().Parse(strings.NewReader("<p>x</p>"))
	require.NoError(t, err)
	doc := Convert(root, nil)
	assert.Len(t, doc.Nodes, 1)

	assert.Empty(t, Convert(nil, nil).Nodes)
}

func TestConvert_Deterministic(t *testing.T) {
	markup := `<h2>A</h2><ul><li>x</li></ul><table><tr><td>c</td></tr></table>`
	a, err := json.Marshal(convertString(t, markup))
	require.NoError(t, err)
	b, err := json.Marshal(convertString(t, markup))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
