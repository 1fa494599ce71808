// Package render: PDF renderer.
// Draws a converted document as a PDF preview using gofpdf.
// Handles headings (variable font sizes), paragraphs with decorated runs,
// lists, quotes, code blocks, tables and dividers. Images are shown as a
// placeholder line; they are not downloaded.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ditra-consulting/html-to-ricos-converter/core"
	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

const (
	bodySize   = 10.0
	lineHeight = 5.0
	listIndent = 6.0
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders a document as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render draws the document into PDF bytes.
func (r *PDFRenderer) Render(res *core.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if res.Meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, w.tr(res.Meta.Title), "", "L", false)
		pdf.Ln(4)
	}
	if res.Meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, w.tr("Source: "+res.Meta.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, n := range res.Document.Nodes {
		w.block(n, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) block(n *ricos.Node, indent float64) {
	pdf := w.pdf
	left, _, _, _ := pdf.GetMargins()

	switch n.Type {
	case ricos.TypeParagraph:
		if ricos.IsSpacing(n) {
			pdf.Ln(3)
			return
		}
		pdf.SetX(left + indent)
		w.runs(n.Nodes, bodySize, indent)
		pdf.Ln(lineHeight + 1)

	case ricos.TypeHeading:
		size, ok := headingSizes[n.HeadingData.Level]
		if !ok {
			size = bodySize
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", size)
		pdf.SetX(left + indent)
		pdf.MultiCell(0, size*0.6, w.tr(strings.TrimSpace(ricos.PlainText(n))), "", alignStr(n.HeadingData.TextStyle.TextAlignment), false)
		pdf.Ln(2)

	case ricos.TypeBulletedList, ricos.TypeOrderedList:
		number := 0
		for _, item := range n.Nodes {
			if item.Type != ricos.TypeListItem {
				w.block(item, indent+listIndent)
				continue
			}
			number++
			prefix := "• "
			if n.Type == ricos.TypeOrderedList {
				prefix = strconv.Itoa(number) + ". "
			}
			pdf.SetFont("Helvetica", "", bodySize)
			pdf.SetX(left + indent + listIndent)
			pdf.Write(lineHeight, w.tr(prefix))
			w.runs(item.Nodes, bodySize, indent+listIndent)
			pdf.Ln(lineHeight)
		}
		pdf.Ln(1)

	case ricos.TypeBlockquote:
		pdf.SetTextColor(90, 90, 90)
		pdf.SetX(left + indent + listIndent)
		w.runs(n.Nodes, bodySize, indent+listIndent)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(lineHeight + 1)

	case ricos.TypeCodeBlock:
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		for _, line := range strings.Split(ricos.PlainText(n), "\n") {
			pdf.SetX(left + indent)
			pdf.MultiCell(0, 4.5, w.tr(line), "", "L", true)
		}
		pdf.Ln(2)

	case ricos.TypeTable:
		w.table(n, left+indent)

	case ricos.TypeImage:
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetX(left + indent)
		pdf.MultiCell(0, lineHeight, w.tr("[image: "+n.ImageData.Image.Src.URL+"]"), "", "C", false)

	case ricos.TypeDivider:
		pageW, _ := pdf.GetPageSize()
		_, _, right, _ := pdf.GetMargins()
		y := pdf.GetY() + 2
		pdf.SetDrawColor(180, 180, 180)
		pdf.Line(left+indent, y, pageW-right, y)
		pdf.Ln(4)

	default:
		pdf.SetX(left + indent)
		w.runs(n.Nodes, bodySize, indent)
		pdf.Ln(lineHeight)
	}
}

// runs writes inline content. Block nodes spliced into the run start on a
// new line.
func (w *pdfWriter) runs(nodes []*ricos.Node, size, indent float64) {
	pdf := w.pdf
	for _, n := range nodes {
		switch n.Type {
		case ricos.TypeText:
			if n.TextData.Text == "\n" {
				pdf.Ln(lineHeight)
				continue
			}
			w.text(n, size)
		case ricos.TypeImage:
			pdf.SetFont("Helvetica", "I", size)
			pdf.Write(lineHeight, w.tr("[image]"))
		default:
			pdf.Ln(lineHeight)
			w.block(n, indent)
		}
	}
	pdf.SetFont("Helvetica", "", size)
	pdf.SetTextColor(0, 0, 0)
}

func (w *pdfWriter) text(n *ricos.Node, size float64) {
	pdf := w.pdf
	var style, link string
	for _, d := range n.TextData.Decorations {
		switch d.Type {
		case ricos.DecorationBold:
			style += "B"
		case ricos.DecorationItalic:
			style += "I"
		case ricos.DecorationUnderline:
			style += "U"
		case ricos.DecorationColor:
			if r, g, b, ok := hexColor(d.ColorData.Color); ok {
				pdf.SetTextColor(r, g, b)
			}
		case ricos.DecorationLink:
			link = d.LinkData.Link.URL
		}
	}
	pdf.SetFont("Helvetica", style, size)
	if link != "" {
		pdf.WriteLinkString(lineHeight, w.tr(n.TextData.Text), link)
	} else {
		pdf.Write(lineHeight, w.tr(n.TextData.Text))
	}
	pdf.SetTextColor(0, 0, 0)
}

func (w *pdfWriter) table(n *ricos.Node, x float64) {
	pdf := w.pdf
	cols := 0
	if n.TableData != nil {
		cols = len(n.TableData.Dimensions.ColsMinWidth)
	}
	if cols == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	_, _, right, _ := pdf.GetMargins()
	colW := (pageW - right - x) / float64(cols)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetDrawColor(200, 200, 200)
	for _, row := range n.Nodes {
		pdf.SetX(x)
		for _, cell := range row.Nodes {
			span := 1
			if cell.CellData != nil && cell.CellData.Colspan > 0 {
				span = cell.CellData.Colspan
			}
			pdf.CellFormat(colW*float64(span), 7, w.tr(strings.TrimSpace(ricos.PlainText(cell))), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(7)
	}
	pdf.Ln(3)
}

func alignStr(a ricos.Alignment) string {
	switch a {
	case ricos.AlignCenter:
		return "C"
	case ricos.AlignRight:
		return "R"
	case ricos.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// hexColor parses #rgb and #rrggbb colors.
func hexColor(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
