// Package ricos defines the rich-content document model produced by the
// converter. Field names and enum values are part of the wire contract with
// the downstream renderer and must not change.
package ricos

import "strings"

// NodeType tags a Node variant.
type NodeType string

const (
	TypeParagraph    NodeType = "PARAGRAPH"
	TypeHeading      NodeType = "HEADING"
	TypeBulletedList NodeType = "BULLETED_LIST"
	TypeOrderedList  NodeType = "ORDERED_LIST"
	TypeListItem     NodeType = "LIST_ITEM"
	TypeTable        NodeType = "TABLE"
	TypeTableRow     NodeType = "TABLE_ROW"
	TypeTableCell    NodeType = "TABLE_CELL"
	TypeBlockquote   NodeType = "BLOCKQUOTE"
	TypeCodeBlock    NodeType = "CODE_BLOCK"
	TypeImage        NodeType = "IMAGE"
	TypeDivider      NodeType = "DIVIDER"
	TypeText         NodeType = "TEXT"
)

// Alignment is a text or container alignment.
type Alignment string

const (
	AlignAuto    Alignment = "AUTO"
	AlignLeft    Alignment = "LEFT"
	AlignCenter  Alignment = "CENTER"
	AlignRight   Alignment = "RIGHT"
	AlignJustify Alignment = "JUSTIFY"
)

// Document is the conversion result.
type Document struct {
	Nodes []*Node `json:"nodes"`
}

// Node is one block or inline element of a Document.
type Node struct {
	Type  NodeType `json:"type"`
	ID    string   `json:"id"`
	Nodes []*Node  `json:"nodes"`

	TextData      *TextData      `json:"textData,omitempty"`
	HeadingData   *HeadingData   `json:"headingData,omitempty"`
	ParagraphData *ParagraphData `json:"paragraphData,omitempty"`
	TableData     *TableData     `json:"tableData,omitempty"`
	ImageData     *ImageData     `json:"imageData,omitempty"`
	CellData      *CellData      `json:"cellData,omitempty"`
}

type TextData struct {
	Text        string       `json:"text"`
	Decorations []Decoration `json:"decorations"`
}

type TextStyle struct {
	TextAlignment Alignment `json:"textAlignment"`
}

type HeadingData struct {
	Level     int       `json:"level"`
	TextStyle TextStyle `json:"textStyle"`
}

type ParagraphData struct {
	TextStyle   TextStyle `json:"textStyle"`
	Indentation int       `json:"indentation,omitempty"`
}

type Dimensions struct {
	ColsWidthRatio []int `json:"colsWidthRatio"`
	RowsHeight     []int `json:"rowsHeight"`
	ColsMinWidth   []int `json:"colsMinWidth"`
}

type CellStyle struct {
	BorderWidth int    `json:"borderWidth"`
	BorderStyle string `json:"borderStyle"`
}

type TableData struct {
	Dimensions  Dimensions `json:"dimensions"`
	BorderColor string     `json:"borderColor"`
	CellStyle   CellStyle  `json:"cellStyle"`
}

type CellData struct {
	Colspan int `json:"colspan,omitempty"`
	Rowspan int `json:"rowspan,omitempty"`
}

type ImageWidth struct {
	Size string `json:"size"`
}

type ContainerData struct {
	Width     ImageWidth `json:"width"`
	Alignment Alignment  `json:"alignment"`
	TextWrap  bool       `json:"textWrap"`
}

type ImageSource struct {
	URL string `json:"url"`
}

type Image struct {
	Src    ImageSource `json:"src"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
}

type ImageData struct {
	ContainerData ContainerData `json:"containerData"`
	Image         Image         `json:"image"`
}

// NewNode returns a structural node with an empty child list.
func NewNode(t NodeType, id string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Type: t, ID: id, Nodes: children}
}

// NewText returns a text leaf. Text leaves carry an empty identifier.
func NewText(text string, decorations ...Decoration) *Node {
	if decorations == nil {
		decorations = []Decoration{}
	}
	return &Node{
		Type:     TypeText,
		Nodes:    []*Node{},
		TextData: &TextData{Text: text, Decorations: decorations},
	}
}

// NewParagraph returns a paragraph with the given alignment.
func NewParagraph(id string, align Alignment, children ...*Node) *Node {
	n := NewNode(TypeParagraph, id, children...)
	n.ParagraphData = &ParagraphData{TextStyle: TextStyle{TextAlignment: align}}
	return n
}

// NewHeading returns a heading with its level clamped to [1,6].
func NewHeading(id string, level int, align Alignment, children ...*Node) *Node {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	n := NewNode(TypeHeading, id, children...)
	n.HeadingData = &HeadingData{Level: level, TextStyle: TextStyle{TextAlignment: align}}
	return n
}

// NewImage returns an image node centered in a content-sized container.
func NewImage(id, src string, width, height int) *Node {
	n := NewNode(TypeImage, id)
	n.ImageData = &ImageData{
		ContainerData: ContainerData{
			Width:     ImageWidth{Size: "CONTENT"},
			Alignment: AlignCenter,
			TextWrap:  true,
		},
		Image: Image{Src: ImageSource{URL: src}, Width: width, Height: height},
	}
	return n
}

// NewSpacing returns a spacing node: a paragraph holding a single space.
func NewSpacing(id string) *Node {
	return NewNode(TypeParagraph, id, NewText(" "))
}

// IsSpacing reports whether n has the shape of a spacing node.
func IsSpacing(n *Node) bool {
	if n == nil || n.Type != TypeParagraph || len(n.Nodes) != 1 {
		return false
	}
	t := n.Nodes[0]
	return t.Type == TypeText && t.TextData != nil && t.TextData.Text == " "
}

// IsList reports whether t is one of the list node types.
func IsList(t NodeType) bool {
	return t == TypeBulletedList || t == TypeOrderedList
}

// PlainText concatenates the text of every leaf under n.
func PlainText(n *Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.TextData != nil {
		b.WriteString(n.TextData.Text)
	}
	for _, c := range n.Nodes {
		writeText(b, c)
	}
}
