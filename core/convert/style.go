package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ditra-consulting/html-to-ricos-converter/core/ricos"
)

// Style is what the converter reads out of an element's style or class
// attribute. Zero values mean "not specified".
type Style struct {
	Alignment  ricos.Alignment
	Color      string
	FontWeight int
	FontSize   int
	HasMargin  bool
	HasPadding bool
	Highlight  bool
	IsSection  bool
}

var (
	// The leading boundary keeps background-color from matching.
	colorRegex      = regexp.MustCompile(`(?i)(?:^|[;\s])color\s*:\s*(#[0-9a-f]{6}\b|#[0-9a-f]{3}\b|rgba?\([^)]*\)|[a-z]+)\s*(?:!important)?`)
	fontSizeRegex   = regexp.MustCompile(`(?i)font-size\s*:\s*(\d+)`)
	fontWeightRegex = regexp.MustCompile(`(?i)font-weight\s*:\s*([a-z0-9]+)`)
	textAlignRegex  = regexp.MustCompile(`(?i)text-align\s*:\s*([a-z-]+)`)
)

// ParseStyle reads an inline style attribute. Unknown or malformed
// declarations are ignored.
func ParseStyle(style string) Style {
	var s Style
	if strings.TrimSpace(style) == "" {
		return s
	}
	lower := strings.ToLower(style)

	s.HasMargin = strings.Contains(lower, "margin")
	s.HasPadding = strings.Contains(lower, "padding")

	if strings.Contains(lower, "text-align") {
		s.Alignment = ricos.AlignLeft
		if m := textAlignRegex.FindStringSubmatch(lower); m != nil {
			switch m[1] {
			case "center":
				s.Alignment = ricos.AlignCenter
			case "right":
				s.Alignment = ricos.AlignRight
			case "justify":
				s.Alignment = ricos.AlignJustify
			}
		}
	}

	if m := colorRegex.FindStringSubmatch(style); m != nil {
		s.Color = m[1]
	}
	if m := fontSizeRegex.FindStringSubmatch(style); m != nil {
		s.FontSize, _ = strconv.Atoi(m[1])
	}
	if m := fontWeightRegex.FindStringSubmatch(lower); m != nil {
		switch m[1] {
		case "bold":
			s.FontWeight = 700
		case "normal":
			s.FontWeight = 400
		default:
			s.FontWeight, _ = strconv.Atoi(m[1])
		}
	}
	return s
}

// ParseClass classifies an element by its class attribute.
func ParseClass(class string) Style {
	var s Style
	lower := strings.ToLower(class)
	if lower == "" {
		return s
	}

	s.Highlight = strings.Contains(lower, "highlight") || strings.Contains(lower, "important")
	switch {
	case strings.Contains(lower, "center"):
		s.Alignment = ricos.AlignCenter
	case strings.Contains(lower, "right"):
		s.Alignment = ricos.AlignRight
	case strings.Contains(lower, "justify"):
		s.Alignment = ricos.AlignJustify
	}
	s.IsSection = strings.Contains(lower, "section") || strings.Contains(lower, "container")
	return s
}

// alignmentOr returns a, or fallback when a is unset.
func alignmentOr(a, fallback ricos.Alignment) ricos.Alignment {
	if a == "" {
		return fallback
	}
	return a
}

// leadingInt parses the integer prefix of s ("500px" -> 500).
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
