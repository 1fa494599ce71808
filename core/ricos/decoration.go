package ricos

// DecorationType tags a Decoration variant.
type DecorationType string

const (
	DecorationBold      DecorationType = "BOLD"
	DecorationItalic    DecorationType = "ITALIC"
	DecorationUnderline DecorationType = "UNDERLINE"
	DecorationColor     DecorationType = "COLOR"
	DecorationLink      DecorationType = "LINK"
)

// Target is where a link opens.
type Target string

const (
	TargetSelf  Target = "SELF"
	TargetBlank Target = "BLANK"
)

// Decoration is a span-level annotation on a text leaf.
type Decoration struct {
	Type            DecorationType `json:"type"`
	ColorData       *ColorData     `json:"colorData,omitempty"`
	FontWeightValue *int           `json:"fontWeightValue,omitempty"`
	LinkData        *LinkData      `json:"linkData,omitempty"`
}

type ColorData struct {
	Color string `json:"color"`
}

type LinkData struct {
	Link Link `json:"link"`
}

type Link struct {
	URL    string `json:"url"`
	Target Target `json:"target"`
	Rel    *Rel   `json:"rel,omitempty"`
}

// Rel carries the link relationship flags.
type Rel struct {
	Nofollow   bool `json:"nofollow,omitempty"`
	Sponsored  bool `json:"sponsored,omitempty"`
	UGC        bool `json:"ugc,omitempty"`
	Noreferrer bool `json:"noreferrer,omitempty"`
}

func Bold(weight int) Decoration {
	return Decoration{Type: DecorationBold, FontWeightValue: &weight}
}

func Italic() Decoration {
	return Decoration{Type: DecorationItalic}
}

func Underline() Decoration {
	return Decoration{Type: DecorationUnderline}
}

func Color(color string) Decoration {
	return Decoration{Type: DecorationColor, ColorData: &ColorData{Color: color}}
}

// LinkTo returns a link decoration. Links always carry noreferrer.
func LinkTo(url string, target Target) Decoration {
	return Decoration{
		Type: DecorationLink,
		LinkData: &LinkData{Link: Link{
			URL:    url,
			Target: target,
			Rel:    &Rel{Noreferrer: true},
		}},
	}
}

// HasDecoration reports whether the text leaf n carries a decoration of type t.
func HasDecoration(n *Node, t DecorationType) bool {
	if n == nil || n.TextData == nil {
		return false
	}
	for _, d := range n.TextData.Decorations {
		if d.Type == t {
			return true
		}
	}
	return false
}
