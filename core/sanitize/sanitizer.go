// Package sanitize implements the Sanitizer interface with bluemonday.
// The policy is the converter's allow-list: anything outside it is dropped
// before parsing, so the converter never sees it.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedElements are the tags that survive sanitization.
var AllowedElements = []string{
	"p", "h1", "h2", "h3", "h4", "h5", "h6",
	"strong", "em", "b", "i", "u", "a", "img",
	"ul", "ol", "li",
	"table", "tr", "td", "th", "tbody", "thead",
	"div", "span", "br", "hr",
	"blockquote", "code", "pre",
}

var (
	targetRegex = regexp.MustCompile(`^_(blank|self|parent|top)$`)
	sizeRegex   = regexp.MustCompile(`^\d+(px|%)?$`)
	spanRegex   = regexp.MustCompile(`^\d+$`)
)

// HTMLSanitizer strips markup down to the allow-list.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// New creates an HTMLSanitizer.
func New() *HTMLSanitizer {
	return &HTMLSanitizer{policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowStandardURLs()

	policy.AllowElements(AllowedElements...)

	policy.AllowAttrs("style", "class", "id").Globally()
	policy.AllowAttrs("href", "rel").OnElements("a")
	policy.AllowAttrs("target").Matching(targetRegex).OnElements("a")
	policy.AllowAttrs("src").OnElements("img")
	policy.AllowAttrs("width", "height").Matching(sizeRegex).OnElements("img")
	policy.AllowAttrs("colspan", "rowspan").Matching(spanRegex).OnElements("td", "th")

	return policy
}

// Sanitize returns html restricted to the allow-list.
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
