// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	strictOnce sync.Once
	strict     *bluemonday.Policy
)

// descriptionPolicy allows the formatting a campground description can
// reasonably carry: paragraphs, emphasis, lists, quotes and links.
func descriptionPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("u", "s", "mark")
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Sanitize strips anything that could execute in the browser.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return descriptionPolicy().Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// tagStart matches the opening of an element, end tag, comment or doctype.
// A bare "<" followed by a space or digit is text.
var tagStart = regexp.MustCompile(`<[A-Za-z/!]`)

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !tagStart.MatchString(s)
}

// PlainTextToHTML escapes s and turns newlines into <br> inside a paragraph.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders stored text for a page: plain text is escaped
// and wrapped, markup is re-sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}

// ToText returns s with all markup removed and entities decoded, for
// summaries that are escaped again by the template.
func ToText(s string) string {
	if IsPlainText(s) {
		return s
	}
	strictOnce.Do(func() { strict = bluemonday.StrictPolicy() })
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
