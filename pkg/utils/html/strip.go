// ABOUTME: HTML utilities for turning feed markup into display text and locating images
// ABOUTME: Parsing goes through goquery so malformed markup degrades to its text content

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Ellipsis marks truncated text
const Ellipsis = "..."

// StripHTML removes tags, drops script and style bodies, decodes entities and collapses whitespace
func StripHTML(markup string) string {
	if markup == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return collapseSpaces(markup)
	}
	doc.Find("script, style").Remove()
	return collapseSpaces(doc.Text())
}

// FirstImageSrc returns the src of the first <img> in markup, or "" when there is none
func FirstImageSrc(markup string) string {
	if !strings.Contains(markup, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

// Truncate cuts text to max runes and appends the ellipsis marker when anything was cut
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + Ellipsis
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
