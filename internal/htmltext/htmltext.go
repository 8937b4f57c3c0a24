// Package htmltext converts small HTML fragments to plain text for
// accessible labels and page titles.
package htmltext

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the text content of an HTML fragment with all markup
// removed and entities decoded.
func StripTags(fragment string) string {
	tok := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tok.Text())
		}
	}
}

// Escape HTML-escapes text for embedding in markup, including quotes so the
// result is safe inside attribute values.
func Escape(text string) string {
	return stdhtml.EscapeString(text)
}
