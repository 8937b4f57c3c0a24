// Package nav rewrites a generic document outline into the mkdocs-material
// navigation schema: a tree of entries with active/current markers, caption
// groupings, and wrap-friendly titles.
package nav

import "regexp"

// Entry is one node of the navigation tree.
type Entry struct {
	// Title is the display markup, wrapped in an ellipsis span with soft
	// break opportunities inserted for long identifiers.
	Title string `json:"title"`

	// AriaLabel is the plain-text accessible label.
	AriaLabel string `json:"aria_label"`

	// URL is the link target relative to the page being rendered. It is nil
	// for caption-only entries without linkable children; the empty string
	// is a self link to the page being rendered.
	URL *string `json:"url,omitempty"`

	// Children in document order.
	Children []*Entry `json:"children"`

	// Active is set when this entry or a descendant is the page being
	// rendered.
	Active bool `json:"active"`

	// Current is set only on the entry for the page being rendered.
	Current bool `json:"current"`

	// CaptionOnly marks a section heading that groups its children but is
	// not itself a page link.
	CaptionOnly bool `json:"caption_only"`
}

var (
	wbrPunct   = regexp.MustCompile(`([.:_-]+)`)
	wbrBracket = regexp.MustCompile(`([(\[{])`)
	wbrCamel   = regexp.MustCompile(`([a-z])([A-Z])`)
)

// InsertWordBreaks inserts <wbr> tags after likely split points for API
// symbols: after punctuation runs, before open brackets, and at lower-to-
// upper case transitions. The three passes run in that order; each operates
// on the previous pass's output.
func InsertWordBreaks(text string) string {
	text = wbrPunct.ReplaceAllString(text, "${1}<wbr>")
	text = wbrBracket.ReplaceAllString(text, "<wbr>${1}")
	text = wbrCamel.ReplaceAllString(text, "${1}<wbr>${2}")
	return text
}

// newEntry builds an entry from escaped plain title text, wrapping it in the
// ellipsis span expected by the theme templates.
func newEntry(titleText string, url *string, children []*Entry, active, current, captionOnly bool) *Entry {
	if children == nil {
		children = []*Entry{}
	}
	return &Entry{
		Title:       `<span class="md-ellipsis">` + InsertWordBreaks(titleText) + `</span>`,
		AriaLabel:   titleText,
		URL:         url,
		Children:    children,
		Active:      active,
		Current:     current,
		CaptionOnly: captionOnly,
	}
}

// Traverse calls fn for every entry reachable from entries, depth-first in
// document order.
func Traverse(entries []*Entry, fn func(*Entry)) {
	for _, e := range entries {
		fn(e)
		Traverse(e.Children, fn)
	}
}
