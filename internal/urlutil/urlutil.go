// Package urlutil provides URI helpers for navigation building: fragment
// stripping, anchor resolution against a page's rendered location, and
// relative links between rendered pages.
package urlutil

import (
	"net/url"
	"path"
	"strings"
)

// StripFragment returns uri with any fragment identifier removed.
func StripFragment(uri string) string {
	if i := strings.Index(uri, "#"); i >= 0 {
		return uri[:i]
	}
	return uri
}

// ResolveAnchor resolves a URI relative to a page's rendered location into a
// root-relative path and fragment. baseURI is the root-relative URI of the
// page the link appears on. URIs with a scheme or network authority point
// outside the site and yield ok == false.
func ResolveAnchor(baseURI, relativeURI string) (docPath, anchor string, ok bool) {
	ref, err := url.Parse(relativeURI)
	if err != nil {
		return "", "", false
	}
	if ref.Scheme != "" || ref.Host != "" {
		return "", "", false
	}

	p := ref.Path
	switch {
	case p == "":
		// Fragment-only reference: same page.
		p = StripFragment(baseURI)
	case !strings.HasPrefix(p, "/"):
		base := StripFragment(baseURI)
		if i := strings.LastIndex(base, "/"); i >= 0 {
			p = base[:i+1] + p
		}
		p = path.Clean(p)
	}
	return p, ref.Fragment, true
}

// RelativeURI returns the link from one rendered page location to another,
// both given as root-relative URIs. A page linking to itself yields the
// empty string, which navigation building treats as a self link.
func RelativeURI(from, to string) string {
	if from == to {
		return ""
	}
	fromParts := strings.Split(path.Dir(from), "/")
	if path.Dir(from) == "." {
		fromParts = nil
	}
	toParts := strings.Split(to, "/")

	common := 0
	for common < len(fromParts) && common < len(toParts)-1 && fromParts[common] == toParts[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(fromParts); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(toParts[common:], "/"))
	return b.String()
}
