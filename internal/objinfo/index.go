package objinfo

import (
	"fmt"
	"strings"

	"github.com/docfold/matnav/internal/htmltext"
	"github.com/docfold/matnav/internal/nav"
	"github.com/docfold/matnav/internal/urlutil"
)

// Annotation is the index value for one object anchor.
type Annotation struct {
	Domain      string
	Name        string
	DisplayName string
	Type        string
	Priority    int
}

type anchorKey struct {
	path   string
	anchor string
}

// Index maps rendered object locations to annotations. It is built once per
// build and read-only afterwards; it is never persisted across builds.
type Index struct {
	domains map[string]Domain
	entries map[anchorKey]Annotation
}

// BuildIndex enumerates every indexed object of every domain and records its
// rendered location. targetURI resolves a docname to its root-relative URI.
// Objects whose (domain, type) pair has no registered icon are not indexed.
func BuildIndex(domains []Domain, targetURI func(doc string) string) *Index {
	ix := &Index{
		domains: make(map[string]Domain, len(domains)),
		entries: make(map[anchorKey]Annotation),
	}
	for _, d := range domains {
		ix.domains[d.Name()] = d
		for _, obj := range d.Objects() {
			if _, ok := Icons[IconKey{d.Name(), obj.Type}]; !ok {
				continue
			}
			key := anchorKey{path: targetURI(obj.Doc), anchor: obj.Anchor}
			ix.entries[key] = Annotation{
				Domain:      d.Name(),
				Name:        obj.Name,
				DisplayName: obj.DisplayName,
				Type:        obj.Type,
				Priority:    obj.Priority,
			}
		}
	}
	return ix
}

// Undecorated entry titles always start with the ellipsis wrapper; Decorate
// splices the tooltip into that wrapper's opening tag. Checking for the full
// wrapper opening rather than a bare "<span " also makes a second decoration
// of the same entry fail instead of silently stacking tooltips.
const (
	spanOpen       = "<span "
	ellipsisPrefix = `<span class="md-ellipsis">`
)

// Decorate prepends icon and tooltip markup to the title of every
// non-caption, URL-bearing entry that resolves to an indexed object.
// basePageURI is the root-relative URI of the page the tree is built for.
// Entries with no match, including external links, are left unchanged.
// It returns the number of entries annotated.
//
// Decoration rewrites titles in place and must run exactly once per tree.
func (ix *Index) Decorate(entries []*nav.Entry, basePageURI string) int {
	hits := 0
	nav.Traverse(entries, func(e *nav.Entry) {
		if e.CaptionOnly || e.URL == nil {
			return
		}
		docPath, anchor, ok := urlutil.ResolveAnchor(basePageURI, *e.URL)
		if !ok {
			return
		}
		ann, ok := ix.entries[anchorKey{path: docPath, anchor: anchor}]
		if !ok {
			return
		}

		domain := ix.domains[ann.Domain]
		label := domain.TypeName(ann.Type)
		tooltip := fmt.Sprintf("%s (%s)", ann.Name, label)
		if sp, ok := domain.(SynopsisProvider); ok {
			if synopsis := strings.TrimSpace(sp.ObjectSynopsis(ann.Type, ann.Name)); synopsis != "" {
				tooltip += " — " + synopsis
			}
		}

		titlePrefix := ""
		if icon, ok := Icons[IconKey{ann.Domain, ann.Type}]; ok {
			titlePrefix = fmt.Sprintf(
				`<span aria-label="%s" class="objinfo-icon objinfo-icon__%s" title="%s">%s</span>`,
				htmltext.Escape(label), icon.Class, htmltext.Escape(label), icon.Text,
			)
		}

		// Titles are always built with the ellipsis wrapper; anything else
		// means title construction and decoration have drifted apart.
		if !strings.HasPrefix(e.Title, ellipsisPrefix) {
			panic(fmt.Sprintf("objinfo: nav entry title %q does not start with %q", e.Title, ellipsisPrefix))
		}
		e.Title = titlePrefix + `<span title="` + htmltext.Escape(tooltip) + `" ` + e.Title[len(spanOpen):]
		hits++
	})
	return hits
}
