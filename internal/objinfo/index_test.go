package objinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docfold/matnav/internal/nav"
)

type fakeDomain struct {
	name     string
	objects  []Object
	synopses map[string]string
}

func (d *fakeDomain) Name() string      { return d.name }
func (d *fakeDomain) Objects() []Object { return d.objects }
func (d *fakeDomain) TypeName(objType string) string {
	return strings.ToUpper(objType[:1]) + objType[1:]
}

type fakeSynopsisDomain struct{ fakeDomain }

func (d *fakeSynopsisDomain) ObjectSynopsis(objType, name string) string {
	return d.synopses[name]
}

func targetURI(doc string) string { return doc + ".html" }

func entry(title, url string) *nav.Entry {
	u := url
	return &nav.Entry{
		Title:     `<span class="md-ellipsis">` + title + `</span>`,
		AriaLabel: title,
		URL:       &u,
		Children:  []*nav.Entry{},
	}
}

func pyDomain() *fakeDomain {
	return &fakeDomain{
		name: "py",
		objects: []Object{
			{Name: "pkg.parse", DisplayName: "parse", Type: "function", Doc: "reference/api", Anchor: "pkg.parse", Priority: 1},
			{Name: "pkg.helper", DisplayName: "helper", Type: "unknown-kind", Doc: "reference/api", Anchor: "pkg.helper", Priority: 1},
		},
	}
}

func TestBuildIndex_SkipsTypesWithoutIcons(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	require.Len(t, ix.entries, 1)
	_, ok := ix.entries[anchorKey{path: "reference/api.html", anchor: "pkg.parse"}]
	require.True(t, ok)
}

func TestDecorate_MatchingEntry_GetsIconAndTooltip(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	e := entry("pkg.parse", "reference/api.html#pkg.parse")

	hits := ix.Decorate([]*nav.Entry{e}, "index.html")
	require.Equal(t, 1, hits)
	require.True(t, strings.HasPrefix(e.Title,
		`<span aria-label="Function" class="objinfo-icon objinfo-icon__procedure" title="Function">F</span>`))
	require.Contains(t, e.Title, `<span title="pkg.parse (Function)" class="md-ellipsis">`)
}

func TestDecorate_SynopsisDomain_AppendsSynopsisToTooltip(t *testing.T) {
	d := &fakeSynopsisDomain{fakeDomain: *pyDomain()}
	d.synopses = map[string]string{"pkg.parse": "  Parses things.  "}
	ix := BuildIndex([]Domain{d}, targetURI)
	e := entry("pkg.parse", "reference/api.html#pkg.parse")

	ix.Decorate([]*nav.Entry{e}, "index.html")
	require.Contains(t, e.Title, `title="pkg.parse (Function) — Parses things."`)
}

func TestDecorate_CaptionOnlyAndExternalEntries_Untouched(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)

	caption := entry("Group", "reference/api.html#pkg.parse")
	caption.CaptionOnly = true
	external := entry("ext", "https://example.com/reference/api.html#pkg.parse")
	unlinked := &nav.Entry{Title: `<span class="md-ellipsis">plain</span>`, Children: []*nav.Entry{}}

	hits := ix.Decorate([]*nav.Entry{caption, external, unlinked}, "index.html")
	require.Zero(t, hits)
	require.Equal(t, `<span class="md-ellipsis">Group</span>`, caption.Title)
	require.Equal(t, `<span class="md-ellipsis">ext</span>`, external.Title)
}

func TestDecorate_NoMatchingAnchor_Untouched(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	e := entry("other", "reference/api.html#no.such.anchor")

	hits := ix.Decorate([]*nav.Entry{e}, "index.html")
	require.Zero(t, hits)
	require.Equal(t, `<span class="md-ellipsis">other</span>`, e.Title)
}

func TestDecorate_RelativeURL_ResolvedAgainstCurrentPage(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	e := entry("pkg.parse", "../reference/api.html#pkg.parse")

	hits := ix.Decorate([]*nav.Entry{e}, "guides/install.html")
	require.Equal(t, 1, hits)
}

func TestDecorate_Twice_PanicsOnPrefixCheck(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	e := entry("pkg.parse", "reference/api.html#pkg.parse")

	ix.Decorate([]*nav.Entry{e}, "index.html")
	require.Panics(t, func() {
		ix.Decorate([]*nav.Entry{e}, "index.html")
	})
}

func TestDecorate_UnexpectedTitleShape_Panics(t *testing.T) {
	ix := BuildIndex([]Domain{pyDomain()}, targetURI)
	u := "reference/api.html#pkg.parse"
	broken := &nav.Entry{Title: "bare text", URL: &u, Children: []*nav.Entry{}}

	require.Panics(t, func() {
		ix.Decorate([]*nav.Entry{broken}, "index.html")
	})
}
