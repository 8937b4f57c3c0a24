// Package pagectx assembles the per-page template context: the site
// navigation tree, the page's local table of contents, and page metadata in
// the mkdocs-material schema.
package pagectx

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/docfold/matnav/internal/config"
	"github.com/docfold/matnav/internal/htmltext"
	"github.com/docfold/matnav/internal/metrics"
	"github.com/docfold/matnav/internal/nav"
	"github.com/docfold/matnav/internal/objinfo"
	"github.com/docfold/matnav/internal/outline"
	"github.com/docfold/matnav/internal/urlutil"
)

// Host is the content capability the assembler consumes: outline trees,
// rendered locations, and the domain registry.
type Host interface {
	TargetURI(doc string) string
	Doc2Path(doc string) string
	GlobalOutline(page string, collapse bool) *outline.Node
	LocalOutline(page string) *outline.Node
	Renderer() nav.TitleRenderer
	Domains() []objinfo.Domain
}

// PageRef is a titled link to an adjacent page.
type PageRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PageInput is the raw per-page data supplied by the build for one render.
type PageInput struct {
	Name        string
	TitleHTML   string // page title markup; tags are stripped for display
	Meta        map[string]any
	Body        string // rendered page body
	LastUpdated string // revision date, already formatted
	Prev        *PageRef
	Next        *PageRef
}

// NavContext is the site navigation inserted into the template context.
type NavContext struct {
	Entries  []*nav.Entry `json:"entries"`
	Homepage Homepage     `json:"homepage"`
}

// Homepage locates the site root relative to the page being rendered.
type Homepage struct {
	URL string `json:"url"`
}

// PageMeta carries per-page display metadata.
type PageMeta struct {
	// Hide lists panels the page opts out of: "toc", "navigation".
	Hide         []string `json:"hide"`
	RevisionDate string   `json:"revision_date,omitempty"`
}

// PageRecord is the page object in the template context.
type PageRecord struct {
	Title        string       `json:"title"`
	IsHomepage   bool         `json:"is_homepage"`
	Toc          []*nav.Entry `json:"toc"`
	Meta         PageMeta     `json:"meta"`
	Content      string       `json:"content"`
	NextPage     *PageRef     `json:"next_page,omitempty"`
	PreviousPage *PageRef     `json:"previous_page,omitempty"`
	EditURL      string       `json:"edit_url,omitempty"`
}

// TocConfig carries the toc panel heading override.
type TocConfig struct {
	Title string `json:"title,omitempty"`
}

// MdxConfigs mirrors the mkdocs config block the theme templates read.
type MdxConfigs struct {
	Toc TocConfig `json:"toc"`
}

// ThemeConfig is the config object in the template context.
type ThemeConfig struct {
	MdxConfigs MdxConfigs `json:"mdx_configs"`
}

// Context is the assembled template context for one page.
type Context struct {
	Nav    NavContext  `json:"nav"`
	Page   PageRecord  `json:"page"`
	Config ThemeConfig `json:"config"`
}

// Assembler builds page contexts for one build. The annotation index is
// built lazily on first use and reused for every subsequent page; the host
// may assemble pages from parallel workers.
type Assembler struct {
	cfg            *config.Config
	host           Host
	index          *objinfo.Index
	indexOnce      sync.Once
	recorder       metrics.Recorder
	logger         *slog.Logger
	readOnlyHosted bool
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(a *Assembler) { a.recorder = r }
}

// WithLogger injects a logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// WithReadOnlyHostedBuild marks the build as running on a read-only hosted
// service, suppressing edit links.
func WithReadOnlyHostedBuild(on bool) Option {
	return func(a *Assembler) { a.readOnlyHosted = on }
}

// New returns an assembler for one build.
func New(cfg *config.Config, host Host, opts ...Option) *Assembler {
	a := &Assembler{
		cfg:      cfg,
		host:     host,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the template context for one page.
func (a *Assembler) Assemble(in PageInput) *Context {
	pageTitle := htmltext.Escape(htmltext.StripTags(in.TitleHTML))
	globalToc, localToc := a.buildTocs(in.Name, hasDuplicateLocalToc(in.Meta))

	ctx := &Context{
		Nav: NavContext{
			Entries: globalToc,
			Homepage: Homepage{
				URL: urlutil.RelativeURI(a.host.TargetURI(in.Name), a.host.TargetURI(a.cfg.MasterDoc)),
			},
		},
	}

	tocTitle := ""
	switch {
	case a.cfg.Theme.TocTitle != "":
		tocTitle = htmltext.Escape(a.cfg.Theme.TocTitle)
	case a.cfg.Theme.TocTitleIsPageTitle && len(localToc) == 1:
		// Use the single top-level heading as the toc panel heading.
		tocTitle = localToc[0].Title
	}
	ctx.Config.MdxConfigs.Toc.Title = tocTitle

	if len(localToc) == 1 {
		// A single top-level heading is the page heading; repeating it as
		// the first toc entry would be redundant.
		localToc = localToc[0].Children
	}

	page := PageRecord{
		Title:      pageTitle,
		IsHomepage: in.Name == a.cfg.MasterDoc,
		Toc:        localToc,
		Meta: PageMeta{
			Hide:         []string{},
			RevisionDate: in.LastUpdated,
		},
		Content: in.Body,
	}

	if hidesToc(in.Meta) {
		page.Meta.Hide = append(page.Meta.Hide, "toc")
	}
	if _, ok := in.Meta["hide-navigation"]; ok {
		page.Meta.Hide = append(page.Meta.Hide, "navigation")
	}

	if in.Next != nil {
		page.NextPage = &PageRef{
			Title: htmltext.Escape(htmltext.StripTags(in.Next.Title)),
			URL:   in.Next.URL,
		}
	}
	if in.Prev != nil {
		page.PreviousPage = &PageRef{
			Title: htmltext.Escape(htmltext.StripTags(in.Prev.Title)),
			URL:   in.Prev.URL,
		}
	}

	if url := a.editURL(in.Name); url != "" {
		page.EditURL = url
	}

	ctx.Page = page
	a.recorder.PageAssembled()
	a.logger.Debug("page context assembled",
		"page", in.Name,
		"nav_entries", len(globalToc),
		"toc_entries", len(localToc))
	return ctx
}

// buildTocs builds the annotated global and local navigation trees for a
// page. Except for the site root, the local toc is the page's own entry from
// the global tree, pruned to the active path; unless duplicateLocalToc is
// set, that entry's children are cleared in the global tree so content is
// not listed twice.
func (a *Assembler) buildTocs(page string, duplicateLocalToc bool) (globalToc, localToc []*nav.Entry) {
	r := a.host.Renderer()
	globalToc = nav.Build(a.host.GlobalOutline(page, a.cfg.Theme.GlobalTocCollapse), r)

	localToc = []*nav.Entry{}
	if page != a.cfg.MasterDoc {
		if current := nav.CurrentPage(globalToc); current != nil {
			localToc = []*nav.Entry{nav.CollapseToPage(current)}
			if !duplicateLocalToc {
				current.Children = []*nav.Entry{}
			}
		}
	} else {
		// Every page is a descendant of the root page; its local toc is the
		// in-page heading outline instead.
		localToc = nav.Build(a.host.LocalOutline(page), r)
	}

	index := a.annotationIndex()
	baseURI := a.host.TargetURI(page)
	hits := index.Decorate(globalToc, baseURI)
	hits += index.Decorate(localToc, baseURI)
	a.recorder.AnnotationHits(hits)

	// A one-entry childless local toc is a useless outline.
	if len(localToc) == 1 && len(localToc[0].Children) == 0 {
		localToc = []*nav.Entry{}
	}
	return globalToc, localToc
}

// annotationIndex builds the index exactly once, even with pages assembled
// concurrently; after that it is read-only.
func (a *Assembler) annotationIndex() *objinfo.Index {
	a.indexOnce.Do(func() {
		a.index = objinfo.BuildIndex(a.host.Domains(), a.host.TargetURI)
	})
	return a.index
}

// editURL joins the configured repository URL, edit path segment, and the
// page's source path. Edit links are omitted when either setting is missing
// or the build runs on a read-only hosted service.
func (a *Assembler) editURL(page string) string {
	repoURL := a.cfg.Theme.RepoURL
	editURI := a.cfg.Theme.EditURI
	if repoURL == "" || editURI == "" || a.readOnlyHosted {
		return ""
	}
	return strings.Join([]string{
		strings.TrimRight(repoURL, "/"),
		strings.Trim(editURI, "/"),
		a.host.Doc2Path(page),
	}, "/")
}

// hasDuplicateLocalToc reports whether page metadata requests keeping the
// page's children in the global tree as well as the local toc.
func hasDuplicateLocalToc(meta map[string]any) bool {
	v, ok := meta["duplicate-local-toc"]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case string:
		return true
	case bool:
		return t
	default:
		return false
	}
}

// hidesToc reports whether page metadata hides the in-page outline, via an
// explicit hide-toc key or a toc depth of zero.
func hidesToc(meta map[string]any) bool {
	if _, ok := meta["hide-toc"]; ok {
		return true
	}
	if v, ok := meta["tocdepth"]; ok {
		switch t := v.(type) {
		case int:
			return t == 0
		case float64:
			return t == 0
		}
	}
	return false
}
