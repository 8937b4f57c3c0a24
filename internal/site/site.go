// Package site is the content side of the build: it loads markdown sources,
// renders their bodies, and exposes the outline, target URI, and domain
// capabilities that navigation building consumes.
package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"

	gm "github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"

	"github.com/docfold/matnav/internal/config"
	"github.com/docfold/matnav/internal/frontmatter"
	"github.com/docfold/matnav/internal/objinfo"
	"github.com/docfold/matnav/internal/outline"
)

// Document is one loaded markdown source.
type Document struct {
	Name       string // docname: source path relative to the source dir, without extension
	SourcePath string // source path relative to the source dir
	Title      string // first heading's plain text, or the docname
	Meta       map[string]any
	BodyHTML   string
	body       []byte
}

// Site holds the loaded documentation sources for one build.
type Site struct {
	cfg     *config.Config
	docs    map[string]*Document
	order   []string // manifest document order, for prev/next
	domains []objinfo.Domain
	logger  *slog.Logger
}

// Load reads every markdown file under the configured source directory and
// the objects index, if one is configured.
func Load(cfg *config.Config, fsys fs.FS, logger *slog.Logger) (*Site, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Site{
		cfg:    cfg,
		docs:   map[string]*Document{},
		logger: logger,
	}

	md := gm.New(gm.WithParserOptions(parser.WithAutoHeadingID()))
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		meta, body, err := frontmatter.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}

		var buf bytes.Buffer
		if err := md.Convert(body, &buf); err != nil {
			return fmt.Errorf("render %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Clean(filepath.ToSlash(p)), ".md")
		doc := &Document{
			Name:       name,
			SourcePath: filepath.ToSlash(p),
			Title:      name,
			Meta:       meta,
			BodyHTML:   buf.String(),
			body:       body,
		}
		if hs := outline.Headings(body); len(hs) > 0 {
			doc.Title = hs[0].Text
		}
		s.docs[name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, docname := range flattenNav(cfg.Nav) {
		if _, ok := s.docs[docname]; !ok {
			logger.Warn("nav references unknown document", "doc", docname)
			continue
		}
		s.order = append(s.order, docname)
	}

	if cfg.Objects != "" {
		domains, err := loadDomains(cfg.Objects)
		if err != nil {
			return nil, err
		}
		s.domains = domains
	}

	logger.Debug("site loaded", "documents", len(s.docs), "nav_entries", len(s.order))
	return s, nil
}

// Doc returns the loaded document, or nil when the docname is unknown.
func (s *Site) Doc(name string) *Document { return s.docs[name] }

// Docs returns every docname in manifest order, followed by documents not
// referenced by the manifest in lexical order.
func (s *Site) Docs() []string {
	seen := map[string]bool{}
	out := append([]string(nil), s.order...)
	for _, d := range out {
		seen[d] = true
	}
	var rest []string
	for name := range s.docs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// TargetURI returns a docname's rendered location relative to the site root.
func (s *Site) TargetURI(doc string) string { return doc + ".html" }

// Doc2Path returns the source file path for a docname, relative to the
// source directory, for edit link construction.
func (s *Site) Doc2Path(doc string) string {
	if d := s.docs[doc]; d != nil {
		return d.SourcePath
	}
	return doc + ".md"
}

// PrevNext returns the docnames surrounding page in manifest order. Either
// result is empty when page is at the corresponding end or not in the
// manifest.
func (s *Site) PrevNext(page string) (prev, next string) {
	for i, name := range s.order {
		if name != page {
			continue
		}
		if i > 0 {
			prev = s.order[i-1]
		}
		if i < len(s.order)-1 {
			next = s.order[i+1]
		}
		return prev, next
	}
	return "", ""
}

// Domains returns the content domains exposing indexed objects.
func (s *Site) Domains() []objinfo.Domain { return s.domains }

// LocalOutline returns the in-page heading outline of a document, or nil for
// an unknown or headingless document.
func (s *Site) LocalOutline(page string) *outline.Node {
	d := s.docs[page]
	if d == nil {
		return nil
	}
	return outline.HeadingOutline(d.body)
}

func flattenNav(items []config.NavItem) []string {
	var out []string
	for _, it := range items {
		if it.Doc != "" {
			out = append(out, it.Doc)
		}
		out = append(out, flattenNav(it.Items)...)
	}
	return out
}
