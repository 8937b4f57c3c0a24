package site

import (
	"github.com/docfold/matnav/internal/config"
	"github.com/docfold/matnav/internal/outline"
	"github.com/docfold/matnav/internal/urlutil"
)

// GlobalOutline builds the site-wide outline tree for a page from the
// navigation manifest. Reference targets are relative to the page's rendered
// location; the page itself self-links with the empty URI. Ancestors of the
// page carry the current marker. With collapse set, branches off the page's
// path keep no nested lists. An empty manifest yields nil.
func (s *Site) GlobalOutline(page string, collapse bool) *outline.Node {
	if len(s.cfg.Nav) == 0 {
		return nil
	}
	root := outline.NewNode(outline.KindOther)

	// Consecutive document items share one bullet list; each caption heads
	// its own list placed immediately after the caption node.
	var run *outline.Node
	for _, item := range s.cfg.Nav {
		if item.Caption != "" {
			caption := outline.NewNode(outline.KindCaption)
			caption.AppendChild(outline.NewText(item.Caption))
			root.AppendChild(caption)

			list := outline.NewNode(outline.KindBulletList)
			list.Current = navContains(item.Items, page)
			for _, sub := range item.Items {
				list.AppendChild(s.docListItem(sub, page, collapse))
			}
			root.AppendChild(list)
			run = nil
			continue
		}
		if run == nil {
			run = outline.NewNode(outline.KindBulletList)
			root.AppendChild(run)
		}
		if navItemContains(item, page) {
			run.Current = true
		}
		run.AppendChild(s.docListItem(item, page, collapse))
	}
	return root
}

func (s *Site) docListItem(item config.NavItem, page string, collapse bool) *outline.Node {
	li := outline.NewNode(outline.KindListItem)
	li.Current = navItemContains(item, page)

	uri := urlutil.RelativeURI(s.TargetURI(page), s.TargetURI(item.Doc))
	para := outline.NewNode(outline.KindCompactParagraph)
	para.AppendChild(outline.NewReference(uri, s.docTitle(item.Doc)))
	li.AppendChild(para)

	if len(item.Items) > 0 && (!collapse || li.Current) {
		nested := outline.NewNode(outline.KindBulletList)
		nested.Current = navContains(item.Items, page)
		for _, sub := range item.Items {
			nested.AppendChild(s.docListItem(sub, page, collapse))
		}
		li.AppendChild(nested)
	}
	return li
}

func (s *Site) docTitle(doc string) string {
	if d := s.docs[doc]; d != nil {
		return d.Title
	}
	return doc
}

func navItemContains(item config.NavItem, page string) bool {
	return item.Doc == page || navContains(item.Items, page)
}

func navContains(items []config.NavItem, page string) bool {
	for _, it := range items {
		if navItemContains(it, page) {
			return true
		}
	}
	return false
}
