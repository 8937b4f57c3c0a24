package nav

import "github.com/docfold/matnav/internal/outline"

// TitleRenderer renders outline inline content to HTML-escaped plain text.
// It is supplied by the host content layer.
type TitleRenderer interface {
	RenderText(nodes []*outline.Node) string
}

// visitor accumulates at most one title/url pair plus child entries while
// walking one level of the outline tree. Deeper levels are handled by fresh
// nested visitors, one per list item.
type visitor struct {
	renderer    TitleRenderer
	prevCaption *outline.Node
	titleText   string
	url         *string
	active      bool
	children    []*Entry
}

func newVisitor(r TitleRenderer) *visitor {
	return &visitor{renderer: r}
}

func (v *visitor) visit(n *outline.Node) outline.WalkStatus {
	switch n.Kind {
	case outline.KindReference:
		// The reference's children are the link text, consumed here.
		v.titleText = v.renderer.RenderText(n.Children())
		v.url = n.RefURI
		return outline.SkipChildren

	case outline.KindTocTreeRoot:
		// Nested toctrees are built by their own explicit top-level call,
		// never from within another walk.
		return outline.SkipChildren

	case outline.KindCaption, outline.KindTitle:
		v.prevCaption = n
		return outline.SkipChildren

	case outline.KindBulletList:
		if v.prevCaption != nil && v.prevCaption.Parent() == n.Parent() {
			// The caption heads this list: group the list under a single
			// caption-only entry instead of flattening its items.
			titleText := v.renderer.RenderText(v.prevCaption.Children())
			v.prevCaption = nil
			child := newVisitor(v.renderer)
			if n.Current {
				child.active = true
			}
			outline.Walk(n, child.visit)
			var url *string
			if len(child.children) > 0 {
				url = child.children[0].URL
			}
			v.children = append(v.children, newEntry(titleText, url, child.children, child.active, false, true))
			return outline.SkipChildren
		}
		// Otherwise each list item becomes a direct child.
		return outline.Continue

	case outline.KindListItem:
		child := newVisitor(v.renderer)
		if n.Current {
			child.active = true
		}
		for _, c := range n.Children() {
			outline.Walk(c, child.visit)
		}
		v.children = append(v.children, child.result())
		return outline.SkipChildren

	default:
		// Paragraph wrappers and unrecognized kinds are transparent.
		return outline.Continue
	}
}

// result synthesizes this visitor's single entry. The entry is current when
// it is on the active path and self-links to the page being rendered.
func (v *visitor) result() *Entry {
	current := v.active && v.url != nil && *v.url == ""
	return newEntry(v.titleText, v.url, v.children, v.active, current, false)
}

// Build converts an outline tree into an ordered list of top-level
// navigation entries. A nil or empty root yields an empty list.
func Build(root *outline.Node, r TitleRenderer) []*Entry {
	v := newVisitor(r)
	outline.Walk(root, v.visit)
	if v.children == nil {
		return []*Entry{}
	}
	return v.children
}
