package outline

import (
	gm "github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading with its generated anchor id.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// Headings parses a markdown body (frontmatter already removed) and returns
// its headings in document order. Anchor ids match the ids goldmark emits
// when the same source is rendered with auto heading ids enabled.
func Headings(source []byte) []Heading {
	md := gm.New(gm.WithParserOptions(parser.WithAutoHeadingID()))
	root := md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		id := ""
		if v, found := h.AttributeString("id"); found {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  nodeText(h, source),
			ID:    id,
		})
		return gmast.WalkSkipChildren, nil
	})
	return headings
}

// HeadingOutline builds the in-page outline tree of a markdown document:
// nested bullet lists of list items, each holding a compact paragraph with a
// reference to the heading's anchor.
func HeadingOutline(source []byte) *Node {
	headings := Headings(source)
	if len(headings) == 0 {
		return nil
	}

	root := NewNode(KindOther)
	list := NewNode(KindBulletList)
	root.AppendChild(list)

	type level struct {
		depth int
		list  *Node
		last  *Node // last list item appended at this level
	}
	stack := []level{{depth: headings[0].Level, list: list}}

	for _, h := range headings {
		for len(stack) > 1 && h.Level < stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}
		top := &stack[len(stack)-1]
		if h.Level > top.depth && top.last != nil {
			// Reuse the item's trailing sublist so a heading shallower
			// than its predecessor rejoins that predecessor's siblings
			// instead of nesting beneath it.
			var nested *Node
			if ch := top.last.Children(); len(ch) > 0 && ch[len(ch)-1].Kind == KindBulletList {
				nested = ch[len(ch)-1]
			} else {
				nested = NewNode(KindBulletList)
				top.last.AppendChild(nested)
			}
			stack = append(stack, level{depth: h.Level, list: nested})
			top = &stack[len(stack)-1]
		}

		item := NewNode(KindListItem)
		para := NewNode(KindCompactParagraph)
		para.AppendChild(NewReference("#"+h.ID, h.Text))
		item.AppendChild(para)
		top.list.AppendChild(item)
		top.last = item
	}
	return root
}

// nodeText collects the plain text content beneath a goldmark node.
func nodeText(n gmast.Node, source []byte) string {
	var out []byte
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			out = append(out, t.Segment.Value(source)...)
		case *gmast.String:
			out = append(out, t.Value...)
		}
		return gmast.WalkContinue, nil
	})
	return string(out)
}
