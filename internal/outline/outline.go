// Package outline models the generic document outline produced by the
// upstream content layer: headings, bullet lists and references, independent
// of any navigation schema built on top of it.
package outline

// Kind identifies an outline node type.
type Kind int

const (
	// KindOther covers container and inline nodes with no special meaning
	// to navigation building. Walkers descend into them.
	KindOther Kind = iota
	KindReference
	KindTocTreeRoot
	KindCaption
	KindTitle
	KindBulletList
	KindListItem
	KindParagraph
	KindCompactParagraph
)

// Node is one node of the outline tree.
//
// Inline leaves carry Text. Reference nodes carry RefURI, which is nil for
// unresolved references; the empty string is a valid target and means the
// page currently being rendered.
type Node struct {
	Kind Kind

	// Text is the plain-text content of an inline leaf.
	Text string

	// RefURI is the reference target, relative to the page being rendered.
	RefURI *string

	// Current marks list structure on the path from the root to the page
	// currently being rendered.
	Current bool

	parent   *Node
	children []*Node
}

// NewNode returns a childless node of the given kind.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewText returns an inline text leaf.
func NewText(text string) *Node {
	return &Node{Kind: KindOther, Text: text}
}

// NewReference returns a reference node targeting uri with the given plain
// text content.
func NewReference(uri, text string) *Node {
	n := &Node{Kind: KindReference, RefURI: &uri}
	n.AppendChild(NewText(text))
	return n
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// Parent returns the node n is attached to, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns n's children in document order.
func (n *Node) Children() []*Node { return n.children }

// WalkStatus tells Walk how to proceed after visiting a node.
type WalkStatus int

const (
	// Continue descends into the visited node's children.
	Continue WalkStatus = iota
	// SkipChildren continues the traversal without descending.
	SkipChildren
)

// Visitor is called for every node reached by Walk in pre-order.
type Visitor func(n *Node) WalkStatus

// Walk traverses the tree rooted at n depth-first in document order,
// visiting n itself first. A nil root is a no-op.
func Walk(n *Node, visit Visitor) {
	if n == nil {
		return
	}
	if visit(n) == SkipChildren {
		return
	}
	for _, c := range n.children {
		Walk(c, visit)
	}
}
