package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docfold/matnav/internal/htmltext"
	"github.com/docfold/matnav/internal/outline"
)

// escapingRenderer mirrors the site renderer: plain text, HTML-escaped.
type escapingRenderer struct{}

func (escapingRenderer) RenderText(nodes []*outline.Node) string {
	text := ""
	var collect func(*outline.Node)
	collect = func(n *outline.Node) {
		text += n.Text
		for _, c := range n.Children() {
			collect(c)
		}
	}
	for _, n := range nodes {
		collect(n)
	}
	return htmltext.Escape(text)
}

func listItem(uri, title string, current bool, nested *outline.Node) *outline.Node {
	li := outline.NewNode(outline.KindListItem)
	li.Current = current
	para := outline.NewNode(outline.KindCompactParagraph)
	para.AppendChild(outline.NewReference(uri, title))
	li.AppendChild(para)
	if nested != nil {
		li.AppendChild(nested)
	}
	return li
}

func TestBuild_NilRoot_YieldsEmptyList(t *testing.T) {
	entries := Build(nil, escapingRenderer{})
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestBuild_FlatList_OneEntryPerListItem(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("intro.html", "Intro", false, nil))
	list.AppendChild(listItem("usage.html", "Usage", false, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 2)
	require.Equal(t, "Intro", entries[0].AriaLabel)
	require.Equal(t, "usage.html", *entries[1].URL)
	require.False(t, entries[0].Active)
	require.False(t, entries[0].CaptionOnly)
}

func TestBuild_CurrentPageSelfLink_SetsActiveAndCurrent(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("", "Intro", true, nil))
	list.AppendChild(listItem("other.html", "Other", false, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 2)
	require.True(t, entries[0].Active)
	require.True(t, entries[0].Current)
	require.False(t, entries[1].Active)
	require.False(t, entries[1].Current)
}

func TestBuild_ActiveAncestor_IsActiveButNotCurrent(t *testing.T) {
	nested := outline.NewNode(outline.KindBulletList)
	nested.AppendChild(listItem("", "Child", true, nil))
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("parent.html", "Parent", true, nested))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	parent := entries[0]
	require.True(t, parent.Active)
	require.False(t, parent.Current)
	require.Len(t, parent.Children, 1)
	require.True(t, parent.Children[0].Active)
	require.True(t, parent.Children[0].Current)
}

func TestBuild_CaptionBeforeList_GroupsListUnderCaptionEntry(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	caption := outline.NewNode(outline.KindCaption)
	caption.AppendChild(outline.NewText("Guides"))
	root.AppendChild(caption)

	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("install.html", "Install", false, nil))
	list.AppendChild(listItem("usage.html", "Usage", false, nil))
	list.AppendChild(listItem("faq.html", "FAQ", false, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	group := entries[0]
	require.True(t, group.CaptionOnly)
	require.Equal(t, "Guides", group.AriaLabel)
	require.Len(t, group.Children, 3)
	require.NotNil(t, group.URL)
	require.Equal(t, "install.html", *group.URL)
	require.False(t, group.Current)
}

func TestBuild_CaptionOverActiveList_MarksGroupActive(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	title := outline.NewNode(outline.KindTitle)
	title.AppendChild(outline.NewText("Reference"))
	root.AppendChild(title)

	list := outline.NewNode(outline.KindBulletList)
	list.Current = true
	list.AppendChild(listItem("", "API", true, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	require.True(t, entries[0].CaptionOnly)
	require.True(t, entries[0].Active)
	require.True(t, entries[0].Children[0].Current)
}

func TestBuild_EmptyCaptionedList_HasNoURL(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	caption := outline.NewNode(outline.KindCaption)
	caption.AppendChild(outline.NewText("Empty"))
	root.AppendChild(caption)
	root.AppendChild(outline.NewNode(outline.KindBulletList))

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	require.Nil(t, entries[0].URL)
	require.Empty(t, entries[0].Children)
}

func TestBuild_NestedTocTreeRoot_IsSkipped(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("a.html", "A", false, nil))
	root.AppendChild(list)

	toctree := outline.NewNode(outline.KindTocTreeRoot)
	inner := outline.NewNode(outline.KindBulletList)
	inner.AppendChild(listItem("hidden.html", "Hidden", false, nil))
	toctree.AppendChild(inner)
	root.AppendChild(toctree)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	require.Equal(t, "A", entries[0].AriaLabel)
}

func TestBuild_TitleTextIsEscapedAndWrapped(t *testing.T) {
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("a.html", "a<b>", false, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	require.Len(t, entries, 1)
	require.Equal(t, `<span class="md-ellipsis">a&lt;b&gt;</span>`, entries[0].Title)
	require.Equal(t, "a&lt;b&gt;", entries[0].AriaLabel)
}

func TestBuild_AtMostOneCurrentEntry(t *testing.T) {
	nested := outline.NewNode(outline.KindBulletList)
	nested.AppendChild(listItem("", "Child", true, nil))
	nested.AppendChild(listItem("sib.html", "Sib", false, nil))
	root := outline.NewNode(outline.KindOther)
	list := outline.NewNode(outline.KindBulletList)
	list.AppendChild(listItem("parent.html", "Parent", true, nested))
	list.AppendChild(listItem("other.html", "Other", false, nil))
	root.AppendChild(list)

	entries := Build(root, escapingRenderer{})
	count := 0
	Traverse(entries, func(e *Entry) {
		if e.Current {
			count++
		}
		if e.Current {
			require.True(t, e.Active)
		}
	})
	require.Equal(t, 1, count)
}
