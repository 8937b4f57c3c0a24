package site

import (
	"strings"

	"github.com/docfold/matnav/internal/htmltext"
	"github.com/docfold/matnav/internal/nav"
	"github.com/docfold/matnav/internal/outline"
)

// Renderer returns the title renderer for this site's outline nodes.
func (s *Site) Renderer() nav.TitleRenderer { return textRenderer{} }

// textRenderer renders outline inline content as HTML-escaped plain text.
type textRenderer struct{}

func (textRenderer) RenderText(nodes []*outline.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return htmltext.Escape(b.String())
}

func collectText(n *outline.Node, b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children() {
		collectText(c, b)
	}
}
