package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Render serializes nodes back to markup. Leaf elements are written
// without a closing tag; attribute values are escaped and empty values
// are written as bare names.
func Render(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		render(&b, n)
	}
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode, CommentNode:
		b.WriteString(n.Data)
	case ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, a := range n.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			if a.Val != "" {
				b.WriteString(`="`)
				b.WriteString(html.EscapeString(a.Val))
				b.WriteByte('"')
			}
		}
		b.WriteByte('>')
		if n.Leaf {
			return
		}
		for _, c := range n.Children {
			render(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}
