package printer

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/joshuapare/xdmkit/internal/format"
)

// printXML serialises node trees as XML. Sequence items are written one per
// line; atomic items as their escaped lexical form.
func (p *Printer) printXML(it item) error {
	var b strings.Builder
	p.writeItemXML(&b, it)
	_, err := fmt.Fprint(p.writer, b.String())
	return err
}

func (p *Printer) writeItemXML(b *strings.Builder, it item) {
	switch {
	case it.Truncated:
		b.WriteString("<!-- ... -->\n")
	case it.Tree != nil:
		p.writeNodeXML(b, it.Tree, 0)
	case it.Items != nil:
		for _, child := range it.Items {
			p.writeItemXML(b, child)
		}
	default:
		escape(b, lexical(it))
		b.WriteByte('\n')
	}
}

func (p *Printer) writeNodeXML(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	switch n.kind {
	case format.TagDocumentNode:
		for i := range n.Children {
			p.writeNodeXML(b, &n.Children[i], depth)
		}
	case format.TagElementNode:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(n.Name)
		for _, ns := range n.Namespaces {
			name := "xmlns"
			if ns.Prefix != "" {
				name += ":" + ns.Prefix
			}
			writeAttr(b, name, ns.URI)
		}
		for _, a := range n.Attributes {
			writeAttr(b, a.Name, deref(a.Value))
		}
		if n.Truncated {
			b.WriteString("><!-- ... --></")
			b.WriteString(n.Name)
			b.WriteString(">\n")
			return
		}
		if len(n.Children) == 0 {
			b.WriteString("/>\n")
			return
		}
		b.WriteByte('>')
		if textOnly(n.Children) {
			for _, c := range n.Children {
				escape(b, deref(c.Value))
			}
		} else {
			b.WriteByte('\n')
			for i := range n.Children {
				p.writeNodeXML(b, &n.Children[i], depth+1)
			}
			b.WriteString(indent)
		}
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteString(">\n")
	case format.TagAttributeNode:
		b.WriteString(indent)
		writeAttr(b, n.Name, deref(n.Value))
		b.WriteByte('\n')
	case format.TagTextNode:
		b.WriteString(indent)
		escape(b, deref(n.Value))
		b.WriteByte('\n')
	case format.TagCommentNode:
		fmt.Fprintf(b, "%s<!--%s-->\n", indent, deref(n.Value))
	case format.TagPINode:
		fmt.Fprintf(b, "%s<?%s %s?>\n", indent, n.Target, deref(n.Value))
	}
}

func textOnly(nodes []node) bool {
	for _, c := range nodes {
		if c.kind != format.TagTextNode {
			return false
		}
	}
	return true
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	escape(b, value)
	b.WriteByte('"')
}

func escape(b *strings.Builder, s string) {
	_ = xml.EscapeText(b, []byte(s))
}
