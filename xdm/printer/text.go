package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joshuapare/xdmkit/internal/format"
)

// printText prints an item in indented text format.
func (p *Printer) printText(it item, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	switch {
	case it.Truncated:
		_, err := fmt.Fprintf(p.writer, "%s%s ...\n", indent, it.Tag)
		return err
	case it.Tree != nil:
		if _, err := fmt.Fprintf(p.writer, "%s%s\n", indent, it.Tag); err != nil {
			return err
		}
		return p.printNodeText(it.Tree, depth+1)
	case it.Items != nil:
		if _, err := fmt.Fprintf(p.writer, "%s%s [%d]\n", indent, it.Tag, len(it.Items)); err != nil {
			return err
		}
		for _, child := range it.Items {
			if err := p.printText(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	switch v := it.Value.(type) {
	case string:
		if it.tag.IsStringLike() {
			v = p.quote(v)
		}
		_, err := fmt.Fprintf(p.writer, "%s%s %s\n", indent, it.Tag, v)
		return err
	case []byte:
		_, err := fmt.Fprintf(p.writer, "%s%s % x\n", indent, it.Tag, v)
		return err
	default:
		_, err := fmt.Fprintf(p.writer, "%s%s %s\n", indent, it.Tag, lexical(it))
		return err
	}
}

func (p *Printer) printNodeText(n *node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(n.Kind)
	switch {
	case n.kind == format.TagElementNode:
		fmt.Fprintf(&b, " <%s>", n.Name)
	case n.kind == format.TagAttributeNode:
		fmt.Fprintf(&b, " @%s=%s", n.Name, p.quote(deref(n.Value)))
	case n.Target != "":
		fmt.Fprintf(&b, " %s %s", n.Target, p.quote(deref(n.Value)))
	case n.Value != nil:
		fmt.Fprintf(&b, " %s", p.quote(*n.Value))
	}
	if n.URI != "" {
		fmt.Fprintf(&b, " {%s}", n.URI)
	}
	if p.opts.ShowNodeIDs && n.ID != nil {
		fmt.Fprintf(&b, " #%d", *n.ID)
	}
	if n.Truncated {
		b.WriteString(" ...")
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(p.writer, b.String()); err != nil {
		return err
	}

	for _, ns := range n.Namespaces {
		if _, err := fmt.Fprintf(p.writer, "%s%sxmlns:%s=%s\n", indent,
			strings.Repeat(" ", p.opts.IndentSize), ns.Prefix, strconv.Quote(ns.URI)); err != nil {
			return err
		}
	}
	for i := range n.Attributes {
		if err := p.printNodeText(&n.Attributes[i], depth+1); err != nil {
			return err
		}
	}
	for i := range n.Children {
		if err := p.printNodeText(&n.Children[i], depth+1); err != nil {
			return err
		}
	}
	return nil
}

// quote quotes s, truncating it to MaxStringBytes first.
func (p *Printer) quote(s string) string {
	if limit := p.opts.MaxStringBytes; limit > 0 && len(s) > limit {
		return fmt.Sprintf("%s... (%d bytes)", strconv.Quote(truncateUTF8(s, limit)), len(s))
	}
	return strconv.Quote(s)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
