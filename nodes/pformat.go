package nodes

import (
	"fmt"
	"strings"
)

const pformatIndent = "    "

// PFormat renders the tree as indented pseudo-XML, one node per line. The
// output is meant for debugging and test assertions, not round-tripping.
func PFormat(n Node) string {
	var sb strings.Builder
	pformat(&sb, n, 0)
	return sb.String()
}

func pformat(sb *strings.Builder, n Node, depth int) {
	indent := strings.Repeat(pformatIndent, depth)

	if text, ok := n.(*Text); ok {
		sb.WriteString(indent)
		sb.WriteString(escapeText(text.Value))
		sb.WriteString("\n")
		return
	}

	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.Tag())
	if attrs := attributes(n); attrs != "" {
		sb.WriteString(" ")
		sb.WriteString(attrs)
	}
	sb.WriteString(">\n")

	if literal := literalContent(n); literal != "" {
		sb.WriteString(strings.Repeat(pformatIndent, depth+1))
		sb.WriteString(escapeText(literal))
		sb.WriteString("\n")
	}

	for _, child := range n.Children() {
		pformat(sb, child, depth+1)
	}
}

func attributes(n Node) string {
	switch node := n.(type) {
	case *Section:
		parts := []string{}
		if len(node.IDs) > 0 {
			parts = append(parts, fmt.Sprintf("ids=%q", strings.Join(node.IDs, " ")))
		}
		if len(node.Names) > 0 {
			parts = append(parts, fmt.Sprintf("names=%q", strings.Join(node.Names, " ")))
		}
		return strings.Join(parts, " ")
	case *CrossReference:
		attrs := fmt.Sprintf("target=%q", node.Target)
		if node.Title != "" {
			attrs += fmt.Sprintf(" title=%q", node.Title)
		}
		return attrs
	case *Reference:
		attrs := fmt.Sprintf("refuri=%q", node.RefURI)
		if node.Title != "" {
			attrs += fmt.Sprintf(" title=%q", node.Title)
		}
		return attrs
	case *Image:
		attrs := fmt.Sprintf("uri=%q", node.URI)
		if node.Alt != "" {
			attrs += fmt.Sprintf(" alt=%q", node.Alt)
		}
		return attrs
	case *LiteralBlock:
		if node.Language != "" {
			return fmt.Sprintf("language=%q", node.Language)
		}
	case *Raw:
		return fmt.Sprintf("format=%q", node.Format)
	}
	return ""
}

func literalContent(n Node) string {
	switch node := n.(type) {
	case *LiteralBlock:
		return node.Text
	case *Raw:
		return node.Text
	}
	return ""
}

func escapeText(value string) string {
	return strings.ReplaceAll(value, "\n", `\n`)
}
