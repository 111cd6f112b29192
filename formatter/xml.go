package formatter

import (
	"encoding/xml"
	"strings"
)

// Declaration is the fixed XML declaration written before every document.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

const indent = "  "

// Render serializes the tree rooted at root to indented XML text. Output is
// deterministic: the same tree always yields the same bytes.
func Render(root *Element) string {
	var b strings.Builder
	b.WriteString(Declaration)
	if root != nil {
		b.WriteString("\n")
		writeElement(&b, root, 0)
	}
	return b.String()
}

func writeElement(b *strings.Builder, e *Element, depth int) {
	pad := strings.Repeat(indent, depth)
	b.WriteString(pad)
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		writeEscaped(b, a.Value)
		b.WriteString("\"")
	}

	switch {
	case len(e.Children) > 0:
		b.WriteString(">")
		for _, c := range e.Children {
			b.WriteString("\n")
			writeElement(b, c, depth+1)
		}
		b.WriteString("\n")
		b.WriteString(pad)
		b.WriteString("</")
		b.WriteString(e.Tag)
		b.WriteString(">")
	case e.Text != "":
		b.WriteString(">")
		writeEscaped(b, e.Text)
		b.WriteString("</")
		b.WriteString(e.Tag)
		b.WriteString(">")
	default:
		b.WriteString("/>")
	}
}

// writeEscaped escapes markup characters and replaces characters XML 1.0
// forbids (control codes, invalid UTF-8) with U+FFFD.
func writeEscaped(b *strings.Builder, s string) {
	_ = xml.EscapeText(b, []byte(s))
}
