package richtext

import "strings"

// FromPlainText builds a document from plain text. Blank lines separate
// paragraphs, single newlines become hard breaks. The conversion is the exact
// inverse of PlainText for any text built from those two constructs, which is
// what keeps the remote store (plain text) and the agent (rich text) in sync.
func FromPlainText(text string) *Document {
	doc := NewDocument()
	if text == "" {
		return doc
	}

	for _, para := range strings.Split(text, "\n\n") {
		node := Node{Type: nodeParagraph}
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				node.Content = append(node.Content, Node{Type: nodeHardBreak})
			}
			if line != "" {
				node.Content = append(node.Content, Node{Type: nodeText, Text: line})
			}
		}
		doc.Content = append(doc.Content, node)
	}
	return doc
}

// PlainText flattens the document back to plain text. Paragraphs are joined
// with blank lines, hard breaks become single newlines.
func (d *Document) PlainText() string {
	if d == nil {
		return ""
	}

	paras := make([]string, 0, len(d.Content))
	for _, node := range d.Content {
		var sb strings.Builder
		flatten(node, &sb)
		paras = append(paras, sb.String())
	}
	return strings.Join(paras, "\n\n")
}

func flatten(n Node, sb *strings.Builder) {
	switch n.Type {
	case nodeHardBreak:
		sb.WriteString("\n")
	case nodeText:
		sb.WriteString(n.Text)
	}
	for _, child := range n.Content {
		flatten(child, sb)
	}
}
