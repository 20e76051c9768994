package richtext

import "encoding/json"

// Node is a single node in the rich text tree. The subset produced by the
// agents only uses "paragraph", "text" and "hardBreak" nodes, but unknown
// node types survive a decode/encode cycle untouched.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Document is the root of a rich text tree (Tiptap-compatible JSON).
type Document struct {
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

const (
	nodeDoc       = "doc"
	nodeParagraph = "paragraph"
	nodeText      = "text"
	nodeHardBreak = "hardBreak"
)

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Type: nodeDoc, Content: []Node{}}
}

// IsEmpty reports whether the document carries no text at all.
func (d *Document) IsEmpty() bool {
	return d == nil || d.PlainText() == ""
}

// Decode parses raw JSON into a Document.
func Decode(raw []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	if d.Type == "" {
		d.Type = nodeDoc
	}
	if d.Content == nil {
		d.Content = []Node{}
	}
	return &d, nil
}

// Encode serializes the document to JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.Marshal(d)
}
