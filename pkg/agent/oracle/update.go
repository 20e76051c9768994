package oracle

import (
	"encoding/json"
	"fmt"

	"ai-strategy-agent-be/pkg/richtext"
)

// decodeUpdate accepts the shapes models actually produce for a section
// update: a rich text document, a {"content": <doc>} wrapper, or a bare
// string of plain text.
func decodeUpdate(raw json.RawMessage) (*richtext.Document, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return nil, fmt.Errorf("empty section_update")
		}
		return richtext.FromPlainText(asString), nil
	}

	var wrapper struct {
		Content json.RawMessage `json:"content"`
		Type    string          `json:"type"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("section_update is not an object: %w", err)
	}

	// {"content": {...}} wrapper, unless it is already a document whose
	// content is the node list.
	if wrapper.Type != "doc" && len(wrapper.Content) > 0 && wrapper.Content[0] == '{' {
		return decodeUpdate(wrapper.Content)
	}

	doc, err := richtext.Decode(raw)
	if err != nil {
		return nil, err
	}
	if doc.IsEmpty() {
		return nil, fmt.Errorf("section_update carries no text")
	}
	return doc, nil
}
