package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single paragraph", "Name: Ada Lovelace"},
		{"two paragraphs", "Name: Ada\n\nCompany: Analytical Engines Ltd"},
		{"hard break inside paragraph", "Symptom: burnout\nStruggle: no delegation"},
		{"mixed breaks and paragraphs", "A\nB\n\nC\n\nD\nE\nF"},
		{"trailing empty paragraph", "A\n\n"},
		{"consecutive blank lines", "A\n\n\n\nB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FromPlainText(tt.text)
			assert.Equal(t, tt.text, doc.PlainText())
		})
	}
}

func TestFromPlainTextShape(t *testing.T) {
	doc := FromPlainText("line one\nline two\n\nsecond paragraph")

	require.Len(t, doc.Content, 2)
	assert.Equal(t, "paragraph", doc.Content[0].Type)

	// text / hardBreak / text
	first := doc.Content[0].Content
	require.Len(t, first, 3)
	assert.Equal(t, "text", first[0].Type)
	assert.Equal(t, "line one", first[0].Text)
	assert.Equal(t, "hardBreak", first[1].Type)
	assert.Equal(t, "line two", first[2].Text)
}

func TestDecodeEncode(t *testing.T) {
	raw := []byte(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hello"}]}]}`)

	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "hello", doc.PlainText())

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, NewDocument().IsEmpty())
	assert.True(t, (*Document)(nil).IsEmpty())
	assert.False(t, FromPlainText("x").IsEmpty())
}
