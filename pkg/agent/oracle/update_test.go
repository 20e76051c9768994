package oracle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpdate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantText string
		wantErr  bool
	}{
		{
			name:     "document",
			raw:      `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Name: Ada"}]}]}`,
			wantText: "Name: Ada",
		},
		{
			name:     "content wrapper",
			raw:      `{"content":{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"wrapped"}]}]}}`,
			wantText: "wrapped",
		},
		{
			name:     "bare string",
			raw:      `"plain summary"`,
			wantText: "plain summary",
		},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "empty document", raw: `{"type":"doc","content":[]}`, wantErr: true},
		{name: "array", raw: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeUpdate(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, doc.PlainText())
		})
	}
}
