package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-strategy-agent-be/pkg/agent/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Descriptor{
		{ID: "interview", Next: "icp"},
		{ID: "icp", Next: "pain"},
		{ID: "pain"},
	})
	require.NoError(t, err)
	return c
}

func TestParseDirective(t *testing.T) {
	cat := testCatalog(t)

	tests := []struct {
		raw     string
		want    Directive
		wantErr bool
	}{
		{"stay", Stay(), false},
		{"next", Next(), false},
		{"NEXT", Next(), false},
		{"  stay  ", Stay(), false},
		{"", Stay(), false},
		{"jump:pain", JumpTo("pain"), false},
		{"jump: pain", JumpTo("pain"), false},
		{"modify:icp", JumpTo("icp"), false},
		{"jump:ICP", JumpTo("icp"), false},
		{"jump:nonexistent", Stay(), true},
		{"modify:", Stay(), true},
		{"advance", Stay(), true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDirective(tt.raw, cat)
			if tt.wantErr {
				assert.Error(t, err)
				// Malformed input always degrades to Stay, never crashes.
				assert.Equal(t, Stay(), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "stay", Stay().String())
	assert.Equal(t, "next", Next().String())
	assert.Equal(t, "jump:pain", JumpTo("pain").String())
}

func TestShortMemoryWindow(t *testing.T) {
	conv := NewConversation(uuid.Nil, uuid.Nil, 1, "value_canvas")

	for i := 0; i < ShortMemoryLimit+5; i++ {
		conv.Remember("user", "msg")
	}
	assert.Len(t, conv.ShortMemory, ShortMemoryLimit)

	conv.ClearShortMemory()
	assert.Empty(t, conv.ShortMemory)
}

func TestSectionDefaultsToPending(t *testing.T) {
	conv := NewConversation(uuid.Nil, uuid.Nil, 1, "value_canvas")

	s := conv.Section("interview")
	assert.Equal(t, StatusPending, s.Status)
	assert.Nil(t, s.Content)

	// Same instance on repeat access.
	s.Status = StatusDone
	assert.Equal(t, StatusDone, conv.Section("interview").Status)
	assert.Equal(t, map[catalog.SectionID]bool{"interview": true}, conv.DoneSet())
}
