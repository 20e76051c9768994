package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain() []Descriptor {
	return []Descriptor{
		{ID: "interview", Next: "icp", RemoteID: 9, RequiredFields: []string{"client_name"}},
		{ID: "icp", Next: "pain", RemoteID: 10},
		{ID: "pain", RemoteID: 11},
	}
}

func TestNewValidChain(t *testing.T) {
	c, err := New(chain())
	require.NoError(t, err)

	assert.Equal(t, []SectionID{"interview", "icp", "pain"}, c.Order())
	assert.Equal(t, SectionID("interview"), c.First())
	assert.Equal(t, 3, c.Len())

	d, ok := c.Descriptor("icp")
	require.True(t, ok)
	assert.Equal(t, SectionID("pain"), d.Next)

	_, ok = c.Descriptor("nonexistent")
	assert.False(t, ok)
}

func TestNewRejectsBrokenChains(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
	}{
		{"empty catalog", nil},
		{"empty id", []Descriptor{{ID: ""}}},
		{"duplicate id", []Descriptor{{ID: "a", Next: "a"}, {ID: "a"}}},
		{"terminal with next", []Descriptor{{ID: "a", Next: "b"}, {ID: "b", Next: "a"}}},
		{"wrong link", []Descriptor{{ID: "a", Next: "c"}, {ID: "b"}}},
		{"missing link", []Descriptor{{ID: "a"}, {ID: "b"}}},
		{"duplicate remote id", []Descriptor{{ID: "a", Next: "b", RemoteID: 9}, {ID: "b", RemoteID: 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.descriptors)
			assert.Error(t, err)
		})
	}
}

func TestNextUnfinished(t *testing.T) {
	c := MustNew(chain())

	// All pending: first section in catalog order.
	id, ok := c.NextUnfinished(map[SectionID]bool{})
	require.True(t, ok)
	assert.Equal(t, SectionID("interview"), id)

	// First done: next one.
	id, ok = c.NextUnfinished(map[SectionID]bool{"interview": true})
	require.True(t, ok)
	assert.Equal(t, SectionID("icp"), id)

	// A hole in the middle is revisited before later sections.
	id, ok = c.NextUnfinished(map[SectionID]bool{"interview": true, "pain": true})
	require.True(t, ok)
	assert.Equal(t, SectionID("icp"), id)

	// All done: nothing left.
	_, ok = c.NextUnfinished(map[SectionID]bool{"interview": true, "icp": true, "pain": true})
	assert.False(t, ok)
}
