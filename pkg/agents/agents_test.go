package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agents/valuecanvas"
)

func TestLookupKnownAgents(t *testing.T) {
	for _, key := range []string{"value_canvas", "social_pitch", "special_report"} {
		def, err := Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, key, def.Key)
		assert.NotNil(t, def.Catalog)
		assert.NotNil(t, def.Prompts)
		assert.Positive(t, def.AgentID)
		assert.Positive(t, def.PassScore)
	}
}

func TestLookupUnknownAgent(t *testing.T) {
	_, err := Lookup("founder_buddy")
	assert.Error(t, err)
}

func TestValueCanvasSectionChain(t *testing.T) {
	want := []catalog.SectionID{
		"interview", "icp", "pain", "deep_fear",
		"payoffs", "signature_method", "mistakes", "prize",
	}
	assert.Equal(t, want, valuecanvas.Catalog.Order())
}

func TestRemoteIDsAreDistinctAcrossAgents(t *testing.T) {
	seen := map[int]string{}
	for _, key := range Keys() {
		def, err := Lookup(key)
		require.NoError(t, err)
		for _, id := range def.Catalog.Order() {
			desc, ok := def.Catalog.Descriptor(id)
			require.True(t, ok)
			if prev, dup := seen[desc.RemoteID]; dup {
				t.Fatalf("remote id %d used by both %s and %s/%s", desc.RemoteID, prev, key, id)
			}
			seen[desc.RemoteID] = key + "/" + string(id)
		}
	}
}

func TestSectionPromptsRenderProfile(t *testing.T) {
	def, err := Lookup("value_canvas")
	require.NoError(t, err)

	profile := map[string]string{
		"preferred_name": "Sam",
		"company_name":   "Acme Advisory",
	}
	prompt := def.Prompts.SectionPrompt("pain", profile)
	assert.Contains(t, prompt, "Acme Advisory")
	assert.NotContains(t, prompt, "{company_name}")

	for _, id := range def.Catalog.Order() {
		assert.NotEmpty(t, def.Prompts.SectionPrompt(id, profile), "missing prompt for %s", id)
	}
}
