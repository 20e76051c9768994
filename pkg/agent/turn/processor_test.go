package turn

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/oracle"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/llm"
	"ai-strategy-agent-be/pkg/richtext"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Descriptor{
		{ID: "icp", Title: "Ideal Client", RequiredFields: []string{"who", "where"}, Next: "pain", RemoteID: 10},
		{ID: "pain", Title: "Pain Points", RequiredFields: []string{"pains"}, Next: "prize", RemoteID: 11},
		{ID: "prize", Title: "The Prize", RequiredFields: []string{"outcome"}, RemoteID: 12},
	})
	require.NoError(t, err)
	return cat
}

func testConversation(section catalog.SectionID) *state.Conversation {
	conv := state.NewConversation(uuid.New(), uuid.New(), 42, "value_canvas")
	conv.CurrentSection = section
	conv.Directive = state.Stay()
	return conv
}

func intPtr(n int) *int      { return &n }
func boolPtr(b bool) *bool   { return &b }
func doc(s string) *richtext.Document {
	return richtext.FromPlainText(s)
}

func TestProcessCleanAdvance(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	out := &oracle.TurnOutput{
		Reply:         "Great, moving on.",
		Directive:     "next",
		SectionUpdate: doc("who: SaaS founders\nwhere: LinkedIn"),
		Score:         intPtr(4),
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveNext, d.Directive.Kind)
	assert.True(t, d.Persist)
	assert.Equal(t, state.StatusDone, d.Status)
	assert.False(t, d.Recovered)
	require.NotNil(t, d.Update)
}

func TestProcessInvalidJumpTargetDegradesToStay(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("pain")

	out := &oracle.TurnOutput{
		Reply:     "Sure, let's revisit that.",
		Directive: "jump:marketing_funnel",
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveStay, d.Directive.Kind)
	assert.False(t, d.Persist)
	assert.Equal(t, "Sure, let's revisit that.", d.Reply)
}

func TestProcessLowScoreOverridesNext(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	out := &oracle.TurnOutput{
		Reply:         "Done! Moving on.",
		Directive:     "next",
		SectionUpdate: doc("who: everyone"),
		Score:         intPtr(1),
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveStay, d.Directive.Kind)
	assert.True(t, d.Persist)
	assert.Equal(t, state.StatusInProgress, d.Status)
}

func TestProcessDissatisfiedBooleanOverridesJump(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("pain")

	out := &oracle.TurnOutput{
		Reply:     "Let's change topic.",
		Directive: "jump:prize",
		Satisfied: boolPtr(false),
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveStay, d.Directive.Kind)
}

func TestProcessSummarySynthesis(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	out := &oracle.TurnOutput{
		Reply:     "Here's what I gathered so far:\n• Who: SaaS founders\n• Where: LinkedIn and podcasts\nDoes that look right?",
		Directive: "stay",
		Score:     intPtr(4),
	}

	d := p.Process(conv, out)

	assert.True(t, d.Persist)
	assert.True(t, d.Recovered)
	require.NotNil(t, d.Update)
	assert.Contains(t, d.Update.PlainText(), "SaaS founders")
	// The pass-level score marks the section done even while staying.
	assert.Equal(t, state.StatusDone, d.Status)
}

func TestProcessSummarySynthesisDropsLeadIn(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	out := &oracle.TurnOutput{
		Reply:     "Here's what I gathered:\n- name: Ada\n- company: Ada Ltd",
		Directive: "stay",
		Score:     intPtr(4),
	}

	d := p.Process(conv, out)

	require.NotNil(t, d.Update)
	text := d.Update.PlainText()
	// The conversational lead-in ends in a colon too; only the labeled
	// body belongs in the document.
	assert.NotContains(t, text, "gathered")
	assert.Contains(t, text, "name: Ada")
	assert.Contains(t, text, "company: Ada Ltd")
}

func TestProcessSignalWithoutUpdateRecoversFromHistory(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("pain")
	conv.Remember(llm.RoleAssistant, "Here's a summary of the pains:\n• Pains: churn, low trials")
	conv.Remember(llm.RoleUser, "yes that's right")

	out := &oracle.TurnOutput{
		Reply:     "Perfect, noted.",
		Directive: "next",
		Satisfied: boolPtr(true),
	}

	d := p.Process(conv, out)

	assert.True(t, d.Persist)
	assert.True(t, d.Recovered)
	require.NotNil(t, d.Update)
	assert.Contains(t, d.Update.PlainText(), "churn")
	assert.Equal(t, state.StatusDone, d.Status)
}

func TestProcessUnrecoverableSummaryStays(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	// Summary lead-in, but nothing structured enough to synthesize from and
	// an empty transcript. With a "stay" directive we re-collect.
	out := &oracle.TurnOutput{
		Reply:     "To summarize everything we discussed so far",
		Directive: "stay",
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveStay, d.Directive.Kind)
	assert.False(t, d.Persist)
	assert.Equal(t, RecollectReply, d.Reply)
}

func TestProcessUnrecoverableSummaryOnNextPersistsPlaceholder(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())
	conv := testConversation("icp")

	out := &oracle.TurnOutput{
		Reply:     "To summarize everything we discussed so far",
		Directive: "next",
	}

	d := p.Process(conv, out)

	assert.Equal(t, state.DirectiveNext, d.Directive.Kind)
	assert.True(t, d.Persist)
	require.NotNil(t, d.Update)
	assert.True(t, d.Update.IsEmpty())
	assert.Equal(t, state.StatusDone, d.Status)
}

// Done decisions always carry content (possibly recovered); a section with
// required fields is never marked done on signal alone.
func TestProcessNeverDoneWithoutContent(t *testing.T) {
	p := NewProcessor(testCatalog(t), DefaultPassScore, zap.NewNop())

	outputs := []*oracle.TurnOutput{
		{Reply: "ok", Directive: "stay", Score: intPtr(5)},
		{Reply: "ok", Directive: "stay", Satisfied: boolPtr(true)},
	}
	for _, out := range outputs {
		conv := testConversation("icp")
		d := p.Process(conv, out)
		if d.Status == state.StatusDone {
			assert.NotNil(t, d.Update, "done decision without content for %+v", out)
		}
	}
}

func TestLooksLikeSummary(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		want  bool
	}{
		{"lead-in phrase", "Here's what I gathered: stuff", true},
		{"bulleted labeled list", "Review:\n• Who: founders\n• Where: LinkedIn", true},
		{"plain question", "What keeps your clients up at night?", false},
		{"single colon", "Note: be specific", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, looksLikeSummary(tc.reply))
		})
	}
}
