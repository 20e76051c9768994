package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/navigator"
	"ai-strategy-agent-be/pkg/agent/oracle"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/agent/turn"
	"ai-strategy-agent-be/pkg/llm"
	"ai-strategy-agent-be/pkg/richtext"
)

// scriptedOracle replays canned outputs in order; Reply and Decide consume
// the same script entry.
type scriptedOracle struct {
	outputs []*oracle.TurnOutput
	errs    []error
	calls   int
}

func (s *scriptedOracle) Reply(context.Context, string, []llm.Message) (string, error) {
	if s.calls < len(s.errs) && s.errs[s.calls] != nil {
		return "", s.errs[s.calls]
	}
	return s.outputs[s.calls].Reply, nil
}

func (s *scriptedOracle) Decide(context.Context, string, []llm.Message, string) (*oracle.TurnOutput, error) {
	out := s.outputs[s.calls]
	s.calls++
	return &oracle.TurnOutput{
		Reply:         out.Reply,
		Directive:     out.Directive,
		SectionUpdate: out.SectionUpdate,
		Score:         out.Score,
		Satisfied:     out.Satisfied,
	}, nil
}

type recordingGateway struct {
	saves     []persist.SaveRequest
	saveErr   error
	exportURL string
	exportErr error
}

func (g *recordingGateway) Load(_ context.Context, _ int64, _ catalog.SectionID) persist.LoadResult {
	return persist.LoadResult{Status: state.StatusPending}
}

func (g *recordingGateway) Save(_ context.Context, _ int64, req persist.SaveRequest) error {
	if g.saveErr != nil {
		return g.saveErr
	}
	g.saves = append(g.saves, req)
	return nil
}

func (g *recordingGateway) ListStatus(context.Context, int64) (map[catalog.SectionID]state.Status, error) {
	return nil, nil
}

func (g *recordingGateway) Export(context.Context, int64) (string, error) {
	return g.exportURL, g.exportErr
}

func (g *recordingGateway) UserContext(context.Context, int64) (map[string]string, error) {
	return map[string]string{}, nil
}

type staticPrompts struct{}

func (staticPrompts) BaseRules() string { return "You are a strategy interviewer." }

func (staticPrompts) SectionPrompt(id catalog.SectionID, _ map[string]string) string {
	return "Collect information for section " + string(id) + "."
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Descriptor{
		{ID: "icp", Title: "Ideal Client", RequiredFields: []string{"who"}, Next: "pain", RemoteID: 10},
		{ID: "pain", Title: "Pain Points", RequiredFields: []string{"pains"}, RemoteID: 11},
	})
	require.NoError(t, err)
	return cat
}

func newExecutor(t *testing.T, orc oracle.Oracle, gw persist.Gateway) *Executor {
	t.Helper()
	cat := testCatalog(t)
	log := zap.NewNop()
	return New(
		cat,
		staticPrompts{},
		orc,
		turn.NewProcessor(cat, turn.DefaultPassScore, log),
		navigator.New(cat, gw, log),
		gw,
		log,
	)
}

func newConversation() *state.Conversation {
	return state.NewConversation(uuid.New(), uuid.New(), 42, "value_canvas")
}

func TestRunTurnOpeningTickAsksFirstQuestion(t *testing.T) {
	orc := &scriptedOracle{outputs: []*oracle.TurnOutput{
		{Reply: "Who is your ideal client?", Directive: "stay"},
	}}
	gw := &recordingGateway{}
	exec := newExecutor(t, orc, gw)
	conv := newConversation()

	res, err := exec.RunTurn(context.Background(), conv, "")
	require.NoError(t, err)

	// The fresh conversation's initial Next directive lands on the first
	// section, then one oracle call surfaces its opening question.
	assert.Equal(t, catalog.SectionID("icp"), conv.CurrentSection)
	assert.Equal(t, []string{"Who is your ideal client?"}, res.Replies)
	assert.True(t, conv.AwaitingInput)
	assert.Empty(t, gw.saves)
}

func TestRunTurnAdvanceSavesThenOpensNextSection(t *testing.T) {
	orc := &scriptedOracle{outputs: []*oracle.TurnOutput{
		{
			Reply:         "Great, that's a clear picture of your ideal client.",
			Directive:     "next",
			SectionUpdate: richtext.FromPlainText("who: SaaS founders"),
			Score:         intPtr(4),
		},
		{Reply: "Now, what pains do they struggle with?", Directive: "stay"},
	}}
	gw := &recordingGateway{}
	exec := newExecutor(t, orc, gw)
	conv := newConversation()
	conv.CurrentSection = "icp"
	conv.Directive = state.Stay()

	res, err := exec.RunTurn(context.Background(), conv, "They are SaaS founders.")
	require.NoError(t, err)

	require.Len(t, gw.saves, 1)
	assert.Equal(t, catalog.SectionID("icp"), gw.saves[0].Section)
	assert.Equal(t, state.StatusDone, gw.saves[0].Status)

	assert.Equal(t, catalog.SectionID("pain"), conv.CurrentSection)
	assert.Len(t, res.Replies, 2, "advance surfaces the next section's opening question in the same tick")
	assert.Equal(t, 2, orc.calls)
	assert.True(t, conv.AwaitingInput)

	// The closing reply was spoken in the section it closed, the opening
	// question in the section the turn landed on.
	require.Len(t, res.ReplySections, 2)
	assert.Equal(t, catalog.SectionID("icp"), res.ReplySections[0])
	assert.Equal(t, catalog.SectionID("pain"), res.ReplySections[1])
}

func TestRunTurnStayWithoutInputHalts(t *testing.T) {
	orc := &scriptedOracle{}
	exec := newExecutor(t, orc, &recordingGateway{})
	conv := newConversation()
	conv.CurrentSection = "icp"
	conv.Directive = state.Stay()

	res, err := exec.RunTurn(context.Background(), conv, "")
	require.NoError(t, err)

	assert.Empty(t, res.Replies)
	assert.Zero(t, orc.calls, "no oracle call without new input")
	assert.True(t, conv.AwaitingInput)
}

func TestRunTurnFinishedConversationIsInert(t *testing.T) {
	orc := &scriptedOracle{}
	exec := newExecutor(t, orc, &recordingGateway{})
	conv := newConversation()
	conv.Finished = true

	res, err := exec.RunTurn(context.Background(), conv, "hello again")
	require.NoError(t, err)

	assert.True(t, res.Finished)
	assert.Empty(t, res.Replies)
	assert.Zero(t, orc.calls)
}

func TestRunTurnLastSectionDoneTriggersExport(t *testing.T) {
	orc := &scriptedOracle{outputs: []*oracle.TurnOutput{
		{
			Reply:         "That wraps up the pains.",
			Directive:     "next",
			SectionUpdate: richtext.FromPlainText("pains: churn"),
			Score:         intPtr(5),
		},
	}}
	gw := &recordingGateway{exportURL: "https://files.example.com/canvas.pdf"}
	exec := newExecutor(t, orc, gw)
	conv := newConversation()
	conv.CurrentSection = "pain"
	conv.Directive = state.Stay()
	conv.Section("icp").Status = state.StatusDone

	res, err := exec.RunTurn(context.Background(), conv, "Mostly churn.")
	require.NoError(t, err)

	assert.True(t, res.Finished)
	assert.True(t, conv.Finished)
	assert.Equal(t, "https://files.example.com/canvas.pdf", res.ExportURL)
	require.Len(t, res.Replies, 2)
	assert.Contains(t, res.Replies[1], "canvas.pdf")
}

func TestRunTurnOracleFailureDegradesToApology(t *testing.T) {
	orc := &scriptedOracle{
		outputs: []*oracle.TurnOutput{{}},
		errs:    []error{errors.New("upstream timeout")},
	}
	exec := newExecutor(t, orc, &recordingGateway{})
	conv := newConversation()
	conv.CurrentSection = "icp"
	conv.Directive = state.Stay()

	res, err := exec.RunTurn(context.Background(), conv, "hi")
	require.NoError(t, err, "oracle failures never surface as errors")

	assert.Equal(t, []string{turn.ApologyReply}, res.Replies)
	assert.Equal(t, state.DirectiveStay, conv.Directive.Kind)
	assert.True(t, conv.AwaitingInput)
	assert.False(t, conv.Finished)
}

func TestRunTurnSaveFailureKeepsSectionUnmarked(t *testing.T) {
	orc := &scriptedOracle{outputs: []*oracle.TurnOutput{
		{
			Reply:         "Noted, moving on.",
			Directive:     "next",
			SectionUpdate: richtext.FromPlainText("who: founders"),
			Score:         intPtr(4),
		},
	}}
	gw := &recordingGateway{saveErr: errors.New("store down")}
	exec := newExecutor(t, orc, gw)
	conv := newConversation()
	conv.CurrentSection = "icp"
	conv.Directive = state.Stay()

	res, err := exec.RunTurn(context.Background(), conv, "They are founders.")
	require.NoError(t, err)

	assert.NotEqual(t, state.StatusDone, conv.Section("icp").Status)
	assert.Equal(t, catalog.SectionID("icp"), conv.CurrentSection, "no advance past an unsaved section")
	assert.True(t, res.Degraded)
	require.Len(t, res.Replies, 1)
	assert.Contains(t, res.Replies[0], turn.SaveUncertainReply)
	assert.Empty(t, res.SectionsSaved)
}

func intPtr(n int) *int { return &n }
