package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/navigator"
	"ai-strategy-agent-be/pkg/agent/oracle"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/agent/turn"
	"ai-strategy-agent-be/pkg/llm"
)

// maxHops bounds oracle invocations per tick: the turn itself plus at most
// one extra call to surface the opening prompt of a freshly entered section.
const maxHops = 2

// PromptProvider supplies the agent-specific instruction text. Each agent
// (value canvas, social pitch, special report) ships its own implementation.
type PromptProvider interface {
	BaseRules() string
	SectionPrompt(id catalog.SectionID, profile map[string]string) string
}

// TurnResult is everything one tick produced for the caller to deliver.
// ReplySections runs parallel to Replies and names the section each reply
// was spoken in; on an advancing turn the closing reply belongs to the old
// section and the opening question to the new one.
type TurnResult struct {
	Replies       []string
	ReplySections []catalog.SectionID
	SectionsSaved []catalog.SectionID
	Finished      bool
	ExportURL     string
	Degraded      bool
}

func (r *TurnResult) addReply(section catalog.SectionID, reply string) {
	r.Replies = append(r.Replies, reply)
	r.ReplySections = append(r.ReplySections, section)
}

// Executor runs the tick loop for one conversation: navigate, ask the
// oracle, process its output, persist, navigate again. The caller guarantees
// one tick at a time per conversation.
type Executor struct {
	catalog   *catalog.Catalog
	prompts   PromptProvider
	oracle    oracle.Oracle
	processor *turn.Processor
	navigator *navigator.Navigator
	gateway   persist.Gateway
	logger    *zap.Logger
}

func New(
	cat *catalog.Catalog,
	prompts PromptProvider,
	orc oracle.Oracle,
	processor *turn.Processor,
	nav *navigator.Navigator,
	gateway persist.Gateway,
	logger *zap.Logger,
) *Executor {
	return &Executor{
		catalog:   cat,
		prompts:   prompts,
		oracle:    orc,
		processor: processor,
		navigator: nav,
		gateway:   gateway,
		logger:    logger,
	}
}

// RunTurn processes one user message (or an empty message for the opening
// tick of a new conversation). It never returns a user-visible error: oracle
// failures degrade to an apology reply on the same section.
func (e *Executor) RunTurn(ctx context.Context, conv *state.Conversation, userMessage string) (*TurnResult, error) {
	result := &TurnResult{}

	if conv.Finished {
		result.Finished = true
		return result, nil
	}

	hasNewInput := strings.TrimSpace(userMessage) != ""
	if hasNewInput {
		conv.Remember(llm.RoleUser, userMessage)
		conv.AwaitingInput = false
	}

	// A pending directive from the previous tick (or the initial Next of a
	// fresh conversation) is applied before the oracle speaks.
	navRes := e.navigator.Apply(ctx, conv)
	result.Degraded = result.Degraded || navRes.Degraded
	if navRes.Finished {
		e.finish(ctx, conv, result)
		return result, nil
	}

	if !hasNewInput && !navRes.Transitioned {
		// Stay with nothing new from the user: halting here keeps the
		// assistant from talking to itself.
		conv.AwaitingInput = true
		return result, nil
	}

	for hop := 0; hop < maxHops; hop++ {
		out, err := e.invoke(ctx, conv)
		if err != nil {
			e.logger.Error("oracle turn failed, degrading to apology",
				zap.String("conversation_id", conv.ID.String()),
				zap.String("section", string(conv.CurrentSection)),
				zap.Error(err))
			conv.Directive = state.Stay()
			conv.AwaitingInput = true
			conv.Remember(llm.RoleAssistant, turn.ApologyReply)
			result.addReply(conv.CurrentSection, turn.ApologyReply)
			return result, nil
		}

		decision := e.processor.Process(conv, out)
		reply := decision.Reply

		if decision.Persist {
			if err := e.save(ctx, conv, decision); err != nil {
				e.logger.Error("section save failed, keeping section unmarked",
					zap.String("conversation_id", conv.ID.String()),
					zap.String("section", string(conv.CurrentSection)),
					zap.Error(err))
				// The store rejected the data, so memory stays unmarked and
				// the reply must not claim success.
				reply = reply + "\n\n" + turn.SaveUncertainReply
				decision.Directive = state.Stay()
				result.Degraded = true
			} else {
				result.SectionsSaved = append(result.SectionsSaved, conv.CurrentSection)
			}
		}

		conv.Remember(llm.RoleAssistant, reply)
		result.addReply(conv.CurrentSection, reply)
		conv.Directive = decision.Directive

		navRes = e.navigator.Apply(ctx, conv)
		result.Degraded = result.Degraded || navRes.Degraded
		if navRes.Finished {
			e.finish(ctx, conv, result)
			return result, nil
		}
		if !navRes.Transitioned {
			break
		}
		// Entered a new section: one more oracle call surfaces its opening
		// question without waiting for another user message.
	}

	conv.AwaitingInput = true
	return result, nil
}

// invoke runs the two oracle calls of a turn: the user-visible reply, then
// the internal decision pass over that reply. Only the first may ever be
// shown to the user.
func (e *Executor) invoke(ctx context.Context, conv *state.Conversation) (*oracle.TurnOutput, error) {
	system := e.buildSystem(conv)

	reply, err := e.oracle.Reply(ctx, system, conv.ShortMemory)
	if err != nil {
		return nil, fmt.Errorf("reply call: %w", err)
	}

	out, err := e.oracle.Decide(ctx, system, conv.ShortMemory, reply)
	if err != nil {
		return nil, fmt.Errorf("decide call: %w", err)
	}
	out.Reply = reply
	return out, nil
}

func (e *Executor) buildSystem(conv *state.Conversation) string {
	var sb strings.Builder
	sb.WriteString(e.prompts.BaseRules())
	sb.WriteString("\n\n")
	sb.WriteString(e.prompts.SectionPrompt(conv.CurrentSection, conv.Profile))

	// Previously collected content lets the oracle correct instead of
	// re-asking from scratch when the user revisits a section.
	if sec, ok := conv.Sections[conv.CurrentSection]; ok && sec.PlainText != "" {
		sb.WriteString("\n\nPreviously collected for this section:\n")
		sb.WriteString(sec.PlainText)
	}
	return sb.String()
}

// save persists the decision and, only on success, mirrors it into memory.
func (e *Executor) save(ctx context.Context, conv *state.Conversation, d turn.Decision) error {
	err := e.gateway.Save(ctx, conv.RemoteUserID, persist.SaveRequest{
		Section:   conv.CurrentSection,
		Content:   d.Update,
		Score:     d.Score,
		Satisfied: d.Satisfied,
		Status:    d.Status,
	})
	if err != nil {
		return err
	}

	sec := conv.Section(conv.CurrentSection)
	sec.Content = d.Update
	if d.Update != nil {
		sec.PlainText = d.Update.PlainText()
	}
	sec.Score = d.Score
	sec.Satisfied = d.Satisfied
	sec.Status = d.Status
	sec.UpdatedAt = time.Now()
	return nil
}

// finish runs the completion path: request the aggregate export and close
// out the conversation with a final reply.
func (e *Executor) finish(ctx context.Context, conv *state.Conversation, result *TurnResult) {
	result.Finished = true
	conv.AwaitingInput = false

	url, err := e.gateway.Export(ctx, conv.RemoteUserID)
	if err != nil {
		e.logger.Error("export failed after completion",
			zap.String("conversation_id", conv.ID.String()),
			zap.Error(err))
		result.Degraded = true
		reply := "We've covered every section. I couldn't generate your document just now, but all your answers are saved and the export can be retried from the dashboard."
		conv.Remember(llm.RoleAssistant, reply)
		result.addReply(conv.CurrentSection, reply)
		return
	}

	result.ExportURL = url
	reply := "That completes every section. Your document is ready: " + url
	conv.Remember(llm.RoleAssistant, reply)
	result.addReply(conv.CurrentSection, reply)
}
