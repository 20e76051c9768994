package turn

import (
	"strings"

	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/oracle"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/llm"
	"ai-strategy-agent-be/pkg/richtext"
)

// DefaultPassScore is the lowest score that counts as a pass.
const DefaultPassScore = 3

// Decision is the validated outcome of one turn: what to tell the user, what
// to save, and where to go. The oracle's raw output never leaves this package
// unchecked.
type Decision struct {
	Directive state.Directive
	Reply     string
	Update    *richtext.Document
	Score     *int
	Satisfied *bool
	Persist   bool
	Status    state.Status

	// Recovered marks an update that was synthesized from the reply text or
	// found in the transcript instead of arriving in the oracle output.
	Recovered bool
}

// Processor turns untrusted oracle output into a Decision. It is stateless
// and safe to share across conversations.
type Processor struct {
	catalog   *catalog.Catalog
	passScore int
	logger    *zap.Logger
}

func NewProcessor(cat *catalog.Catalog, passScore int, logger *zap.Logger) *Processor {
	if passScore <= 0 {
		passScore = DefaultPassScore
	}
	return &Processor{catalog: cat, passScore: passScore, logger: logger}
}

// Process validates the oracle output for the conversation's current section
// and decides directive, persistence and status. It never returns an error:
// malformed output degrades to Stay with a corrective reply.
func (p *Processor) Process(conv *state.Conversation, out *oracle.TurnOutput) Decision {
	d := Decision{
		Reply:     out.Reply,
		Update:    out.SectionUpdate,
		Score:     out.Score,
		Satisfied: out.Satisfied,
	}

	directive, err := state.ParseDirective(out.Directive, p.catalog)
	if err != nil {
		p.logger.Warn("invalid directive from oracle, staying on section",
			zap.String("conversation_id", conv.ID.String()),
			zap.String("section", string(conv.CurrentSection)),
			zap.Error(err))
		directive = state.Stay()
	}
	d.Directive = directive

	// An oracle that says "next" while reporting dissatisfaction is wrong
	// about one of the two. Trust the signal over the directive.
	if p.dissatisfied(out) && d.Directive.Kind != state.DirectiveStay {
		p.logger.Info("completion signal below threshold, overriding directive to stay",
			zap.String("section", string(conv.CurrentSection)),
			zap.String("proposed", d.Directive.String()))
		d.Directive = state.Stay()
	}

	if d.Update == nil && looksLikeSummary(out.Reply) {
		if doc, ok := synthesizeUpdate(out.Reply); ok {
			p.logger.Info("synthesized section update from summary reply",
				zap.String("section", string(conv.CurrentSection)))
			d.Update = doc
			d.Recovered = true
		}
	}

	hasSignal := out.Score != nil || out.Satisfied != nil
	d.Persist = d.Update != nil
	if !d.Persist && hasSignal {
		if doc, ok := recoverFromHistory(conv.ShortMemory); ok {
			p.logger.Info("recovered section content from transcript",
				zap.String("section", string(conv.CurrentSection)))
			d.Update = doc
			d.Recovered = true
			d.Persist = true
		}
	}

	// A summary that promised data we could not find anywhere must not
	// advance; the user would lose the section silently.
	if d.Update == nil && looksLikeSummary(out.Reply) {
		if d.Directive.Kind == state.DirectiveNext {
			// Forward progress over blocking: an empty placeholder keeps the
			// chain moving, at the cost of losing this section's content.
			p.logger.Warn("no recoverable content for advancing summary, persisting placeholder",
				zap.String("section", string(conv.CurrentSection)))
			d.Update = richtext.NewDocument()
			d.Recovered = true
			d.Persist = true
		} else {
			d.Reply = RecollectReply
			d.Directive = state.Stay()
			d.Persist = false
		}
	}

	d.Status = p.status(conv, d)
	return d
}

// status resolves the section status a persisted update should carry.
func (p *Processor) status(conv *state.Conversation, d Decision) state.Status {
	if !d.Persist {
		return conv.Section(conv.CurrentSection).Status
	}
	if d.Directive.Kind == state.DirectiveNext || p.passed(d) {
		return state.StatusDone
	}
	return state.StatusInProgress
}

func (p *Processor) passed(d Decision) bool {
	if d.Score != nil {
		return *d.Score >= p.passScore
	}
	if d.Satisfied != nil {
		return *d.Satisfied
	}
	return false
}

func (p *Processor) dissatisfied(out *oracle.TurnOutput) bool {
	if out.Score != nil {
		return *out.Score < p.passScore
	}
	if out.Satisfied != nil {
		return !*out.Satisfied
	}
	return false
}

// summaryMarkers are phrases and shapes the interview prompts push the model
// toward when it wraps up a section. The heuristic is deliberately loose:
// false positives only trigger a harmless synthesis attempt.
var summaryMarkers = []string{
	"here's what i gathered",
	"here is what i gathered",
	"here's a summary",
	"here is a summary",
	"to summarize",
	"summary of",
}

func looksLikeSummary(reply string) bool {
	if containsSummaryMarker(reply) {
		return true
	}
	// A bulleted enumeration of labeled fields reads as a summary even
	// without a lead-in phrase.
	bullets := strings.Count(reply, "\n•") + strings.Count(reply, "\n-")
	labels := strings.Count(strings.ToLower(reply), ":")
	return bullets >= 2 && labels >= 2
}

func containsSummaryMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range summaryMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// synthesizeUpdate builds a minimal document from the summary portion of the
// reply, dropping the conversational lead-in before the first bullet or
// labeled line.
func synthesizeUpdate(reply string) (*richtext.Document, bool) {
	lines := strings.Split(reply, "\n")
	start := -1
	for i, line := range lines {
		t := strings.TrimSpace(line)
		// Lead-in phrases end in a colon themselves, so check them before
		// the labeled-line shape.
		if containsSummaryMarker(t) {
			continue
		}
		if strings.HasPrefix(t, "•") || strings.HasPrefix(t, "-") || strings.Contains(t, ":") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, false
	}

	body := strings.TrimSpace(strings.Join(lines[start:], "\n"))
	if body == "" {
		return nil, false
	}
	return richtext.FromPlainText(body), true
}

// recoverFromHistory scans the short memory backward for the last assistant
// turn that carried a summary and re-derives content from it. Best effort:
// the transcript window is bounded, so an old summary may already be gone.
func recoverFromHistory(history []llm.Message) (*richtext.Document, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Role != llm.RoleAssistant {
			continue
		}
		if !looksLikeSummary(msg.Content) {
			continue
		}
		if doc, ok := synthesizeUpdate(msg.Content); ok {
			return doc, true
		}
	}
	return nil, false
}
