package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-strategy-agent-be/pkg/llm"
)

const decisionPrompt = `You are the decision module of a guided interview agent.
Analyze the conversation below and the assistant's latest reply, then answer
with a single JSON object and nothing else:

{
  "directive": "stay" | "next" | "jump:<section_id>",
  "satisfied": true | false | null,
  "score": 0-5 | null,
  "section_update": {"type":"doc","content":[...]} | null
}

Rules:
- "next" only when the user confirmed they are happy with the section summary.
- "jump:<section_id>" only when the user explicitly asked to revisit a section.
- When the reply presents a completed summary of the section, section_update
  MUST contain that summary as a rich text document.
- satisfied/score reflect the user's stated satisfaction, null when unknown.

Conversation:
%s

Assistant's latest reply:
%s`

// decision is the wire schema of the Decide call. Reply is attached by us,
// not requested from the model, so the model cannot rewrite user-visible text.
type decision struct {
	Directive     string          `json:"directive"`
	Satisfied     *bool           `json:"satisfied"`
	Score         *int            `json:"score"`
	SectionUpdate json.RawMessage `json:"section_update"`
}

// LLMOracle implements Oracle on top of a provider-agnostic LLM backend.
type LLMOracle struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

var _ Oracle = &LLMOracle{}

func NewLLMOracle(provider llm.LLMProvider, logger *log.Logger) *LLMOracle {
	return &LLMOracle{provider: provider, logger: logger}
}

// Reply generates the user-visible conversational turn for the current
// section.
func (o *LLMOracle) Reply(ctx context.Context, system string, history []llm.Message) (string, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: system})
	messages = append(messages, history...)

	reply, err := o.provider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("reply generation: %w", err)
	}
	return reply, nil
}

// Decide runs the internal, non-user-visible analysis call and decodes its
// JSON output. A response that cannot be decoded at all is ErrSchema.
func (o *LLMOracle) Decide(ctx context.Context, system string, history []llm.Message, lastReply string) (*TurnOutput, error) {
	prompt := fmt.Sprintf(decisionPrompt, formatHistory(history), lastReply)

	raw, err := o.provider.Generate(ctx, prompt,
		llm.WithJSONOutput(),
		llm.WithTemperature(0.0),
	)
	if err != nil {
		return nil, fmt.Errorf("decision call: %w", err)
	}

	var dec decision
	if err := json.Unmarshal([]byte(extractJSON(raw)), &dec); err != nil {
		o.logger.Printf("[ORACLE] undecodable decision payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	out := &TurnOutput{
		Reply:     lastReply,
		Directive: dec.Directive,
		Score:     dec.Score,
		Satisfied: dec.Satisfied,
	}

	// A malformed section_update is treated as absent, not fatal: the turn
	// processor has its own recovery path for summaries without data.
	if len(dec.SectionUpdate) > 0 && string(dec.SectionUpdate) != "null" {
		if doc, err := decodeUpdate(dec.SectionUpdate); err == nil {
			out.SectionUpdate = doc
		} else {
			o.logger.Printf("[ORACLE] dropping malformed section_update: %v", err)
		}
	}

	return out, nil
}

func formatHistory(history []llm.Message) string {
	var sb strings.Builder
	for _, msg := range history {
		sb.WriteString(strings.ToUpper(msg.Role))
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractJSON trims everything around the outermost JSON object. Some models
// wrap JSON mode output in markdown fences despite instructions.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
