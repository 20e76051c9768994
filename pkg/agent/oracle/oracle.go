package oracle

import (
	"context"
	"errors"

	"ai-strategy-agent-be/pkg/llm"
	"ai-strategy-agent-be/pkg/richtext"
)

// ErrSchema marks a turn output that could not be coerced into the structured
// schema at all. The orchestrator maps it to the fallback-apology path.
var ErrSchema = errors.New("oracle output does not match turn schema")

// TurnOutput is the structured result of one oracle turn. The reply is the
// user-visible text; everything else is untrusted control data that the turn
// processor validates before acting on it.
type TurnOutput struct {
	Reply         string             `json:"reply"`
	Directive     string             `json:"directive"`
	SectionUpdate *richtext.Document `json:"section_update,omitempty"`
	Score         *int               `json:"score,omitempty"`
	Satisfied     *bool              `json:"satisfied,omitempty"`
}

// Oracle is the boundary to the language model. The two methods have
// deliberately different contracts:
//
//   - Reply produces the conversational turn and is the only oracle text that
//     may reach the user (the service streams it out).
//   - Decide analyzes the finished reply and returns control data. Its output
//     must never be shown to the user.
type Oracle interface {
	Reply(ctx context.Context, system string, history []llm.Message) (string, error)
	Decide(ctx context.Context, system string, history []llm.Message, lastReply string) (*TurnOutput, error)
}
