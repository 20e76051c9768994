package navigator

import (
	"context"

	"go.uber.org/zap"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
)

// Navigator applies the conversation's pending directive: stay put, advance
// to the next unfinished section, jump, or finish. It owns the short-memory
// reset rule and the context reload on every real transition.
type Navigator struct {
	catalog *catalog.Catalog
	gateway persist.Gateway
	logger  *zap.Logger
}

func New(cat *catalog.Catalog, gateway persist.Gateway, logger *zap.Logger) *Navigator {
	return &Navigator{catalog: cat, gateway: gateway, logger: logger}
}

// Result describes what a single Apply did.
type Result struct {
	Transitioned bool
	Finished     bool
	Degraded     bool
}

// Apply consumes the conversation's directive. After a Next or Jump the
// directive resets to Stay so an idle tick cannot replay the transition.
// A finished conversation never transitions again.
func (n *Navigator) Apply(ctx context.Context, conv *state.Conversation) Result {
	if conv.Finished {
		return Result{Finished: true}
	}

	directive := conv.Directive
	switch directive.Kind {
	case state.DirectiveStay:
		return Result{}

	case state.DirectiveNext:
		conv.Directive = state.Stay()
		next, ok := n.catalog.NextUnfinished(conv.DoneSet())
		if !ok {
			conv.Finished = true
			n.logger.Info("all sections done, conversation finished",
				zap.String("conversation_id", conv.ID.String()))
			return Result{Transitioned: true, Finished: true}
		}
		degraded := n.enter(ctx, conv, next)
		return Result{Transitioned: true, Degraded: degraded}

	case state.DirectiveJump:
		conv.Directive = state.Stay()
		if directive.Target == conv.CurrentSection {
			// Re-affirming the current section keeps the transcript intact.
			degraded := n.reload(ctx, conv, directive.Target)
			return Result{Transitioned: true, Degraded: degraded}
		}
		degraded := n.enter(ctx, conv, directive.Target)
		return Result{Transitioned: true, Degraded: degraded}
	}

	return Result{}
}

// enter moves to a different section: fresh context window, state reloaded
// from the store.
func (n *Navigator) enter(ctx context.Context, conv *state.Conversation, id catalog.SectionID) (degraded bool) {
	same := id == conv.CurrentSection
	conv.CurrentSection = id
	if !same {
		conv.ClearShortMemory()
	}
	return n.reload(ctx, conv, id)
}

// reload pulls the section's stored state into memory. A degraded load leaves
// the section pending with no content; it never blocks the transition.
func (n *Navigator) reload(ctx context.Context, conv *state.Conversation, id catalog.SectionID) bool {
	res := n.gateway.Load(ctx, conv.RemoteUserID, id)

	sec := conv.Section(id)
	sec.Status = res.Status
	sec.Content = res.Content
	sec.PlainText = res.PlainText
	sec.Score = res.Score

	if res.Degraded {
		n.logger.Warn("entered section with degraded store state",
			zap.String("conversation_id", conv.ID.String()),
			zap.String("section", string(id)))
	}
	return res.Degraded
}
