package state

import (
	"time"

	"github.com/google/uuid"

	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/llm"
	"ai-strategy-agent-be/pkg/richtext"
)

// Status of a section within one conversation.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ShortMemoryLimit bounds the recent message window used as oracle context.
// The full transcript lives in the database; this window only feeds prompts.
const ShortMemoryLimit = 24

// SectionState holds what has been collected for one section. Content is nil
// until the first save; PlainText is a derived cache of Content and never
// authoritative. Score and Satisfied are the two flavors of the completion
// signal: score-based agents use Score (0-5), the others use Satisfied.
type SectionState struct {
	SectionID catalog.SectionID
	Content   *richtext.Document
	PlainText string
	Score     *int
	Satisfied *bool
	Status    Status
	UpdatedAt time.Time
}

// Conversation is the per-thread state driven by the orchestrator. It is
// owned by exactly one conversation; the host serializes turns, so no
// internal locking is needed.
type Conversation struct {
	ID           uuid.UUID
	AgentKey     string
	UserID       uuid.UUID
	RemoteUserID int64

	CurrentSection catalog.SectionID
	Directive      Directive
	ShortMemory    []llm.Message
	Sections       map[catalog.SectionID]*SectionState
	Profile        map[string]string

	Finished      bool
	AwaitingInput bool
}

// NewConversation creates a fresh conversation positioned before the first
// section. The initial directive is Next so the first tick enters the first
// unfinished section and asks its opening question.
func NewConversation(id, userID uuid.UUID, remoteUserID int64, agentKey string) *Conversation {
	return &Conversation{
		ID:           id,
		AgentKey:     agentKey,
		UserID:       userID,
		RemoteUserID: remoteUserID,
		Directive:    Next(),
		ShortMemory:  []llm.Message{},
		Sections:     make(map[catalog.SectionID]*SectionState),
		Profile:      make(map[string]string),
	}
}

// Section returns the state for id, creating a pending placeholder on first
// access.
func (c *Conversation) Section(id catalog.SectionID) *SectionState {
	if s, ok := c.Sections[id]; ok {
		return s
	}
	s := &SectionState{SectionID: id, Status: StatusPending}
	c.Sections[id] = s
	return s
}

// DoneSet projects section states onto the done/not-done view NextUnfinished
// consumes.
func (c *Conversation) DoneSet() map[catalog.SectionID]bool {
	done := make(map[catalog.SectionID]bool, len(c.Sections))
	for id, s := range c.Sections {
		if s.Status == StatusDone {
			done[id] = true
		}
	}
	return done
}

// Remember appends a message to the short memory window, trimming the oldest
// entries past the limit.
func (c *Conversation) Remember(role, content string) {
	c.ShortMemory = append(c.ShortMemory, llm.Message{Role: role, Content: content})
	if excess := len(c.ShortMemory) - ShortMemoryLimit; excess > 0 {
		c.ShortMemory = c.ShortMemory[excess:]
	}
}

// ClearShortMemory drops the context window. Called when entering a different
// section so the new section starts without carry-over context.
func (c *Conversation) ClearShortMemory() {
	c.ShortMemory = []llm.Message{}
}
