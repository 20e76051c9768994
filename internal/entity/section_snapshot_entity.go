package entity

import (
	"time"

	"github.com/google/uuid"
)

// SectionSnapshot is the local copy of a section save: what was written to
// the remote store and when. It survives restarts so the progress view does
// not depend on the remote store being reachable.
type SectionSnapshot struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	AgentKey  string
	SectionId string
	Content   []byte // rich-text document as JSON
	PlainText string
	Score     *int
	Satisfied *bool
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
