package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one transcript line. Section records which section was
// active when the line was written; the rebuild path uses it to restore the
// short memory window after a restart.
type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string
	Section       string
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
