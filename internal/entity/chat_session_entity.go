package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one interview thread of a user with one agent.
type ChatSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	RemoteUserId   int64
	AgentKey       string
	Title          string
	CurrentSection string
	Finished       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
