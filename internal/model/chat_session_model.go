package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	RemoteUserId   int64          `gorm:"not null;index"`
	AgentKey       string         `gorm:"type:varchar(64);not null;index"`
	Title          string         `gorm:"type:text;not null"`
	CurrentSection string         `gorm:"type:varchar(64)"`
	Finished       bool           `gorm:"not null;default:false"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
