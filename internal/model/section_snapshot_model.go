package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SectionSnapshot struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index:idx_snapshot_session_section,unique"`
	AgentKey  string         `gorm:"type:varchar(64);not null"`
	SectionId string         `gorm:"type:varchar(64);not null;index:idx_snapshot_session_section,unique"`
	Content   datatypes.JSON `gorm:"type:jsonb"`
	PlainText string         `gorm:"type:text"`
	Score     *int
	Satisfied *bool
	Status    string         `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (SectionSnapshot) TableName() string {
	return "section_snapshots"
}
