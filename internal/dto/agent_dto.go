package dto

import (
	"time"

	"github.com/google/uuid"
)

// Requests

type CreateSessionRequest struct {
	Title string `json:"title"`
}

type SendChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required,min=1,max=8000"`
}

// Responses

type CreateSessionResponse struct {
	SessionId      uuid.UUID `json:"session_id"`
	AgentKey       string    `json:"agent_key"`
	Title          string    `json:"title"`
	CurrentSection string    `json:"current_section"`
	Replies        []string  `json:"replies"`
	CreatedAt      time.Time `json:"created_at"`
}

type GetAllSessionsResponse struct {
	SessionId      uuid.UUID  `json:"session_id"`
	AgentKey       string     `json:"agent_key"`
	Title          string     `json:"title"`
	CurrentSection string     `json:"current_section"`
	Finished       bool       `json:"finished"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type SendChatResponse struct {
	SessionId      uuid.UUID `json:"session_id"`
	Replies        []string  `json:"replies"`
	CurrentSection string    `json:"current_section"`
	SectionsSaved  []string  `json:"sections_saved,omitempty"`
	Finished       bool      `json:"finished"`
	ExportURL      string    `json:"export_url,omitempty"`
	Degraded       bool      `json:"degraded,omitempty"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Chat      string    `json:"chat"`
	Section   string    `json:"section,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SectionStatusResponse struct {
	SectionId string `json:"section_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Score     *int   `json:"score,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

type SectionsStatusResponse struct {
	AgentKey    string                  `json:"agent_key"`
	Sections    []SectionStatusResponse `json:"sections"`
	NextSection string                  `json:"next_section,omitempty"`
	Finished    bool                    `json:"finished"`
}

type ExportResponse struct {
	AgentKey  string `json:"agent_key"`
	ExportURL string `json:"export_url"`
}

// Events

type AgentEventMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
	AgentKey  string    `json:"agent_key"`
	EventType string    `json:"event_type"`
	SectionId string    `json:"section_id,omitempty"`
	ExportURL string    `json:"export_url,omitempty"`
}
