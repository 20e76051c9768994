package unitofwork

import (
	"context"

	"ai-strategy-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	SectionSnapshotRepository() contract.SectionSnapshotRepository
}
