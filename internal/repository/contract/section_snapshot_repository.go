package contract

import (
	"context"

	"ai-strategy-agent-be/internal/entity"
	"ai-strategy-agent-be/internal/repository/specification"
)

type SectionSnapshotRepository interface {
	// Upsert replaces the snapshot for (session, section); section saves
	// overwrite, never append.
	Upsert(ctx context.Context, snapshot *entity.SectionSnapshot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionSnapshot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionSnapshot, error)
}
