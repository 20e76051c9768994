package implementation

import (
	"context"
	"errors"

	"ai-strategy-agent-be/internal/entity"
	"ai-strategy-agent-be/internal/mapper"
	"ai-strategy-agent-be/internal/model"
	"ai-strategy-agent-be/internal/repository/contract"
	"ai-strategy-agent-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SectionSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewSectionSnapshotRepository(db *gorm.DB) contract.SectionSnapshotRepository {
	return &SectionSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *SectionSnapshotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SectionSnapshotRepositoryImpl) Upsert(ctx context.Context, snapshot *entity.SectionSnapshot) error {
	m := r.mapper.SectionSnapshotToModel(snapshot)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "section_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content", "plain_text", "score", "satisfied", "status", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*snapshot = *r.mapper.SectionSnapshotToEntity(m)
	return nil
}

func (r *SectionSnapshotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionSnapshot, error) {
	var m model.SectionSnapshot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SectionSnapshotToEntity(&m), nil
}

func (r *SectionSnapshotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionSnapshot, error) {
	var models []*model.SectionSnapshot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SectionSnapshot, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SectionSnapshotToEntity(m)
	}
	return entities, nil
}
