package exams

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type ExamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Exam) error
	GetByPublicID(ctx context.Context, tx *gorm.DB, publicID uuid.UUID) (*types.Exam, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.Exam, error)
	DeleteByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) error
}

type examRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExamRepo(db *gorm.DB, baseLog *logger.Logger) ExamRepo {
	return &examRepo{db: db, log: baseLog.With("repo", "ExamRepo")}
}

func (r *examRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Exam) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *examRepo) GetByPublicID(ctx context.Context, tx *gorm.DB, publicID uuid.UUID) (*types.Exam, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if publicID == uuid.Nil {
		return nil, nil
	}
	var out []*types.Exam
	if err := t.WithContext(ctx).Where("public_id = ?", publicID).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *examRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.Exam, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Exam
	if groupID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *examRepo) DeleteByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if groupID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("group_id = ?", groupID).Delete(&types.Exam{}).Error
}
