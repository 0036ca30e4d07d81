package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type StudentGroupRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.StudentGroup) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.StudentGroup, error)
	ListLive(ctx context.Context, tx *gorm.DB) ([]*types.StudentGroup, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.StudentGroup) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error
}

type studentGroupRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentGroupRepo(db *gorm.DB, baseLog *logger.Logger) StudentGroupRepo {
	return &studentGroupRepo{db: db, log: baseLog.With("repo", "StudentGroupRepo")}
}

func (r *studentGroupRepo) Create(ctx context.Context, tx *gorm.DB, row *types.StudentGroup) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *studentGroupRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.StudentGroup, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.StudentGroup
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *studentGroupRepo) ListLive(ctx context.Context, tx *gorm.DB) ([]*types.StudentGroup, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.StudentGroup
	if err := t.WithContext(ctx).
		Where("retired = ?", false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *studentGroupRepo) Save(ctx context.Context, tx *gorm.DB, row *types.StudentGroup) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *studentGroupRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.StudentGroup{}).Error
}
