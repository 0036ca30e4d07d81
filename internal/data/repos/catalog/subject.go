package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type SubjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Subject) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Subject, error)
	ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Subject) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	return &subjectRepo{db: db, log: baseLog.With("repo", "SubjectRepo")}
}

func (r *subjectRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Subject) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Subject, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Subject
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *subjectRepo) ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Subject, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Subject
	if err := t.WithContext(ctx).
		Where("retired = ?", false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subjectRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Subject) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *subjectRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Subject{}).Error
}
