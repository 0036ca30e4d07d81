package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type ConceptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Concept) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Concept, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Concept, error)
	ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Concept, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Concept) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error

	// ActiveNameExists reports whether any live row other than excludeID
	// already uses either non-empty language variant of the name.
	ActiveNameExists(ctx context.Context, tx *gorm.DB, nameEs, nameEn string, excludeID uint) (bool, error)
}

type conceptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConceptRepo(db *gorm.DB, baseLog *logger.Logger) ConceptRepo {
	return &conceptRepo{db: db, log: baseLog.With("repo", "ConceptRepo")}
}

func (r *conceptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Concept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *conceptRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Concept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Concept
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *conceptRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Concept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Concept
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *conceptRepo) ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Concept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Concept
	if err := t.WithContext(ctx).
		Where("retired = ?", false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *conceptRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Concept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *conceptRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Concept{}).Error
}

func (r *conceptRepo) ActiveNameExists(ctx context.Context, tx *gorm.DB, nameEs, nameEn string, excludeID uint) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	q := t.WithContext(ctx).
		Model(&types.Concept{}).
		Where("retired = ?", false).
		Where("id <> ?", excludeID).
		Where(
			t.Session(&gorm.Session{NewDB: true}).
				Where("name_es <> '' AND name_es = ?", nameEs).
				Or("name_en <> '' AND name_en = ?", nameEn),
		)
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
