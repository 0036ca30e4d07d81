package joins

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type ConceptConceptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ConceptConcept) error
	GetPair(ctx context.Context, tx *gorm.DB, fromID, toID uint) (*types.ConceptConcept, error)
	ListFrom(ctx context.Context, tx *gorm.DB, fromID uint) ([]*types.ConceptConcept, error)
	DeletePair(ctx context.Context, tx *gorm.DB, fromID, toID uint) error

	// DeleteByConceptID removes every edge touching the concept on either
	// side.
	DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error
}

type conceptConceptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConceptConceptRepo(db *gorm.DB, baseLog *logger.Logger) ConceptConceptRepo {
	return &conceptConceptRepo{db: db, log: baseLog.With("repo", "ConceptConceptRepo")}
}

func (r *conceptConceptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ConceptConcept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *conceptConceptRepo) GetPair(ctx context.Context, tx *gorm.DB, fromID, toID uint) (*types.ConceptConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if fromID == 0 || toID == 0 {
		return nil, nil
	}
	var out []*types.ConceptConcept
	if err := t.WithContext(ctx).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *conceptConceptRepo) ListFrom(ctx context.Context, tx *gorm.DB, fromID uint) ([]*types.ConceptConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ConceptConcept
	if fromID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("from_id = ?", fromID).
		Order("to_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *conceptConceptRepo) DeletePair(ctx context.Context, tx *gorm.DB, fromID, toID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Delete(&types.ConceptConcept{}).Error
}

func (r *conceptConceptRepo) DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if conceptID == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", conceptID, conceptID).
		Delete(&types.ConceptConcept{}).Error
}
