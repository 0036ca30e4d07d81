package joins

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type QuestionConceptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.QuestionConcept) error
	GetPair(ctx context.Context, tx *gorm.DB, questionID, conceptID uint) (*types.QuestionConcept, error)
	ListByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuestionConcept, error)
	DeletePair(ctx context.Context, tx *gorm.DB, questionID, conceptID uint) error
	DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error
	DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error
}

type questionConceptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionConceptRepo(db *gorm.DB, baseLog *logger.Logger) QuestionConceptRepo {
	return &questionConceptRepo{db: db, log: baseLog.With("repo", "QuestionConceptRepo")}
}

func (r *questionConceptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.QuestionConcept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *questionConceptRepo) GetPair(ctx context.Context, tx *gorm.DB, questionID, conceptID uint) (*types.QuestionConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 || conceptID == 0 {
		return nil, nil
	}
	var out []*types.QuestionConcept
	if err := t.WithContext(ctx).
		Where("question_id = ? AND concept_id = ?", questionID, conceptID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *questionConceptRepo) ListByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuestionConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.QuestionConcept
	if questionID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("question_id = ?", questionID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionConceptRepo) DeletePair(ctx context.Context, tx *gorm.DB, questionID, conceptID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("question_id = ? AND concept_id = ?", questionID, conceptID).
		Delete(&types.QuestionConcept{}).Error
}

func (r *questionConceptRepo) DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("question_id = ?", questionID).Delete(&types.QuestionConcept{}).Error
}

func (r *questionConceptRepo) DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if conceptID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("concept_id = ?", conceptID).Delete(&types.QuestionConcept{}).Error
}
