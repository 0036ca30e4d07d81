package exams

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type AnswerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Answer) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Answer, error)
	ListLiveByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.Answer, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Answer) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error
}

type answerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return &answerRepo{db: db, log: baseLog.With("repo", "AnswerRepo")}
}

func (r *answerRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Answer) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *answerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Answer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Answer
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *answerRepo) ListLiveByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.Answer, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Answer
	if questionID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("question_id = ? AND retired = ?", questionID, false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *answerRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Answer) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *answerRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Answer{}).Error
}

func (r *answerRepo) DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("question_id = ?", questionID).Delete(&types.Answer{}).Error
}
