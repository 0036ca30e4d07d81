package exams

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Question) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Question, error)
	ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Question, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Question) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error

	// ListPoolByTopicIDs returns the deduplicated assembly pool: approved,
	// non-retired questions linked to any of the topics. With requireAnswers
	// set, questions without at least one live answer are excluded.
	ListPoolByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uint, requireAnswers bool) ([]*types.Question, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Question) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Question
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *questionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Question, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Question
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Question, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Question
	if err := t.WithContext(ctx).
		Where("retired = ?", false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Question) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *questionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Question{}).Error
}

func (r *questionRepo) ListPoolByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uint, requireAnswers bool) ([]*types.Question, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Question
	if len(topicIDs) == 0 {
		return out, nil
	}
	q := t.WithContext(ctx).
		Model(&types.Question{}).
		Distinct("question.*").
		Joins("JOIN question_topic qt ON qt.question_id = question.id").
		Where("qt.topic_id IN ?", topicIDs).
		Where("question.approved = ? AND question.retired = ?", true, false)
	if requireAnswers {
		q = q.Where("EXISTS (SELECT 1 FROM answer a WHERE a.question_id = question.id AND a.retired = ?)", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
