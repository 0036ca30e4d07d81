package joins

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type QuestionTopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.QuestionTopic) error
	GetPair(ctx context.Context, tx *gorm.DB, questionID, topicID uint) (*types.QuestionTopic, error)
	ListByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuestionTopic, error)
	ListByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.QuestionTopic, error)
	DeletePair(ctx context.Context, tx *gorm.DB, questionID, topicID uint) error
	DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error
	DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error
}

type questionTopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionTopicRepo(db *gorm.DB, baseLog *logger.Logger) QuestionTopicRepo {
	return &questionTopicRepo{db: db, log: baseLog.With("repo", "QuestionTopicRepo")}
}

func (r *questionTopicRepo) Create(ctx context.Context, tx *gorm.DB, row *types.QuestionTopic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *questionTopicRepo) GetPair(ctx context.Context, tx *gorm.DB, questionID, topicID uint) (*types.QuestionTopic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 || topicID == 0 {
		return nil, nil
	}
	var out []*types.QuestionTopic
	if err := t.WithContext(ctx).
		Where("question_id = ? AND topic_id = ?", questionID, topicID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *questionTopicRepo) ListByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuestionTopic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.QuestionTopic
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

func (r *questionTopicRepo) ListByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.QuestionTopic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.QuestionTopic
	if topicID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionTopicRepo) DeletePair(ctx context.Context, tx *gorm.DB, questionID, topicID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("question_id = ? AND topic_id = ?", questionID, topicID).
		Delete(&types.QuestionTopic{}).Error
}

func (r *questionTopicRepo) DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("question_id = ?", questionID).Delete(&types.QuestionTopic{}).Error
}

func (r *questionTopicRepo) DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if topicID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("topic_id = ?", topicID).Delete(&types.QuestionTopic{}).Error
}
