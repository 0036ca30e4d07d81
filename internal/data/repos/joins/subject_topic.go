package joins

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type SubjectTopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.SubjectTopic) error
	GetPair(ctx context.Context, tx *gorm.DB, subjectID, topicID uint) (*types.SubjectTopic, error)
	ListBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) ([]*types.SubjectTopic, error)
	MaxOrder(ctx context.Context, tx *gorm.DB, subjectID uint) (int, error)
	OrderTaken(ctx context.Context, tx *gorm.DB, subjectID uint, orderID int) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.SubjectTopic) error
	DeletePair(ctx context.Context, tx *gorm.DB, subjectID, topicID uint) error
	DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error
	DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error
}

type subjectTopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectTopicRepo(db *gorm.DB, baseLog *logger.Logger) SubjectTopicRepo {
	return &subjectTopicRepo{db: db, log: baseLog.With("repo", "SubjectTopicRepo")}
}

func (r *subjectTopicRepo) Create(ctx context.Context, tx *gorm.DB, row *types.SubjectTopic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *subjectTopicRepo) GetPair(ctx context.Context, tx *gorm.DB, subjectID, topicID uint) (*types.SubjectTopic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if subjectID == 0 || topicID == 0 {
		return nil, nil
	}
	var out []*types.SubjectTopic
	if err := t.WithContext(ctx).
		Where("subject_id = ? AND topic_id = ?", subjectID, topicID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *subjectTopicRepo) ListBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) ([]*types.SubjectTopic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.SubjectTopic
	if subjectID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("order_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subjectTopicRepo) MaxOrder(ctx context.Context, tx *gorm.DB, subjectID uint) (int, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var max int
	if err := t.WithContext(ctx).
		Model(&types.SubjectTopic{}).
		Where("subject_id = ?", subjectID).
		Select("COALESCE(MAX(order_id), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *subjectTopicRepo) OrderTaken(ctx context.Context, tx *gorm.DB, subjectID uint, orderID int) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.SubjectTopic{}).
		Where("subject_id = ? AND order_id = ?", subjectID, orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *subjectTopicRepo) Save(ctx context.Context, tx *gorm.DB, row *types.SubjectTopic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *subjectTopicRepo) DeletePair(ctx context.Context, tx *gorm.DB, subjectID, topicID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("subject_id = ? AND topic_id = ?", subjectID, topicID).
		Delete(&types.SubjectTopic{}).Error
}

func (r *subjectTopicRepo) DeleteBySubjectID(ctx context.Context, tx *gorm.DB, subjectID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if subjectID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("subject_id = ?", subjectID).Delete(&types.SubjectTopic{}).Error
}

func (r *subjectTopicRepo) DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if topicID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("topic_id = ?", topicID).Delete(&types.SubjectTopic{}).Error
}
