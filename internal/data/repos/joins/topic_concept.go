package joins

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type TopicConceptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.TopicConcept) error
	GetPair(ctx context.Context, tx *gorm.DB, topicID, conceptID uint) (*types.TopicConcept, error)
	ListByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.TopicConcept, error)
	MaxOrder(ctx context.Context, tx *gorm.DB, topicID uint) (int, error)
	OrderTaken(ctx context.Context, tx *gorm.DB, topicID uint, orderID int) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.TopicConcept) error
	DeletePair(ctx context.Context, tx *gorm.DB, topicID, conceptID uint) error
	DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error
	DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error
}

type topicConceptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicConceptRepo(db *gorm.DB, baseLog *logger.Logger) TopicConceptRepo {
	return &topicConceptRepo{db: db, log: baseLog.With("repo", "TopicConceptRepo")}
}

func (r *topicConceptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.TopicConcept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *topicConceptRepo) GetPair(ctx context.Context, tx *gorm.DB, topicID, conceptID uint) (*types.TopicConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if topicID == 0 || conceptID == 0 {
		return nil, nil
	}
	var out []*types.TopicConcept
	if err := t.WithContext(ctx).
		Where("topic_id = ? AND concept_id = ?", topicID, conceptID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *topicConceptRepo) ListByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.TopicConcept, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.TopicConcept
	if topicID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("order_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicConceptRepo) MaxOrder(ctx context.Context, tx *gorm.DB, topicID uint) (int, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var max int
	if err := t.WithContext(ctx).
		Model(&types.TopicConcept{}).
		Where("topic_id = ?", topicID).
		Select("COALESCE(MAX(order_id), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *topicConceptRepo) OrderTaken(ctx context.Context, tx *gorm.DB, topicID uint, orderID int) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(ctx).
		Model(&types.TopicConcept{}).
		Where("topic_id = ? AND order_id = ?", topicID, orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *topicConceptRepo) Save(ctx context.Context, tx *gorm.DB, row *types.TopicConcept) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *topicConceptRepo) DeletePair(ctx context.Context, tx *gorm.DB, topicID, conceptID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("topic_id = ? AND concept_id = ?", topicID, conceptID).
		Delete(&types.TopicConcept{}).Error
}

func (r *topicConceptRepo) DeleteByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if topicID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("topic_id = ?", topicID).Delete(&types.TopicConcept{}).Error
}

func (r *topicConceptRepo) DeleteByConceptID(ctx context.Context, tx *gorm.DB, conceptID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if conceptID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("concept_id = ?", conceptID).Delete(&types.TopicConcept{}).Error
}
