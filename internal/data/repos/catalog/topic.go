package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type TopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Topic) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Topic, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Topic, error)
	ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Topic, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Topic) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error

	// ActiveTitleExists reports whether any live row other than excludeID
	// already uses either non-empty language variant of the title.
	ActiveTitleExists(ctx context.Context, tx *gorm.DB, titleEs, titleEn string, excludeID uint) (bool, error)
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return &topicRepo{db: db, log: baseLog.With("repo", "TopicRepo")}
}

func (r *topicRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Topic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *topicRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Topic
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *topicRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Topic
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicRepo) ListLive(ctx context.Context, tx *gorm.DB) ([]*types.Topic, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Topic
	if err := t.WithContext(ctx).
		Where("retired = ?", false).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Topic) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *topicRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Topic{}).Error
}

func (r *topicRepo) ActiveTitleExists(ctx context.Context, tx *gorm.DB, titleEs, titleEn string, excludeID uint) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var count int64
	q := t.WithContext(ctx).
		Model(&types.Topic{}).
		Where("retired = ?", false).
		Where("id <> ?", excludeID).
		Where(
			t.Session(&gorm.Session{NewDB: true}).
				Where("title_es <> '' AND title_es = ?", titleEs).
				Or("title_en <> '' AND title_en = ?", titleEn),
		)
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
