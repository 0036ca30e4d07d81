package catalog

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type EpigraphRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Epigraph) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Epigraph, error)
	ListLiveByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.Epigraph, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Epigraph) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error
}

type epigraphRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEpigraphRepo(db *gorm.DB, baseLog *logger.Logger) EpigraphRepo {
	return &epigraphRepo{db: db, log: baseLog.With("repo", "EpigraphRepo")}
}

func (r *epigraphRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Epigraph) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *epigraphRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Epigraph, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Epigraph
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *epigraphRepo) ListLiveByTopicID(ctx context.Context, tx *gorm.DB, topicID uint) ([]*types.Epigraph, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Epigraph
	if topicID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("topic_id = ? AND retired = ?", topicID, false).
		Order("order_id ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *epigraphRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Epigraph) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *epigraphRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Epigraph{}).Error
}
