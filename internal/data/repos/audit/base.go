// Package audit provides the persistence layer for change records. All
// seven change tables share one shape, so a single generic repository
// serves them; the element type selects the table.
package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

// ChangeRepo appends and reads the change log for one entity kind.
// Records are append-only: there is no update method, and the only
// delete is the retention purge.
type ChangeRepo[T any] interface {
	Append(ctx context.Context, tx *gorm.DB, row *T) error
	ListByEntityID(ctx context.Context, tx *gorm.DB, entityID uint) ([]*T, error)
	Latest(ctx context.Context, tx *gorm.DB, entityID uint) (*T, error)
	List(ctx context.Context, tx *gorm.DB) ([]*T, error)
	PurgeOlderThan(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error)
}

type changeRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func newChangeRepo[T any](db *gorm.DB, baseLog *logger.Logger, name string) ChangeRepo[T] {
	return &changeRepo[T]{db: db, log: baseLog.With("repo", name)}
}

func NewSubjectChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.SubjectChange] {
	return newChangeRepo[types.SubjectChange](db, baseLog, "SubjectChangeRepo")
}

func NewStudentGroupChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.StudentGroupChange] {
	return newChangeRepo[types.StudentGroupChange](db, baseLog, "StudentGroupChangeRepo")
}

func NewTopicChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.TopicChange] {
	return newChangeRepo[types.TopicChange](db, baseLog, "TopicChangeRepo")
}

func NewConceptChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.ConceptChange] {
	return newChangeRepo[types.ConceptChange](db, baseLog, "ConceptChangeRepo")
}

func NewEpigraphChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.EpigraphChange] {
	return newChangeRepo[types.EpigraphChange](db, baseLog, "EpigraphChangeRepo")
}

func NewQuestionChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.QuestionChange] {
	return newChangeRepo[types.QuestionChange](db, baseLog, "QuestionChangeRepo")
}

func NewAnswerChangeRepo(db *gorm.DB, baseLog *logger.Logger) ChangeRepo[types.AnswerChange] {
	return newChangeRepo[types.AnswerChange](db, baseLog, "AnswerChangeRepo")
}

func (r *changeRepo[T]) Append(ctx context.Context, tx *gorm.DB, row *T) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *changeRepo[T]) ListByEntityID(ctx context.Context, tx *gorm.DB, entityID uint) ([]*T, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*T
	if entityID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *changeRepo[T]) Latest(ctx context.Context, tx *gorm.DB, entityID uint) (*T, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if entityID == 0 {
		return nil, nil
	}
	var out []*T
	if err := t.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *changeRepo[T]) List(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*T
	if err := t.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *changeRepo[T]) PurgeOlderThan(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var model T
	res := t.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
