package exams

import (
	"context"
	"time"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type GroupQuestionStatRepo interface {
	GetByPair(ctx context.Context, tx *gorm.DB, groupID, questionID uint) (*types.GroupQuestionStat, error)
	ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.GroupQuestionStat, error)

	// EnsureRow creates the zero-counter row for the pair when it does not
	// exist yet.
	EnsureRow(ctx context.Context, tx *gorm.DB, groupID, questionID uint) error

	// Increment bumps evaluation_count by one and, when correct, also
	// correct_count, as a single in-database update so concurrent
	// evaluations never lose a count.
	Increment(ctx context.Context, tx *gorm.DB, groupID, questionID uint, correct bool) error

	DeleteByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) error
	DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error
}

type groupQuestionStatRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGroupQuestionStatRepo(db *gorm.DB, baseLog *logger.Logger) GroupQuestionStatRepo {
	return &groupQuestionStatRepo{db: db, log: baseLog.With("repo", "GroupQuestionStatRepo")}
}

func (r *groupQuestionStatRepo) GetByPair(ctx context.Context, tx *gorm.DB, groupID, questionID uint) (*types.GroupQuestionStat, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if groupID == 0 || questionID == 0 {
		return nil, nil
	}
	var out []*types.GroupQuestionStat
	if err := t.WithContext(ctx).
		Where("group_id = ? AND question_id = ?", groupID, questionID).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *groupQuestionStatRepo) ListByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) ([]*types.GroupQuestionStat, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.GroupQuestionStat
	if groupID == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("question_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *groupQuestionStatRepo) EnsureRow(ctx context.Context, tx *gorm.DB, groupID, questionID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if groupID == 0 || questionID == 0 {
		return nil
	}
	row := &types.GroupQuestionStat{GroupID: groupID, QuestionID: questionID}
	return t.WithContext(ctx).
		Where("group_id = ? AND question_id = ?", groupID, questionID).
		FirstOrCreate(row).Error
}

func (r *groupQuestionStatRepo) Increment(ctx context.Context, tx *gorm.DB, groupID, questionID uint, correct bool) error {
	t := tx
	if t == nil {
		t = r.db
	}
	updates := map[string]interface{}{
		"evaluation_count": gorm.Expr("evaluation_count + 1"),
		"updated_at":       time.Now().UTC(),
	}
	if correct {
		updates["correct_count"] = gorm.Expr("correct_count + 1")
	}
	res := t.WithContext(ctx).
		Model(&types.GroupQuestionStat{}).
		Where("group_id = ? AND question_id = ?", groupID, questionID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groupQuestionStatRepo) DeleteByGroupID(ctx context.Context, tx *gorm.DB, groupID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if groupID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("group_id = ?", groupID).Delete(&types.GroupQuestionStat{}).Error
}

func (r *groupQuestionStatRepo) DeleteByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if questionID == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("question_id = ?", questionID).Delete(&types.GroupQuestionStat{}).Error
}
