package user

import (
	"context"

	"gorm.io/gorm"

	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type TeacherRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Teacher) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Teacher, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Teacher, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Teacher, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Teacher) error
}

type teacherRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeacherRepo(db *gorm.DB, baseLog *logger.Logger) TeacherRepo {
	return &teacherRepo{db: db, log: baseLog.With("repo", "TeacherRepo")}
}

func (r *teacherRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Teacher) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Teacher, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == 0 {
		return nil, nil
	}
	var out []*types.Teacher
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *teacherRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Teacher, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if email == "" {
		return nil, nil
	}
	var out []*types.Teacher
	if err := t.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *teacherRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Teacher, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Teacher
	if err := t.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *teacherRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Teacher) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Save(row).Error
}
