package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/history"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type StudentGroupUpdate struct {
	NameEs *string
	NameEn *string
}

type StudentGroupService interface {
	Create(ctx context.Context, nameEs, nameEn string) (*types.StudentGroup, error)
	Get(ctx context.Context, id uint) (*types.StudentGroup, error)
	List(ctx context.Context) ([]*types.StudentGroup, error)
	Update(ctx context.Context, id uint, upd StudentGroupUpdate) (*types.StudentGroup, error)
	Delete(ctx context.Context, id uint) error
}

type studentGroupService struct {
	db         *gorm.DB
	log        *logger.Logger
	groupRepo  repos.StudentGroupRepo
	statRepo   repos.GroupQuestionStatRepo
	examRepo   repos.ExamRepo
	changeRepo repos.StudentGroupChangeRepo
}

func NewStudentGroupService(
	db *gorm.DB,
	baseLog *logger.Logger,
	groupRepo repos.StudentGroupRepo,
	statRepo repos.GroupQuestionStatRepo,
	examRepo repos.ExamRepo,
	changeRepo repos.StudentGroupChangeRepo,
) StudentGroupService {
	return &studentGroupService{
		db:         db,
		log:        baseLog.With("service", "StudentGroupService"),
		groupRepo:  groupRepo,
		statRepo:   statRepo,
		examRepo:   examRepo,
		changeRepo: changeRepo,
	}
}

func (s *studentGroupService) Create(ctx context.Context, nameEs, nameEn string) (*types.StudentGroup, error) {
	if nameEs == "" && nameEn == "" {
		return nil, apperr.Validation("group name required in at least one language")
	}

	row := &types.StudentGroup{NameEs: nameEs, NameEn: nameEn}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.groupRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *studentGroupService) Get(ctx context.Context, id uint) (*types.StudentGroup, error) {
	row, err := s.groupRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load group: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("group", id)
	}
	return row, nil
}

func (s *studentGroupService) List(ctx context.Context) ([]*types.StudentGroup, error) {
	return s.groupRepo.ListLive(ctx, nil)
}

func (s *studentGroupService) Update(ctx context.Context, id uint, upd StudentGroupUpdate) (*types.StudentGroup, error) {
	var out *types.StudentGroup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.groupRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load group: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("group", id)
		}

		nameEs := live.NameEs
		nameEn := live.NameEn
		if upd.NameEs != nil {
			nameEs = *upd.NameEs
		}
		if upd.NameEn != nil {
			nameEn = *upd.NameEn
		}
		if nameEs == "" && nameEn == "" {
			return apperr.Validation("group name required in at least one language")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.groupRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot group: %w", err)
		}

		live.NameEs = nameEs
		live.NameEn = nameEn
		if err := s.groupRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save group: %w", err)
		}

		if err := s.appendChange(ctx, tx, live.ID, history.Updated(clone.ID, live.ID)); err != nil {
			return err
		}
		out = live
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *studentGroupService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.groupRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load group: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("group", id)
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.groupRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot group: %w", err)
		}

		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}

		if err := s.statRepo.DeleteByGroupID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete group stats: %w", err)
		}
		if err := s.examRepo.DeleteByGroupID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete group exams: %w", err)
		}
		if err := s.groupRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
}

func (s *studentGroupService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.StudentGroupChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append group change: %w", err)
	}
	return nil
}
