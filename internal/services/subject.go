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

// SubjectUpdate carries the fields of an update request; nil means "leave as
// is".
type SubjectUpdate struct {
	NameEs *string
	NameEn *string
}

type SubjectService interface {
	Create(ctx context.Context, nameEs, nameEn string) (*types.Subject, error)
	Get(ctx context.Context, id uint) (*types.Subject, error)
	List(ctx context.Context) ([]*types.Subject, error)
	Update(ctx context.Context, id uint, upd SubjectUpdate) (*types.Subject, error)
	Delete(ctx context.Context, id uint) error
}

type subjectService struct {
	db               *gorm.DB
	log              *logger.Logger
	subjectRepo      repos.SubjectRepo
	subjectTopicRepo repos.SubjectTopicRepo
	changeRepo       repos.SubjectChangeRepo
}

func NewSubjectService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	subjectTopicRepo repos.SubjectTopicRepo,
	changeRepo repos.SubjectChangeRepo,
) SubjectService {
	return &subjectService{
		db:               db,
		log:              baseLog.With("service", "SubjectService"),
		subjectRepo:      subjectRepo,
		subjectTopicRepo: subjectTopicRepo,
		changeRepo:       changeRepo,
	}
}

func (s *subjectService) Create(ctx context.Context, nameEs, nameEn string) (*types.Subject, error) {
	if nameEs == "" && nameEn == "" {
		return nil, apperr.Validation("subject name required in at least one language")
	}

	row := &types.Subject{NameEs: nameEs, NameEn: nameEn}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.subjectRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create subject: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *subjectService) Get(ctx context.Context, id uint) (*types.Subject, error) {
	row, err := s.subjectRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load subject: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("subject", id)
	}
	return row, nil
}

func (s *subjectService) List(ctx context.Context) ([]*types.Subject, error) {
	return s.subjectRepo.ListLive(ctx, nil)
}

func (s *subjectService) Update(ctx context.Context, id uint, upd SubjectUpdate) (*types.Subject, error) {
	var out *types.Subject
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.subjectRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load subject: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("subject", id)
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
			return apperr.Validation("subject name required in at least one language")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.subjectRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot subject: %w", err)
		}

		live.NameEs = nameEs
		live.NameEn = nameEn
		if err := s.subjectRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save subject: %w", err)
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

func (s *subjectService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.subjectRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load subject: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("subject", id)
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.subjectRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot subject: %w", err)
		}

		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}

		if err := s.subjectTopicRepo.DeleteBySubjectID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink subject topics: %w", err)
		}
		if err := s.subjectRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete subject: %w", err)
		}
		return nil
	})
}

func (s *subjectService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.SubjectChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append subject change: %w", err)
	}
	return nil
}
