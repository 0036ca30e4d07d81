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

type ConceptUpdate struct {
	NameEs        *string
	NameEn        *string
	DescriptionEs *string
	DescriptionEn *string
}

type ConceptService interface {
	Create(ctx context.Context, nameEs, nameEn, descriptionEs, descriptionEn string) (*types.Concept, error)
	Get(ctx context.Context, id uint) (*types.Concept, error)
	List(ctx context.Context) ([]*types.Concept, error)
	Update(ctx context.Context, id uint, upd ConceptUpdate) (*types.Concept, error)
	Delete(ctx context.Context, id uint) error
}

type conceptService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	conceptRepo         repos.ConceptRepo
	topicConceptRepo    repos.TopicConceptRepo
	questionConceptRepo repos.QuestionConceptRepo
	conceptConceptRepo  repos.ConceptConceptRepo
	changeRepo          repos.ConceptChangeRepo
}

func NewConceptService(
	db *gorm.DB,
	baseLog *logger.Logger,
	conceptRepo repos.ConceptRepo,
	topicConceptRepo repos.TopicConceptRepo,
	questionConceptRepo repos.QuestionConceptRepo,
	conceptConceptRepo repos.ConceptConceptRepo,
	changeRepo repos.ConceptChangeRepo,
) ConceptService {
	return &conceptService{
		db:                  db,
		log:                 baseLog.With("service", "ConceptService"),
		conceptRepo:         conceptRepo,
		topicConceptRepo:    topicConceptRepo,
		questionConceptRepo: questionConceptRepo,
		conceptConceptRepo:  conceptConceptRepo,
		changeRepo:          changeRepo,
	}
}

func (s *conceptService) Create(ctx context.Context, nameEs, nameEn, descriptionEs, descriptionEn string) (*types.Concept, error) {
	if nameEs == "" && nameEn == "" {
		return nil, apperr.Validation("concept name required in at least one language")
	}

	row := &types.Concept{
		NameEs:        nameEs,
		NameEn:        nameEn,
		DescriptionEs: descriptionEs,
		DescriptionEn: descriptionEn,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.conceptRepo.ActiveNameExists(ctx, tx, nameEs, nameEn, 0)
		if err != nil {
			return fmt.Errorf("check concept name: %w", err)
		}
		if taken {
			return apperr.Validation("concept name already in use")
		}
		if err := s.conceptRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create concept: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *conceptService) Get(ctx context.Context, id uint) (*types.Concept, error) {
	row, err := s.conceptRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load concept: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("concept", id)
	}
	return row, nil
}

func (s *conceptService) List(ctx context.Context) ([]*types.Concept, error) {
	return s.conceptRepo.ListLive(ctx, nil)
}

func (s *conceptService) Update(ctx context.Context, id uint, upd ConceptUpdate) (*types.Concept, error) {
	var out *types.Concept
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.conceptRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load concept: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("concept", id)
		}

		nameEs := live.NameEs
		nameEn := live.NameEn
		descriptionEs := live.DescriptionEs
		descriptionEn := live.DescriptionEn
		if upd.NameEs != nil {
			nameEs = *upd.NameEs
		}
		if upd.NameEn != nil {
			nameEn = *upd.NameEn
		}
		if upd.DescriptionEs != nil {
			descriptionEs = *upd.DescriptionEs
		}
		if upd.DescriptionEn != nil {
			descriptionEn = *upd.DescriptionEn
		}
		if nameEs == "" && nameEn == "" {
			return apperr.Validation("concept name required in at least one language")
		}

		taken, err := s.conceptRepo.ActiveNameExists(ctx, tx, nameEs, nameEn, live.ID)
		if err != nil {
			return fmt.Errorf("check concept name: %w", err)
		}
		if taken {
			return apperr.Validation("concept name already in use")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.conceptRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot concept: %w", err)
		}

		live.NameEs = nameEs
		live.NameEn = nameEn
		live.DescriptionEs = descriptionEs
		live.DescriptionEn = descriptionEn
		if err := s.conceptRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save concept: %w", err)
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

func (s *conceptService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.conceptRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load concept: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("concept", id)
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.conceptRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot concept: %w", err)
		}
		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}

		if err := s.topicConceptRepo.DeleteByConceptID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink concept topics: %w", err)
		}
		if err := s.questionConceptRepo.DeleteByConceptID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink concept questions: %w", err)
		}
		if err := s.conceptConceptRepo.DeleteByConceptID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink concept edges: %w", err)
		}
		if err := s.conceptRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete concept: %w", err)
		}
		return nil
	})
}

func (s *conceptService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.ConceptChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append concept change: %w", err)
	}
	return nil
}
