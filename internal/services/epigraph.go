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

type EpigraphUpdate struct {
	TitleEs *string
	TitleEn *string
	BodyEs  *string
	BodyEn  *string
}

type EpigraphService interface {
	Create(ctx context.Context, topicID uint, titleEs, titleEn, bodyEs, bodyEn string) (*types.Epigraph, error)
	Get(ctx context.Context, id uint) (*types.Epigraph, error)
	ListByTopic(ctx context.Context, topicID uint) ([]*types.Epigraph, error)
	Update(ctx context.Context, id uint, upd EpigraphUpdate) (*types.Epigraph, error)
	Delete(ctx context.Context, id uint) error
}

type epigraphService struct {
	db           *gorm.DB
	log          *logger.Logger
	epigraphRepo repos.EpigraphRepo
	topicRepo    repos.TopicRepo
	changeRepo   repos.EpigraphChangeRepo
}

func NewEpigraphService(
	db *gorm.DB,
	baseLog *logger.Logger,
	epigraphRepo repos.EpigraphRepo,
	topicRepo repos.TopicRepo,
	changeRepo repos.EpigraphChangeRepo,
) EpigraphService {
	return &epigraphService{
		db:           db,
		log:          baseLog.With("service", "EpigraphService"),
		epigraphRepo: epigraphRepo,
		topicRepo:    topicRepo,
		changeRepo:   changeRepo,
	}
}

func (s *epigraphService) Create(ctx context.Context, topicID uint, titleEs, titleEn, bodyEs, bodyEn string) (*types.Epigraph, error) {
	if titleEs == "" && titleEn == "" {
		return nil, apperr.Validation("epigraph title required in at least one language")
	}

	row := &types.Epigraph{
		TopicID: topicID,
		TitleEs: titleEs,
		TitleEn: titleEn,
		BodyEs:  bodyEs,
		BodyEn:  bodyEn,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic, err := s.topicRepo.GetByID(ctx, tx, topicID)
		if err != nil {
			return fmt.Errorf("load topic: %w", err)
		}
		if topic == nil || topic.Retired {
			return apperr.NotFound("topic", topicID)
		}

		// Append at the end of the topic's section list.
		siblings, err := s.epigraphRepo.ListLiveByTopicID(ctx, tx, topicID)
		if err != nil {
			return fmt.Errorf("list topic epigraphs: %w", err)
		}
		next := 1
		for _, e := range siblings {
			if e.OrderID >= next {
				next = e.OrderID + 1
			}
		}
		row.OrderID = next

		if err := s.epigraphRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create epigraph: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *epigraphService) Get(ctx context.Context, id uint) (*types.Epigraph, error) {
	row, err := s.epigraphRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load epigraph: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("epigraph", id)
	}
	return row, nil
}

func (s *epigraphService) ListByTopic(ctx context.Context, topicID uint) ([]*types.Epigraph, error) {
	return s.epigraphRepo.ListLiveByTopicID(ctx, nil, topicID)
}

func (s *epigraphService) Update(ctx context.Context, id uint, upd EpigraphUpdate) (*types.Epigraph, error) {
	var out *types.Epigraph
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.epigraphRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load epigraph: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("epigraph", id)
		}

		titleEs := live.TitleEs
		titleEn := live.TitleEn
		bodyEs := live.BodyEs
		bodyEn := live.BodyEn
		if upd.TitleEs != nil {
			titleEs = *upd.TitleEs
		}
		if upd.TitleEn != nil {
			titleEn = *upd.TitleEn
		}
		if upd.BodyEs != nil {
			bodyEs = *upd.BodyEs
		}
		if upd.BodyEn != nil {
			bodyEn = *upd.BodyEn
		}
		if titleEs == "" && titleEn == "" {
			return apperr.Validation("epigraph title required in at least one language")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.epigraphRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot epigraph: %w", err)
		}

		live.TitleEs = titleEs
		live.TitleEn = titleEn
		live.BodyEs = bodyEs
		live.BodyEn = bodyEn
		if err := s.epigraphRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save epigraph: %w", err)
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

func (s *epigraphService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.epigraphRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load epigraph: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("epigraph", id)
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.epigraphRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot epigraph: %w", err)
		}
		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}
		if err := s.epigraphRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete epigraph: %w", err)
		}
		return nil
	})
}

func (s *epigraphService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.EpigraphChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append epigraph change: %w", err)
	}
	return nil
}
