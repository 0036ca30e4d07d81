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

type TopicUpdate struct {
	TitleEs *string
	TitleEn *string
}

type TopicService interface {
	Create(ctx context.Context, titleEs, titleEn string) (*types.Topic, error)
	Get(ctx context.Context, id uint) (*types.Topic, error)
	List(ctx context.Context) ([]*types.Topic, error)
	Update(ctx context.Context, id uint, upd TopicUpdate) (*types.Topic, error)
	Delete(ctx context.Context, id uint) error
}

type topicService struct {
	db                 *gorm.DB
	log                *logger.Logger
	topicRepo          repos.TopicRepo
	epigraphRepo       repos.EpigraphRepo
	topicConceptRepo   repos.TopicConceptRepo
	subjectTopicRepo   repos.SubjectTopicRepo
	questionTopicRepo  repos.QuestionTopicRepo
	changeRepo         repos.TopicChangeRepo
	epigraphChangeRepo repos.EpigraphChangeRepo
}

func NewTopicService(
	db *gorm.DB,
	baseLog *logger.Logger,
	topicRepo repos.TopicRepo,
	epigraphRepo repos.EpigraphRepo,
	topicConceptRepo repos.TopicConceptRepo,
	subjectTopicRepo repos.SubjectTopicRepo,
	questionTopicRepo repos.QuestionTopicRepo,
	changeRepo repos.TopicChangeRepo,
	epigraphChangeRepo repos.EpigraphChangeRepo,
) TopicService {
	return &topicService{
		db:                 db,
		log:                baseLog.With("service", "TopicService"),
		topicRepo:          topicRepo,
		epigraphRepo:       epigraphRepo,
		topicConceptRepo:   topicConceptRepo,
		subjectTopicRepo:   subjectTopicRepo,
		questionTopicRepo:  questionTopicRepo,
		changeRepo:         changeRepo,
		epigraphChangeRepo: epigraphChangeRepo,
	}
}

func (s *topicService) Create(ctx context.Context, titleEs, titleEn string) (*types.Topic, error) {
	if titleEs == "" && titleEn == "" {
		return nil, apperr.Validation("topic title required in at least one language")
	}

	row := &types.Topic{TitleEs: titleEs, TitleEn: titleEn}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.topicRepo.ActiveTitleExists(ctx, tx, titleEs, titleEn, 0)
		if err != nil {
			return fmt.Errorf("check topic title: %w", err)
		}
		if taken {
			return apperr.Validation("topic title already in use")
		}
		if err := s.topicRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create topic: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *topicService) Get(ctx context.Context, id uint) (*types.Topic, error) {
	row, err := s.topicRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("topic", id)
	}
	return row, nil
}

func (s *topicService) List(ctx context.Context) ([]*types.Topic, error) {
	return s.topicRepo.ListLive(ctx, nil)
}

func (s *topicService) Update(ctx context.Context, id uint, upd TopicUpdate) (*types.Topic, error) {
	var out *types.Topic
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.topicRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load topic: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("topic", id)
		}

		titleEs := live.TitleEs
		titleEn := live.TitleEn
		if upd.TitleEs != nil {
			titleEs = *upd.TitleEs
		}
		if upd.TitleEn != nil {
			titleEn = *upd.TitleEn
		}
		if titleEs == "" && titleEn == "" {
			return apperr.Validation("topic title required in at least one language")
		}

		taken, err := s.topicRepo.ActiveTitleExists(ctx, tx, titleEs, titleEn, live.ID)
		if err != nil {
			return fmt.Errorf("check topic title: %w", err)
		}
		if taken {
			return apperr.Validation("topic title already in use")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.topicRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot topic: %w", err)
		}

		live.TitleEs = titleEs
		live.TitleEn = titleEn
		if err := s.topicRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save topic: %w", err)
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

func (s *topicService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.topicRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load topic: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("topic", id)
		}

		// Epigraphs go down with their topic, each with its own audit trail.
		epigraphs, err := s.epigraphRepo.ListLiveByTopicID(ctx, tx, live.ID)
		if err != nil {
			return fmt.Errorf("list topic epigraphs: %w", err)
		}
		for _, e := range epigraphs {
			ec := *e
			ec.ID = 0
			ec.Retired = true
			if err := s.epigraphRepo.Create(ctx, tx, &ec); err != nil {
				return fmt.Errorf("snapshot epigraph: %w", err)
			}
			rec := &types.EpigraphChange{
				EntityID:  e.ID,
				PrevID:    history.Ptr(ec.ID),
				TeacherID: history.Actor(ctx),
			}
			if err := s.epigraphChangeRepo.Append(ctx, tx, rec); err != nil {
				return fmt.Errorf("append epigraph change: %w", err)
			}
			if err := s.epigraphRepo.DeleteByID(ctx, tx, e.ID); err != nil {
				return fmt.Errorf("delete epigraph: %w", err)
			}
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.topicRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot topic: %w", err)
		}
		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}

		if err := s.topicConceptRepo.DeleteByTopicID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink topic concepts: %w", err)
		}
		if err := s.subjectTopicRepo.DeleteByTopicID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink topic subjects: %w", err)
		}
		if err := s.questionTopicRepo.DeleteByTopicID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink topic questions: %w", err)
		}
		if err := s.topicRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete topic: %w", err)
		}
		return nil
	})
}

func (s *topicService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.TopicChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append topic change: %w", err)
	}
	return nil
}
