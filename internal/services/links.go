package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

// tempOrder parks a row's order slot mid-swap so the (parent, order) unique
// index never sees a duplicate.
const tempOrder = 1 << 30

// LinkService manages the relationship ledger: ordered topic-concept and
// subject-topic lists, question tagging, and directional concept-to-concept
// edges.
type LinkService interface {
	LinkConceptToTopic(ctx context.Context, topicID, conceptID uint, orderID int) (*types.TopicConcept, error)
	UnlinkConceptFromTopic(ctx context.Context, topicID, conceptID uint) error
	NextConceptOrder(ctx context.Context, topicID uint) (int, error)
	SwapConceptOrder(ctx context.Context, topicID, conceptAID, conceptBID uint) error
	ListTopicConcepts(ctx context.Context, topicID uint) ([]*types.TopicConcept, error)

	LinkTopicToSubject(ctx context.Context, subjectID, topicID uint, orderID int) (*types.SubjectTopic, error)
	UnlinkTopicFromSubject(ctx context.Context, subjectID, topicID uint) error
	NextTopicOrder(ctx context.Context, subjectID uint) (int, error)
	SwapTopicOrder(ctx context.Context, subjectID, topicAID, topicBID uint) error
	ListSubjectTopics(ctx context.Context, subjectID uint) ([]*types.SubjectTopic, error)

	LinkQuestionToTopic(ctx context.Context, questionID, topicID uint) (*types.QuestionTopic, error)
	UnlinkQuestionFromTopic(ctx context.Context, questionID, topicID uint) error

	LinkQuestionToConcept(ctx context.Context, questionID, conceptID uint) (*types.QuestionConcept, error)
	UnlinkQuestionFromConcept(ctx context.Context, questionID, conceptID uint) error

	LinkConcepts(ctx context.Context, fromID, toID uint, bidirectional bool) error
	UnlinkConcepts(ctx context.Context, fromID, toID uint, removeMirror bool) error
}

type linkService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	topicRepo           repos.TopicRepo
	conceptRepo         repos.ConceptRepo
	subjectRepo         repos.SubjectRepo
	questionRepo        repos.QuestionRepo
	topicConceptRepo    repos.TopicConceptRepo
	subjectTopicRepo    repos.SubjectTopicRepo
	questionTopicRepo   repos.QuestionTopicRepo
	questionConceptRepo repos.QuestionConceptRepo
	conceptConceptRepo  repos.ConceptConceptRepo
}

func NewLinkService(
	db *gorm.DB,
	baseLog *logger.Logger,
	topicRepo repos.TopicRepo,
	conceptRepo repos.ConceptRepo,
	subjectRepo repos.SubjectRepo,
	questionRepo repos.QuestionRepo,
	topicConceptRepo repos.TopicConceptRepo,
	subjectTopicRepo repos.SubjectTopicRepo,
	questionTopicRepo repos.QuestionTopicRepo,
	questionConceptRepo repos.QuestionConceptRepo,
	conceptConceptRepo repos.ConceptConceptRepo,
) LinkService {
	return &linkService{
		db:                  db,
		log:                 baseLog.With("service", "LinkService"),
		topicRepo:           topicRepo,
		conceptRepo:         conceptRepo,
		subjectRepo:         subjectRepo,
		questionRepo:        questionRepo,
		topicConceptRepo:    topicConceptRepo,
		subjectTopicRepo:    subjectTopicRepo,
		questionTopicRepo:   questionTopicRepo,
		questionConceptRepo: questionConceptRepo,
		conceptConceptRepo:  conceptConceptRepo,
	}
}

func (s *linkService) requireTopic(ctx context.Context, tx *gorm.DB, id uint) error {
	t, err := s.topicRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load topic: %w", err)
	}
	if t == nil || t.Retired {
		return apperr.NotFound("topic", id)
	}
	return nil
}

func (s *linkService) requireConcept(ctx context.Context, tx *gorm.DB, id uint) error {
	c, err := s.conceptRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load concept: %w", err)
	}
	if c == nil || c.Retired {
		return apperr.NotFound("concept", id)
	}
	return nil
}

func (s *linkService) requireSubject(ctx context.Context, tx *gorm.DB, id uint) error {
	sub, err := s.subjectRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load subject: %w", err)
	}
	if sub == nil || sub.Retired {
		return apperr.NotFound("subject", id)
	}
	return nil
}

func (s *linkService) requireQuestion(ctx context.Context, tx *gorm.DB, id uint) error {
	q, err := s.questionRepo.GetByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("load question: %w", err)
	}
	if q == nil || q.Retired {
		return apperr.NotFound("question", id)
	}
	return nil
}

func (s *linkService) LinkConceptToTopic(ctx context.Context, topicID, conceptID uint, orderID int) (*types.TopicConcept, error) {
	var out *types.TopicConcept
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireTopic(ctx, tx, topicID); err != nil {
			return err
		}
		if err := s.requireConcept(ctx, tx, conceptID); err != nil {
			return err
		}

		existing, err := s.topicConceptRepo.GetPair(ctx, tx, topicID, conceptID)
		if err != nil {
			return fmt.Errorf("check topic concept pair: %w", err)
		}
		if existing != nil {
			return apperr.Validation("concept %d already linked to topic %d", conceptID, topicID)
		}

		if orderID == 0 {
			max, err := s.topicConceptRepo.MaxOrder(ctx, tx, topicID)
			if err != nil {
				return fmt.Errorf("next concept order: %w", err)
			}
			orderID = max + 1
		} else {
			taken, err := s.topicConceptRepo.OrderTaken(ctx, tx, topicID, orderID)
			if err != nil {
				return fmt.Errorf("check concept order: %w", err)
			}
			if taken {
				return apperr.Validation("order %d already taken in topic %d", orderID, topicID)
			}
		}

		row := &types.TopicConcept{TopicID: topicID, ConceptID: conceptID, OrderID: orderID}
		if err := s.topicConceptRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("link concept to topic: %w", err)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *linkService) UnlinkConceptFromTopic(ctx context.Context, topicID, conceptID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.topicConceptRepo.GetPair(ctx, tx, topicID, conceptID)
		if err != nil {
			return fmt.Errorf("check topic concept pair: %w", err)
		}
		if existing == nil {
			return apperr.Validation("concept %d not linked to topic %d", conceptID, topicID)
		}
		return s.topicConceptRepo.DeletePair(ctx, tx, topicID, conceptID)
	})
}

func (s *linkService) NextConceptOrder(ctx context.Context, topicID uint) (int, error) {
	max, err := s.topicConceptRepo.MaxOrder(ctx, nil, topicID)
	if err != nil {
		return 0, fmt.Errorf("next concept order: %w", err)
	}
	return max + 1, nil
}

func (s *linkService) SwapConceptOrder(ctx context.Context, topicID, conceptAID, conceptBID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.topicConceptRepo.GetPair(ctx, tx, topicID, conceptAID)
		if err != nil {
			return fmt.Errorf("load pair a: %w", err)
		}
		b, err := s.topicConceptRepo.GetPair(ctx, tx, topicID, conceptBID)
		if err != nil {
			return fmt.Errorf("load pair b: %w", err)
		}
		if a == nil || b == nil {
			return apperr.Validation("both concepts must be linked to topic %d to reorder", topicID)
		}

		orderA, orderB := a.OrderID, b.OrderID
		a.OrderID = tempOrder
		if err := s.topicConceptRepo.Save(ctx, tx, a); err != nil {
			return fmt.Errorf("park order a: %w", err)
		}
		b.OrderID = orderA
		if err := s.topicConceptRepo.Save(ctx, tx, b); err != nil {
			return fmt.Errorf("swap order b: %w", err)
		}
		a.OrderID = orderB
		if err := s.topicConceptRepo.Save(ctx, tx, a); err != nil {
			return fmt.Errorf("swap order a: %w", err)
		}
		return nil
	})
}

func (s *linkService) ListTopicConcepts(ctx context.Context, topicID uint) ([]*types.TopicConcept, error) {
	return s.topicConceptRepo.ListByTopicID(ctx, nil, topicID)
}

func (s *linkService) LinkTopicToSubject(ctx context.Context, subjectID, topicID uint, orderID int) (*types.SubjectTopic, error) {
	var out *types.SubjectTopic
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireSubject(ctx, tx, subjectID); err != nil {
			return err
		}
		if err := s.requireTopic(ctx, tx, topicID); err != nil {
			return err
		}

		existing, err := s.subjectTopicRepo.GetPair(ctx, tx, subjectID, topicID)
		if err != nil {
			return fmt.Errorf("check subject topic pair: %w", err)
		}
		if existing != nil {
			return apperr.Validation("topic %d already linked to subject %d", topicID, subjectID)
		}

		if orderID == 0 {
			max, err := s.subjectTopicRepo.MaxOrder(ctx, tx, subjectID)
			if err != nil {
				return fmt.Errorf("next topic order: %w", err)
			}
			orderID = max + 1
		} else {
			taken, err := s.subjectTopicRepo.OrderTaken(ctx, tx, subjectID, orderID)
			if err != nil {
				return fmt.Errorf("check topic order: %w", err)
			}
			if taken {
				return apperr.Validation("order %d already taken in subject %d", orderID, subjectID)
			}
		}

		row := &types.SubjectTopic{SubjectID: subjectID, TopicID: topicID, OrderID: orderID}
		if err := s.subjectTopicRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("link topic to subject: %w", err)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *linkService) UnlinkTopicFromSubject(ctx context.Context, subjectID, topicID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.subjectTopicRepo.GetPair(ctx, tx, subjectID, topicID)
		if err != nil {
			return fmt.Errorf("check subject topic pair: %w", err)
		}
		if existing == nil {
			return apperr.Validation("topic %d not linked to subject %d", topicID, subjectID)
		}
		return s.subjectTopicRepo.DeletePair(ctx, tx, subjectID, topicID)
	})
}

func (s *linkService) NextTopicOrder(ctx context.Context, subjectID uint) (int, error) {
	max, err := s.subjectTopicRepo.MaxOrder(ctx, nil, subjectID)
	if err != nil {
		return 0, fmt.Errorf("next topic order: %w", err)
	}
	return max + 1, nil
}

func (s *linkService) SwapTopicOrder(ctx context.Context, subjectID, topicAID, topicBID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.subjectTopicRepo.GetPair(ctx, tx, subjectID, topicAID)
		if err != nil {
			return fmt.Errorf("load pair a: %w", err)
		}
		b, err := s.subjectTopicRepo.GetPair(ctx, tx, subjectID, topicBID)
		if err != nil {
			return fmt.Errorf("load pair b: %w", err)
		}
		if a == nil || b == nil {
			return apperr.Validation("both topics must be linked to subject %d to reorder", subjectID)
		}

		orderA, orderB := a.OrderID, b.OrderID
		a.OrderID = tempOrder
		if err := s.subjectTopicRepo.Save(ctx, tx, a); err != nil {
			return fmt.Errorf("park order a: %w", err)
		}
		b.OrderID = orderA
		if err := s.subjectTopicRepo.Save(ctx, tx, b); err != nil {
			return fmt.Errorf("swap order b: %w", err)
		}
		a.OrderID = orderB
		if err := s.subjectTopicRepo.Save(ctx, tx, a); err != nil {
			return fmt.Errorf("swap order a: %w", err)
		}
		return nil
	})
}

func (s *linkService) ListSubjectTopics(ctx context.Context, subjectID uint) ([]*types.SubjectTopic, error) {
	return s.subjectTopicRepo.ListBySubjectID(ctx, nil, subjectID)
}

func (s *linkService) LinkQuestionToTopic(ctx context.Context, questionID, topicID uint) (*types.QuestionTopic, error) {
	var out *types.QuestionTopic
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireQuestion(ctx, tx, questionID); err != nil {
			return err
		}
		if err := s.requireTopic(ctx, tx, topicID); err != nil {
			return err
		}

		existing, err := s.questionTopicRepo.GetPair(ctx, tx, questionID, topicID)
		if err != nil {
			return fmt.Errorf("check question topic pair: %w", err)
		}
		if existing != nil {
			return apperr.Validation("question %d already linked to topic %d", questionID, topicID)
		}

		row := &types.QuestionTopic{QuestionID: questionID, TopicID: topicID}
		if err := s.questionTopicRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("link question to topic: %w", err)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *linkService) UnlinkQuestionFromTopic(ctx context.Context, questionID, topicID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.questionTopicRepo.GetPair(ctx, tx, questionID, topicID)
		if err != nil {
			return fmt.Errorf("check question topic pair: %w", err)
		}
		if existing == nil {
			return apperr.Validation("question %d not linked to topic %d", questionID, topicID)
		}
		return s.questionTopicRepo.DeletePair(ctx, tx, questionID, topicID)
	})
}

func (s *linkService) LinkQuestionToConcept(ctx context.Context, questionID, conceptID uint) (*types.QuestionConcept, error) {
	var out *types.QuestionConcept
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireQuestion(ctx, tx, questionID); err != nil {
			return err
		}
		if err := s.requireConcept(ctx, tx, conceptID); err != nil {
			return err
		}

		existing, err := s.questionConceptRepo.GetPair(ctx, tx, questionID, conceptID)
		if err != nil {
			return fmt.Errorf("check question concept pair: %w", err)
		}
		if existing != nil {
			return apperr.Validation("question %d already linked to concept %d", questionID, conceptID)
		}

		row := &types.QuestionConcept{QuestionID: questionID, ConceptID: conceptID}
		if err := s.questionConceptRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("link question to concept: %w", err)
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *linkService) UnlinkQuestionFromConcept(ctx context.Context, questionID, conceptID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.questionConceptRepo.GetPair(ctx, tx, questionID, conceptID)
		if err != nil {
			return fmt.Errorf("check question concept pair: %w", err)
		}
		if existing == nil {
			return apperr.Validation("question %d not linked to concept %d", questionID, conceptID)
		}
		return s.questionConceptRepo.DeletePair(ctx, tx, questionID, conceptID)
	})
}

func (s *linkService) LinkConcepts(ctx context.Context, fromID, toID uint, bidirectional bool) error {
	if fromID == toID {
		return apperr.Validation("concept cannot link to itself")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireConcept(ctx, tx, fromID); err != nil {
			return err
		}
		if err := s.requireConcept(ctx, tx, toID); err != nil {
			return err
		}

		existing, err := s.conceptConceptRepo.GetPair(ctx, tx, fromID, toID)
		if err != nil {
			return fmt.Errorf("check concept edge: %w", err)
		}
		if existing != nil {
			return apperr.Validation("concept %d already linked to concept %d", fromID, toID)
		}

		if err := s.conceptConceptRepo.Create(ctx, tx, &types.ConceptConcept{FromID: fromID, ToID: toID}); err != nil {
			return fmt.Errorf("link concepts: %w", err)
		}
		if bidirectional {
			mirror, err := s.conceptConceptRepo.GetPair(ctx, tx, toID, fromID)
			if err != nil {
				return fmt.Errorf("check mirror edge: %w", err)
			}
			if mirror == nil {
				if err := s.conceptConceptRepo.Create(ctx, tx, &types.ConceptConcept{FromID: toID, ToID: fromID}); err != nil {
					return fmt.Errorf("link mirror edge: %w", err)
				}
			}
		}
		return nil
	})
}

func (s *linkService) UnlinkConcepts(ctx context.Context, fromID, toID uint, removeMirror bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.conceptConceptRepo.GetPair(ctx, tx, fromID, toID)
		if err != nil {
			return fmt.Errorf("check concept edge: %w", err)
		}
		if existing == nil {
			return apperr.Validation("concept %d not linked to concept %d", fromID, toID)
		}
		if err := s.conceptConceptRepo.DeletePair(ctx, tx, fromID, toID); err != nil {
			return fmt.Errorf("unlink concepts: %w", err)
		}
		if removeMirror {
			if err := s.conceptConceptRepo.DeletePair(ctx, tx, toID, fromID); err != nil {
				return fmt.Errorf("unlink mirror edge: %w", err)
			}
		}
		return nil
	})
}
