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

type QuestionUpdate struct {
	StatementEs *string
	StatementEn *string
	Kind        *string
	IsTrue      *bool
	Approved    *bool
}

type AnswerUpdate struct {
	TextEs  *string
	TextEn  *string
	Correct *bool
}

type QuestionService interface {
	Create(ctx context.Context, statementEs, statementEn, kind string, isTrue *bool) (*types.Question, error)
	Get(ctx context.Context, id uint) (*types.Question, error)
	List(ctx context.Context) ([]*types.Question, error)
	Update(ctx context.Context, id uint, upd QuestionUpdate) (*types.Question, error)
	Delete(ctx context.Context, id uint) error

	AddAnswer(ctx context.Context, questionID uint, textEs, textEn string, correct bool) (*types.Answer, error)
	ListAnswers(ctx context.Context, questionID uint) ([]*types.Answer, error)
	UpdateAnswer(ctx context.Context, answerID uint, upd AnswerUpdate) (*types.Answer, error)
	DeleteAnswer(ctx context.Context, answerID uint) error
}

type questionService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	questionRepo        repos.QuestionRepo
	answerRepo          repos.AnswerRepo
	questionTopicRepo   repos.QuestionTopicRepo
	questionConceptRepo repos.QuestionConceptRepo
	statRepo            repos.GroupQuestionStatRepo
	changeRepo          repos.QuestionChangeRepo
	answerChangeRepo    repos.AnswerChangeRepo
}

func NewQuestionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	questionRepo repos.QuestionRepo,
	answerRepo repos.AnswerRepo,
	questionTopicRepo repos.QuestionTopicRepo,
	questionConceptRepo repos.QuestionConceptRepo,
	statRepo repos.GroupQuestionStatRepo,
	changeRepo repos.QuestionChangeRepo,
	answerChangeRepo repos.AnswerChangeRepo,
) QuestionService {
	return &questionService{
		db:                  db,
		log:                 baseLog.With("service", "QuestionService"),
		questionRepo:        questionRepo,
		answerRepo:          answerRepo,
		questionTopicRepo:   questionTopicRepo,
		questionConceptRepo: questionConceptRepo,
		statRepo:            statRepo,
		changeRepo:          changeRepo,
		answerChangeRepo:    answerChangeRepo,
	}
}

func validQuestionKind(kind string) bool {
	return kind == types.QuestionKindChoice || kind == types.QuestionKindTrueFalse
}

func (s *questionService) Create(ctx context.Context, statementEs, statementEn, kind string, isTrue *bool) (*types.Question, error) {
	if statementEs == "" && statementEn == "" {
		return nil, apperr.Validation("question statement required in at least one language")
	}
	if kind == "" {
		kind = types.QuestionKindChoice
	}
	if !validQuestionKind(kind) {
		return nil, apperr.Validation("unknown question kind %q", kind)
	}
	if kind == types.QuestionKindTrueFalse && isTrue == nil {
		return nil, apperr.Validation("true/false question requires is_true")
	}
	if kind == types.QuestionKindChoice {
		isTrue = nil
	}

	row := &types.Question{
		StatementEs: statementEs,
		StatementEn: statementEn,
		Kind:        kind,
		IsTrue:      isTrue,
		Approved:    true,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.questionRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		return s.appendChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *questionService) Get(ctx context.Context, id uint) (*types.Question, error) {
	row, err := s.questionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("load question: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("question", id)
	}
	return row, nil
}

func (s *questionService) List(ctx context.Context) ([]*types.Question, error) {
	return s.questionRepo.ListLive(ctx, nil)
}

func (s *questionService) Update(ctx context.Context, id uint, upd QuestionUpdate) (*types.Question, error) {
	var out *types.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.questionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("question", id)
		}

		statementEs := live.StatementEs
		statementEn := live.StatementEn
		kind := live.Kind
		isTrue := live.IsTrue
		approved := live.Approved
		if upd.StatementEs != nil {
			statementEs = *upd.StatementEs
		}
		if upd.StatementEn != nil {
			statementEn = *upd.StatementEn
		}
		if upd.Kind != nil {
			kind = *upd.Kind
		}
		if upd.IsTrue != nil {
			isTrue = upd.IsTrue
		}
		if upd.Approved != nil {
			approved = *upd.Approved
		}

		if statementEs == "" && statementEn == "" {
			return apperr.Validation("question statement required in at least one language")
		}
		if !validQuestionKind(kind) {
			return apperr.Validation("unknown question kind %q", kind)
		}
		// Converting to true/false demands an explicit expected value.
		if kind == types.QuestionKindTrueFalse && isTrue == nil {
			return apperr.Validation("true/false question requires is_true")
		}
		if kind == types.QuestionKindChoice {
			isTrue = nil
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.questionRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot question: %w", err)
		}

		live.StatementEs = statementEs
		live.StatementEn = statementEn
		live.Kind = kind
		live.IsTrue = isTrue
		live.Approved = approved
		if err := s.questionRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save question: %w", err)
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

func (s *questionService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.questionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("question", id)
		}

		// Answers go down with their question, each with its own audit trail.
		answers, err := s.answerRepo.ListLiveByQuestionID(ctx, tx, live.ID)
		if err != nil {
			return fmt.Errorf("list question answers: %w", err)
		}
		for _, a := range answers {
			ac := *a
			ac.ID = 0
			ac.Retired = true
			if err := s.answerRepo.Create(ctx, tx, &ac); err != nil {
				return fmt.Errorf("snapshot answer: %w", err)
			}
			rec := &types.AnswerChange{
				EntityID:  a.ID,
				PrevID:    history.Ptr(ac.ID),
				TeacherID: history.Actor(ctx),
			}
			if err := s.answerChangeRepo.Append(ctx, tx, rec); err != nil {
				return fmt.Errorf("append answer change: %w", err)
			}
			if err := s.answerRepo.DeleteByID(ctx, tx, a.ID); err != nil {
				return fmt.Errorf("delete answer: %w", err)
			}
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.questionRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot question: %w", err)
		}
		if err := s.appendChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}

		if err := s.questionTopicRepo.DeleteByQuestionID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink question topics: %w", err)
		}
		if err := s.questionConceptRepo.DeleteByQuestionID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("unlink question concepts: %w", err)
		}
		if err := s.statRepo.DeleteByQuestionID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete question stats: %w", err)
		}
		if err := s.questionRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		return nil
	})
}

func (s *questionService) AddAnswer(ctx context.Context, questionID uint, textEs, textEn string, correct bool) (*types.Answer, error) {
	if textEs == "" && textEn == "" {
		return nil, apperr.Validation("answer text required in at least one language")
	}

	row := &types.Answer{
		QuestionID: questionID,
		TextEs:     textEs,
		TextEn:     textEn,
		Correct:    correct,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.GetByID(ctx, tx, questionID)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}
		if question == nil || question.Retired {
			return apperr.NotFound("question", questionID)
		}
		if err := s.answerRepo.Create(ctx, tx, row); err != nil {
			return fmt.Errorf("create answer: %w", err)
		}
		return s.appendAnswerChange(ctx, tx, row.ID, history.Created(row.ID))
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *questionService) ListAnswers(ctx context.Context, questionID uint) ([]*types.Answer, error) {
	return s.answerRepo.ListLiveByQuestionID(ctx, nil, questionID)
}

func (s *questionService) UpdateAnswer(ctx context.Context, answerID uint, upd AnswerUpdate) (*types.Answer, error) {
	var out *types.Answer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.answerRepo.GetByID(ctx, tx, answerID)
		if err != nil {
			return fmt.Errorf("load answer: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("answer", answerID)
		}

		textEs := live.TextEs
		textEn := live.TextEn
		correct := live.Correct
		if upd.TextEs != nil {
			textEs = *upd.TextEs
		}
		if upd.TextEn != nil {
			textEn = *upd.TextEn
		}
		if upd.Correct != nil {
			correct = *upd.Correct
		}
		if textEs == "" && textEn == "" {
			return apperr.Validation("answer text required in at least one language")
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.answerRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot answer: %w", err)
		}

		live.TextEs = textEs
		live.TextEn = textEn
		live.Correct = correct
		if err := s.answerRepo.Save(ctx, tx, live); err != nil {
			return fmt.Errorf("save answer: %w", err)
		}

		if err := s.appendAnswerChange(ctx, tx, live.ID, history.Updated(clone.ID, live.ID)); err != nil {
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

func (s *questionService) DeleteAnswer(ctx context.Context, answerID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		live, err := s.answerRepo.GetByID(ctx, tx, answerID)
		if err != nil {
			return fmt.Errorf("load answer: %w", err)
		}
		if live == nil || live.Retired {
			return apperr.NotFound("answer", answerID)
		}

		clone := *live
		clone.ID = 0
		clone.Retired = true
		if err := s.answerRepo.Create(ctx, tx, &clone); err != nil {
			return fmt.Errorf("snapshot answer: %w", err)
		}
		if err := s.appendAnswerChange(ctx, tx, live.ID, history.Deleted(clone.ID)); err != nil {
			return err
		}
		if err := s.answerRepo.DeleteByID(ctx, tx, live.ID); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}
		return nil
	})
}

func (s *questionService) appendChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.QuestionChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.changeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append question change: %w", err)
	}
	return nil
}

func (s *questionService) appendAnswerChange(ctx context.Context, tx *gorm.DB, entityID uint, refs history.Refs) error {
	rec := &types.AnswerChange{
		EntityID:  entityID,
		PrevID:    refs.Prev,
		NewID:     refs.New,
		TeacherID: history.Actor(ctx),
	}
	if err := s.answerChangeRepo.Append(ctx, tx, rec); err != nil {
		return fmt.Errorf("append answer change: %w", err)
	}
	return nil
}
