package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/pkg/apperr"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type ExamService interface {
	// Assemble picks min(desiredCount, pool size) distinct questions from the
	// union pool of the given topics, in random order.
	Assemble(ctx context.Context, topicIDs []uint, desiredCount int) ([]*types.Question, error)

	// Generate assembles and persists the exam so a later correction can be
	// tied to the question set the group actually sat.
	Generate(ctx context.Context, groupID uint, topicIDs []uint, desiredCount int) (*types.Exam, []*types.Question, error)

	GetExam(ctx context.Context, publicID uuid.UUID) (*types.Exam, error)
	ListGroupExams(ctx context.Context, groupID uint) ([]*types.Exam, error)

	// Evaluate grades one submitted answer and bumps the (group, question)
	// counters. Returns whether the submission was correct.
	Evaluate(ctx context.Context, groupID, questionID, answerID uint) (bool, error)

	// CorrectExam grades every (question, answer) pair and returns the number
	// of correct submissions. A malformed pair aborts the whole grading run.
	CorrectExam(ctx context.Context, groupID uint, submissions map[uint]uint) (int, error)

	GroupStats(ctx context.Context, groupID uint) ([]*types.GroupQuestionStat, error)
}

type examService struct {
	db           *gorm.DB
	log          *logger.Logger
	questionRepo repos.QuestionRepo
	answerRepo   repos.AnswerRepo
	groupRepo    repos.StudentGroupRepo
	statRepo     repos.GroupQuestionStatRepo
	examRepo     repos.ExamRepo

	// requireAnswers excludes zero-answer questions from assembly when set.
	requireAnswers bool
}

func NewExamService(
	db *gorm.DB,
	baseLog *logger.Logger,
	questionRepo repos.QuestionRepo,
	answerRepo repos.AnswerRepo,
	groupRepo repos.StudentGroupRepo,
	statRepo repos.GroupQuestionStatRepo,
	examRepo repos.ExamRepo,
	requireAnswers bool,
) ExamService {
	return &examService{
		db:             db,
		log:            baseLog.With("service", "ExamService"),
		questionRepo:   questionRepo,
		answerRepo:     answerRepo,
		groupRepo:      groupRepo,
		statRepo:       statRepo,
		examRepo:       examRepo,
		requireAnswers: requireAnswers,
	}
}

func (s *examService) Assemble(ctx context.Context, topicIDs []uint, desiredCount int) ([]*types.Question, error) {
	if desiredCount <= 0 || len(topicIDs) == 0 {
		return []*types.Question{}, nil
	}

	pool, err := s.questionRepo.ListPoolByTopicIDs(ctx, nil, topicIDs, s.requireAnswers)
	if err != nil {
		return nil, fmt.Errorf("load question pool: %w", err)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if desiredCount < len(pool) {
		pool = pool[:desiredCount]
	}
	return pool, nil
}

func (s *examService) Generate(ctx context.Context, groupID uint, topicIDs []uint, desiredCount int) (*types.Exam, []*types.Question, error) {
	group, err := s.groupRepo.GetByID(ctx, nil, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("load group: %w", err)
	}
	if group == nil || group.Retired {
		return nil, nil, apperr.NotFound("group", groupID)
	}

	questions, err := s.Assemble(ctx, topicIDs, desiredCount)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("encode question ids: %w", err)
	}

	exam := &types.Exam{
		PublicID:      uuid.New(),
		GroupID:       groupID,
		QuestionCount: len(ids),
		QuestionIDs:   datatypes.JSON(raw),
	}
	if err := s.examRepo.Create(ctx, nil, exam); err != nil {
		return nil, nil, fmt.Errorf("persist exam: %w", err)
	}
	return exam, questions, nil
}

func (s *examService) GetExam(ctx context.Context, publicID uuid.UUID) (*types.Exam, error) {
	exam, err := s.examRepo.GetByPublicID(ctx, nil, publicID)
	if err != nil {
		return nil, fmt.Errorf("load exam: %w", err)
	}
	if exam == nil {
		return nil, fmt.Errorf("exam %s: %w", publicID, apperr.ErrNotFound)
	}
	return exam, nil
}

func (s *examService) ListGroupExams(ctx context.Context, groupID uint) ([]*types.Exam, error) {
	return s.examRepo.ListByGroupID(ctx, nil, groupID)
}

func (s *examService) Evaluate(ctx context.Context, groupID, questionID, answerID uint) (bool, error) {
	var correct bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		correct, err = s.evaluate(ctx, tx, groupID, questionID, answerID)
		return err
	})
	if err != nil {
		return false, err
	}
	return correct, nil
}

func (s *examService) CorrectExam(ctx context.Context, groupID uint, submissions map[uint]uint) (int, error) {
	mark := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for questionID, answerID := range submissions {
			correct, err := s.evaluate(ctx, tx, groupID, questionID, answerID)
			if err != nil {
				return err
			}
			if correct {
				mark++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return mark, nil
}

func (s *examService) evaluate(ctx context.Context, tx *gorm.DB, groupID, questionID, answerID uint) (bool, error) {
	question, err := s.questionRepo.GetByID(ctx, tx, questionID)
	if err != nil {
		return false, fmt.Errorf("load question: %w", err)
	}
	if question == nil || question.Retired {
		return false, apperr.NotFound("question", questionID)
	}

	answer, err := s.answerRepo.GetByID(ctx, tx, answerID)
	if err != nil {
		return false, fmt.Errorf("load answer: %w", err)
	}
	if answer == nil {
		return false, apperr.NotFound("answer", answerID)
	}
	// Cross-question submissions are rejected, not scored as wrong.
	if answer.QuestionID != question.ID {
		return false, apperr.Validation("answer %d does not belong to question %d", answerID, questionID)
	}

	correct := answer.Correct
	if err := s.statRepo.EnsureRow(ctx, tx, groupID, questionID); err != nil {
		return false, fmt.Errorf("ensure stat row: %w", err)
	}
	if err := s.statRepo.Increment(ctx, tx, groupID, questionID, correct); err != nil {
		return false, fmt.Errorf("increment stat: %w", err)
	}
	return correct, nil
}

func (s *examService) GroupStats(ctx context.Context, groupID uint) ([]*types.GroupQuestionStat, error) {
	return s.statRepo.ListByGroupID(ctx, nil, groupID)
}
