package services_test

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	"github.com/aulakit/aula-backend/internal/data/repos/testutil"
	"github.com/aulakit/aula-backend/internal/platform/ctxutil"
	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

// env wires every service over a transaction that rolls back when the test
// ends, so tests never see each other's rows.
type env struct {
	tx  *gorm.DB
	log *logger.Logger

	subjectRepo  repos.SubjectRepo
	topicRepo    repos.TopicRepo
	epigraphRepo repos.EpigraphRepo
	answerRepo   repos.AnswerRepo
	statRepo     repos.GroupQuestionStatRepo
	examRepo     repos.ExamRepo

	subjectChanges  repos.SubjectChangeRepo
	topicChanges    repos.TopicChangeRepo
	epigraphChanges repos.EpigraphChangeRepo
	questionChanges repos.QuestionChangeRepo
	answerChanges   repos.AnswerChangeRepo

	subjects  services.SubjectService
	groups    services.StudentGroupService
	topics    services.TopicService
	concepts  services.ConceptService
	epigraphs services.EpigraphService
	questions services.QuestionService
	links     services.LinkService
	exams     services.ExamService
	changes   services.ChangeService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)

	subjectRepo := repos.NewSubjectRepo(tx, log)
	groupRepo := repos.NewStudentGroupRepo(tx, log)
	topicRepo := repos.NewTopicRepo(tx, log)
	conceptRepo := repos.NewConceptRepo(tx, log)
	epigraphRepo := repos.NewEpigraphRepo(tx, log)
	questionRepo := repos.NewQuestionRepo(tx, log)
	answerRepo := repos.NewAnswerRepo(tx, log)
	statRepo := repos.NewGroupQuestionStatRepo(tx, log)
	examRepo := repos.NewExamRepo(tx, log)

	topicConceptRepo := repos.NewTopicConceptRepo(tx, log)
	subjectTopicRepo := repos.NewSubjectTopicRepo(tx, log)
	questionTopicRepo := repos.NewQuestionTopicRepo(tx, log)
	questionConceptRepo := repos.NewQuestionConceptRepo(tx, log)
	conceptConceptRepo := repos.NewConceptConceptRepo(tx, log)

	subjectChanges := repos.NewSubjectChangeRepo(tx, log)
	groupChanges := repos.NewStudentGroupChangeRepo(tx, log)
	topicChanges := repos.NewTopicChangeRepo(tx, log)
	conceptChanges := repos.NewConceptChangeRepo(tx, log)
	epigraphChanges := repos.NewEpigraphChangeRepo(tx, log)
	questionChanges := repos.NewQuestionChangeRepo(tx, log)
	answerChanges := repos.NewAnswerChangeRepo(tx, log)

	return &env{
		tx:  tx,
		log: log,

		subjectRepo:  subjectRepo,
		topicRepo:    topicRepo,
		epigraphRepo: epigraphRepo,
		answerRepo:   answerRepo,
		statRepo:     statRepo,
		examRepo:     examRepo,

		subjectChanges:  subjectChanges,
		topicChanges:    topicChanges,
		epigraphChanges: epigraphChanges,
		questionChanges: questionChanges,
		answerChanges:   answerChanges,

		subjects: services.NewSubjectService(tx, log, subjectRepo, subjectTopicRepo, subjectChanges),
		groups:   services.NewStudentGroupService(tx, log, groupRepo, statRepo, examRepo, groupChanges),
		topics: services.NewTopicService(
			tx, log, topicRepo, epigraphRepo,
			topicConceptRepo, subjectTopicRepo, questionTopicRepo,
			topicChanges, epigraphChanges,
		),
		concepts: services.NewConceptService(
			tx, log, conceptRepo,
			topicConceptRepo, questionConceptRepo, conceptConceptRepo,
			conceptChanges,
		),
		epigraphs: services.NewEpigraphService(tx, log, epigraphRepo, topicRepo, epigraphChanges),
		questions: services.NewQuestionService(
			tx, log, questionRepo, answerRepo,
			questionTopicRepo, questionConceptRepo, statRepo,
			questionChanges, answerChanges,
		),
		links: services.NewLinkService(
			tx, log, topicRepo, conceptRepo, subjectRepo, questionRepo,
			topicConceptRepo, subjectTopicRepo, questionTopicRepo,
			questionConceptRepo, conceptConceptRepo,
		),
		exams: services.NewExamService(tx, log, questionRepo, answerRepo, groupRepo, statRepo, examRepo, true),
		changes: services.NewChangeService(
			tx, log,
			subjectChanges, groupChanges, topicChanges, conceptChanges,
			epigraphChanges, questionChanges, answerChanges,
		),
	}
}

// actorCtx returns a context carrying the given teacher as the request actor.
func actorCtx(teacherID uint) context.Context {
	return ctxutil.WithTraceData(context.Background(), &ctxutil.TraceData{
		RequestID: "test",
		TeacherID: teacherID,
	})
}
