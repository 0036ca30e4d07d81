package app

import (
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/platform/logger"
	"github.com/aulakit/aula-backend/internal/services"
)

type Services struct {
	Subject   services.SubjectService
	Group     services.StudentGroupService
	Topic     services.TopicService
	Concept   services.ConceptService
	Epigraph  services.EpigraphService
	Question  services.QuestionService
	Link      services.LinkService
	Exam      services.ExamService
	Change    services.ChangeService
	Bootstrap services.BootstrapService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	return Services{
		Subject: services.NewSubjectService(db, log, r.Subject, r.SubjectTopic, r.SubjectChange),
		Group:   services.NewStudentGroupService(db, log, r.Group, r.Stat, r.Exam, r.GroupChange),
		Topic: services.NewTopicService(
			db, log,
			r.Topic, r.Epigraph,
			r.TopicConcept, r.SubjectTopic, r.QuestionTopic,
			r.TopicChange, r.EpigraphChange,
		),
		Concept: services.NewConceptService(
			db, log,
			r.Concept,
			r.TopicConcept, r.QuestionConcept, r.ConceptConcept,
			r.ConceptChange,
		),
		Epigraph: services.NewEpigraphService(db, log, r.Epigraph, r.Topic, r.EpigraphChange),
		Question: services.NewQuestionService(
			db, log,
			r.Question, r.Answer,
			r.QuestionTopic, r.QuestionConcept, r.Stat,
			r.QuestionChange, r.AnswerChange,
		),
		Link: services.NewLinkService(
			db, log,
			r.Topic, r.Concept, r.Subject, r.Question,
			r.TopicConcept, r.SubjectTopic, r.QuestionTopic, r.QuestionConcept, r.ConceptConcept,
		),
		Exam: services.NewExamService(
			db, log,
			r.Question, r.Answer, r.Group, r.Stat, r.Exam,
			cfg.ExamRequireAnswers,
		),
		Change: services.NewChangeService(
			db, log,
			r.SubjectChange, r.GroupChange, r.TopicChange, r.ConceptChange,
			r.EpigraphChange, r.QuestionChange, r.AnswerChange,
		),
		Bootstrap: services.NewBootstrapService(db, log, r.Teacher),
	}
}
