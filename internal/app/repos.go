package app

import (
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type Repos struct {
	Teacher repos.TeacherRepo

	Subject  repos.SubjectRepo
	Group    repos.StudentGroupRepo
	Topic    repos.TopicRepo
	Concept  repos.ConceptRepo
	Epigraph repos.EpigraphRepo

	Question repos.QuestionRepo
	Answer   repos.AnswerRepo
	Stat     repos.GroupQuestionStatRepo
	Exam     repos.ExamRepo

	TopicConcept    repos.TopicConceptRepo
	SubjectTopic    repos.SubjectTopicRepo
	QuestionTopic   repos.QuestionTopicRepo
	QuestionConcept repos.QuestionConceptRepo
	ConceptConcept  repos.ConceptConceptRepo

	SubjectChange  repos.SubjectChangeRepo
	GroupChange    repos.StudentGroupChangeRepo
	TopicChange    repos.TopicChangeRepo
	ConceptChange  repos.ConceptChangeRepo
	EpigraphChange repos.EpigraphChangeRepo
	QuestionChange repos.QuestionChangeRepo
	AnswerChange   repos.AnswerChangeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Teacher: repos.NewTeacherRepo(db, log),

		Subject:  repos.NewSubjectRepo(db, log),
		Group:    repos.NewStudentGroupRepo(db, log),
		Topic:    repos.NewTopicRepo(db, log),
		Concept:  repos.NewConceptRepo(db, log),
		Epigraph: repos.NewEpigraphRepo(db, log),

		Question: repos.NewQuestionRepo(db, log),
		Answer:   repos.NewAnswerRepo(db, log),
		Stat:     repos.NewGroupQuestionStatRepo(db, log),
		Exam:     repos.NewExamRepo(db, log),

		TopicConcept:    repos.NewTopicConceptRepo(db, log),
		SubjectTopic:    repos.NewSubjectTopicRepo(db, log),
		QuestionTopic:   repos.NewQuestionTopicRepo(db, log),
		QuestionConcept: repos.NewQuestionConceptRepo(db, log),
		ConceptConcept:  repos.NewConceptConceptRepo(db, log),

		SubjectChange:  repos.NewSubjectChangeRepo(db, log),
		GroupChange:    repos.NewStudentGroupChangeRepo(db, log),
		TopicChange:    repos.NewTopicChangeRepo(db, log),
		ConceptChange:  repos.NewConceptChangeRepo(db, log),
		EpigraphChange: repos.NewEpigraphChangeRepo(db, log),
		QuestionChange: repos.NewQuestionChangeRepo(db, log),
		AnswerChange:   repos.NewAnswerChangeRepo(db, log),
	}
}
