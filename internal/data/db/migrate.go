package db

import (
	types "github.com/aulakit/aula-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Actors
		&types.Teacher{},

		// Catalog entities
		&types.Subject{},
		&types.StudentGroup{},
		&types.Topic{},
		&types.Concept{},
		&types.Epigraph{},

		// Exams
		&types.Question{},
		&types.Answer{},
		&types.GroupQuestionStat{},
		&types.Exam{},

		// Relationship ledger
		&types.TopicConcept{},
		&types.SubjectTopic{},
		&types.QuestionTopic{},
		&types.QuestionConcept{},
		&types.ConceptConcept{},

		// Audit log, one table per kind
		&types.SubjectChange{},
		&types.StudentGroupChange{},
		&types.TopicChange{},
		&types.ConceptChange{},
		&types.EpigraphChange{},
		&types.QuestionChange{},
		&types.AnswerChange{},
	)
}
