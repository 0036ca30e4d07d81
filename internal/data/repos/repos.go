package repos

import (
	"gorm.io/gorm"

	"github.com/aulakit/aula-backend/internal/data/repos/audit"
	"github.com/aulakit/aula-backend/internal/data/repos/catalog"
	"github.com/aulakit/aula-backend/internal/data/repos/exams"
	"github.com/aulakit/aula-backend/internal/data/repos/joins"
	"github.com/aulakit/aula-backend/internal/data/repos/user"
	types "github.com/aulakit/aula-backend/internal/domain"
	"github.com/aulakit/aula-backend/internal/platform/logger"
)

type TeacherRepo = user.TeacherRepo

type SubjectRepo = catalog.SubjectRepo
type StudentGroupRepo = catalog.StudentGroupRepo
type TopicRepo = catalog.TopicRepo
type ConceptRepo = catalog.ConceptRepo
type EpigraphRepo = catalog.EpigraphRepo

type QuestionRepo = exams.QuestionRepo
type AnswerRepo = exams.AnswerRepo
type GroupQuestionStatRepo = exams.GroupQuestionStatRepo
type ExamRepo = exams.ExamRepo

type TopicConceptRepo = joins.TopicConceptRepo
type SubjectTopicRepo = joins.SubjectTopicRepo
type QuestionTopicRepo = joins.QuestionTopicRepo
type QuestionConceptRepo = joins.QuestionConceptRepo
type ConceptConceptRepo = joins.ConceptConceptRepo

type SubjectChangeRepo = audit.ChangeRepo[types.SubjectChange]
type StudentGroupChangeRepo = audit.ChangeRepo[types.StudentGroupChange]
type TopicChangeRepo = audit.ChangeRepo[types.TopicChange]
type ConceptChangeRepo = audit.ChangeRepo[types.ConceptChange]
type EpigraphChangeRepo = audit.ChangeRepo[types.EpigraphChange]
type QuestionChangeRepo = audit.ChangeRepo[types.QuestionChange]
type AnswerChangeRepo = audit.ChangeRepo[types.AnswerChange]

func NewTeacherRepo(db *gorm.DB, baseLog *logger.Logger) TeacherRepo {
	return user.NewTeacherRepo(db, baseLog)
}

func NewSubjectRepo(db *gorm.DB, baseLog *logger.Logger) SubjectRepo {
	return catalog.NewSubjectRepo(db, baseLog)
}
func NewStudentGroupRepo(db *gorm.DB, baseLog *logger.Logger) StudentGroupRepo {
	return catalog.NewStudentGroupRepo(db, baseLog)
}
func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return catalog.NewTopicRepo(db, baseLog)
}
func NewConceptRepo(db *gorm.DB, baseLog *logger.Logger) ConceptRepo {
	return catalog.NewConceptRepo(db, baseLog)
}
func NewEpigraphRepo(db *gorm.DB, baseLog *logger.Logger) EpigraphRepo {
	return catalog.NewEpigraphRepo(db, baseLog)
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return exams.NewQuestionRepo(db, baseLog)
}
func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return exams.NewAnswerRepo(db, baseLog)
}
func NewGroupQuestionStatRepo(db *gorm.DB, baseLog *logger.Logger) GroupQuestionStatRepo {
	return exams.NewGroupQuestionStatRepo(db, baseLog)
}
func NewExamRepo(db *gorm.DB, baseLog *logger.Logger) ExamRepo {
	return exams.NewExamRepo(db, baseLog)
}

func NewTopicConceptRepo(db *gorm.DB, baseLog *logger.Logger) TopicConceptRepo {
	return joins.NewTopicConceptRepo(db, baseLog)
}
func NewSubjectTopicRepo(db *gorm.DB, baseLog *logger.Logger) SubjectTopicRepo {
	return joins.NewSubjectTopicRepo(db, baseLog)
}
func NewQuestionTopicRepo(db *gorm.DB, baseLog *logger.Logger) QuestionTopicRepo {
	return joins.NewQuestionTopicRepo(db, baseLog)
}
func NewQuestionConceptRepo(db *gorm.DB, baseLog *logger.Logger) QuestionConceptRepo {
	return joins.NewQuestionConceptRepo(db, baseLog)
}
func NewConceptConceptRepo(db *gorm.DB, baseLog *logger.Logger) ConceptConceptRepo {
	return joins.NewConceptConceptRepo(db, baseLog)
}

func NewSubjectChangeRepo(db *gorm.DB, baseLog *logger.Logger) SubjectChangeRepo {
	return audit.NewSubjectChangeRepo(db, baseLog)
}
func NewStudentGroupChangeRepo(db *gorm.DB, baseLog *logger.Logger) StudentGroupChangeRepo {
	return audit.NewStudentGroupChangeRepo(db, baseLog)
}
func NewTopicChangeRepo(db *gorm.DB, baseLog *logger.Logger) TopicChangeRepo {
	return audit.NewTopicChangeRepo(db, baseLog)
}
func NewConceptChangeRepo(db *gorm.DB, baseLog *logger.Logger) ConceptChangeRepo {
	return audit.NewConceptChangeRepo(db, baseLog)
}
func NewEpigraphChangeRepo(db *gorm.DB, baseLog *logger.Logger) EpigraphChangeRepo {
	return audit.NewEpigraphChangeRepo(db, baseLog)
}
func NewQuestionChangeRepo(db *gorm.DB, baseLog *logger.Logger) QuestionChangeRepo {
	return audit.NewQuestionChangeRepo(db, baseLog)
}
func NewAnswerChangeRepo(db *gorm.DB, baseLog *logger.Logger) AnswerChangeRepo {
	return audit.NewAnswerChangeRepo(db, baseLog)
}
