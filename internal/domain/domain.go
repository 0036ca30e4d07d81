package domain

import (
	"github.com/aulakit/aula-backend/internal/domain/audit"
	"github.com/aulakit/aula-backend/internal/domain/catalog"
	"github.com/aulakit/aula-backend/internal/domain/exams"
	"github.com/aulakit/aula-backend/internal/domain/joins"
	"github.com/aulakit/aula-backend/internal/domain/user"
)

type Teacher = user.Teacher

type Subject = catalog.Subject
type StudentGroup = catalog.StudentGroup
type Topic = catalog.Topic
type Concept = catalog.Concept
type Epigraph = catalog.Epigraph

type Question = exams.Question
type Answer = exams.Answer
type GroupQuestionStat = exams.GroupQuestionStat
type Exam = exams.Exam

const (
	QuestionKindChoice    = exams.QuestionKindChoice
	QuestionKindTrueFalse = exams.QuestionKindTrueFalse
)

type TopicConcept = joins.TopicConcept
type SubjectTopic = joins.SubjectTopic
type QuestionTopic = joins.QuestionTopic
type QuestionConcept = joins.QuestionConcept
type ConceptConcept = joins.ConceptConcept

type SubjectChange = audit.SubjectChange
type StudentGroupChange = audit.StudentGroupChange
type TopicChange = audit.TopicChange
type ConceptChange = audit.ConceptChange
type EpigraphChange = audit.EpigraphChange
type QuestionChange = audit.QuestionChange
type AnswerChange = audit.AnswerChange
