// Package joins holds the relationship ledger rows: many-to-many association
// records between catalog and exam entities. Pair uniqueness is enforced by
// composite unique indexes; the ordered relations additionally keep order_id
// unique within the parent's scope.
package joins

import "time"

type TopicConcept struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID   uint      `gorm:"column:topic_id;not null;uniqueIndex:idx_topic_concept_pair;uniqueIndex:idx_topic_concept_order" json:"topic_id"`
	ConceptID uint      `gorm:"column:concept_id;not null;uniqueIndex:idx_topic_concept_pair" json:"concept_id"`
	OrderID   int       `gorm:"column:order_id;not null;uniqueIndex:idx_topic_concept_order" json:"order_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (TopicConcept) TableName() string { return "topic_concept" }

type SubjectTopic struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubjectID uint      `gorm:"column:subject_id;not null;uniqueIndex:idx_subject_topic_pair;uniqueIndex:idx_subject_topic_order" json:"subject_id"`
	TopicID   uint      `gorm:"column:topic_id;not null;uniqueIndex:idx_subject_topic_pair" json:"topic_id"`
	OrderID   int       `gorm:"column:order_id;not null;uniqueIndex:idx_subject_topic_order" json:"order_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SubjectTopic) TableName() string { return "subject_topic" }

type QuestionTopic struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint      `gorm:"column:question_id;not null;uniqueIndex:idx_question_topic_pair" json:"question_id"`
	TopicID    uint      `gorm:"column:topic_id;not null;uniqueIndex:idx_question_topic_pair;index" json:"topic_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (QuestionTopic) TableName() string { return "question_topic" }

type QuestionConcept struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint      `gorm:"column:question_id;not null;uniqueIndex:idx_question_concept_pair" json:"question_id"`
	ConceptID  uint      `gorm:"column:concept_id;not null;uniqueIndex:idx_question_concept_pair;index" json:"concept_id"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (QuestionConcept) TableName() string { return "question_concept" }

// ConceptConcept is a directional concept-to-concept edge. Bidirectional
// links are stored as two mirrored rows written in one transaction.
type ConceptConcept struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FromID    uint      `gorm:"column:from_id;not null;uniqueIndex:idx_concept_concept_pair" json:"from_id"`
	ToID      uint      `gorm:"column:to_id;not null;uniqueIndex:idx_concept_concept_pair;index" json:"to_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ConceptConcept) TableName() string { return "concept_concept" }
