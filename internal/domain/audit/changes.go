// Package audit holds the per-kind change-record tables. Every mutation on a
// tracked entity appends exactly one row here, in the same transaction as the
// mutation itself.
//
// PrevID and NewID reference rows of the entity's own table. Exactly one of
// them may be nil: (nil, new) is a creation, (prev, new) an update,
// (prev, nil) a deletion. PrevID always points at an immutable retired
// snapshot; NewID points at the live row. EntityID is the durable live id so
// an entity's full history stays addressable after its deletion.
//
// Rows are immutable once written; retention sweeps delete them in bulk.
package audit

import "time"

type SubjectChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (SubjectChange) TableName() string { return "subject_change" }

type StudentGroupChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (StudentGroupChange) TableName() string { return "student_group_change" }

type TopicChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (TopicChange) TableName() string { return "topic_change" }

type ConceptChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (ConceptChange) TableName() string { return "concept_change" }

type EpigraphChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (EpigraphChange) TableName() string { return "epigraph_change" }

type QuestionChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (QuestionChange) TableName() string { return "question_change" }

type AnswerChange struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID  uint      `gorm:"column:entity_id;not null;index" json:"entity_id"`
	PrevID    *uint     `gorm:"column:prev_id" json:"prev_id,omitempty"`
	NewID     *uint     `gorm:"column:new_id" json:"new_id,omitempty"`
	TeacherID *uint     `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (AnswerChange) TableName() string { return "answer_change" }
