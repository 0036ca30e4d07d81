package exams

import "time"

const (
	QuestionKindChoice    = "choice"
	QuestionKindTrueFalse = "truefalse"
)

type Question struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StatementEs string `gorm:"column:statement_es;type:text" json:"statement_es"`
	StatementEn string `gorm:"column:statement_en;type:text" json:"statement_en"`

	Kind string `gorm:"column:kind;size:32;not null;default:'choice'" json:"kind"`
	// IsTrue is the expected value for truefalse questions; nil for choice
	// questions.
	IsTrue *bool `gorm:"column:is_true" json:"is_true,omitempty"`

	// Only approved, non-retired questions are eligible for exam assembly.
	Approved bool `gorm:"column:approved;not null;default:true;index" json:"approved"`
	Retired  bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Question) TableName() string { return "question" }
