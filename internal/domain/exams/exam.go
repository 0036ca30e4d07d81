package exams

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Exam is a persisted assembled exam: the question set a group actually sat,
// so a later correction can be tied back to it.
type Exam struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PublicID uuid.UUID `gorm:"column:public_id;type:uuid;uniqueIndex" json:"public_id"`
	GroupID  uint      `gorm:"column:group_id;not null;index" json:"group_id"`

	QuestionCount int `gorm:"column:question_count;not null;default:0" json:"question_count"`
	// QuestionIDs is the ordered id list as assembled ([]uint as jsonb).
	QuestionIDs datatypes.JSON `gorm:"column:question_ids;type:jsonb" json:"question_ids"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Exam) TableName() string { return "exam" }
