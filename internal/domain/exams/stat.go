package exams

import "time"

// GroupQuestionStat is the running evaluation counters for one
// (student group, question) pair. Rows appear lazily on the first
// evaluation and the counters only ever grow.
type GroupQuestionStat struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID    uint `gorm:"column:group_id;not null;uniqueIndex:idx_group_question_stat_pair" json:"group_id"`
	QuestionID uint `gorm:"column:question_id;not null;uniqueIndex:idx_group_question_stat_pair" json:"question_id"`

	EvaluationCount int `gorm:"column:evaluation_count;not null;default:0" json:"evaluation_count"`
	CorrectCount    int `gorm:"column:correct_count;not null;default:0" json:"correct_count"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (GroupQuestionStat) TableName() string { return "group_question_stat" }
