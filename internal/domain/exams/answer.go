package exams

import "time"

type Answer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint   `gorm:"column:question_id;not null;index" json:"question_id"`
	TextEs     string `gorm:"column:text_es;type:text" json:"text_es"`
	TextEn     string `gorm:"column:text_en;type:text" json:"text_en"`
	Correct    bool   `gorm:"column:correct;not null;default:false" json:"correct"`

	Retired bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Answer) TableName() string { return "answer" }
