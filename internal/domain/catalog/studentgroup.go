package catalog

import "time"

type StudentGroup struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEs string `gorm:"column:name_es;size:255" json:"name_es"`
	NameEn string `gorm:"column:name_en;size:255" json:"name_en"`

	Retired bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (StudentGroup) TableName() string { return "student_group" }
