package catalog

import "time"

type Topic struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleEs string `gorm:"column:title_es;size:255;index" json:"title_es"`
	TitleEn string `gorm:"column:title_en;size:255;index" json:"title_en"`

	Retired bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Topic) TableName() string { return "topic" }
