package catalog

import "time"

type Concept struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEs        string `gorm:"column:name_es;size:255;index" json:"name_es"`
	NameEn        string `gorm:"column:name_en;size:255;index" json:"name_en"`
	DescriptionEs string `gorm:"column:description_es;type:text" json:"description_es"`
	DescriptionEn string `gorm:"column:description_en;type:text" json:"description_en"`

	Retired bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Concept) TableName() string { return "concept" }
