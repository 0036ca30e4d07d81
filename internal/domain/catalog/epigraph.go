package catalog

import "time"

// Epigraph is a titled text section hanging off a topic.
type Epigraph struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID uint   `gorm:"column:topic_id;not null;index" json:"topic_id"`
	OrderID int    `gorm:"column:order_id;not null;default:0" json:"order_id"`
	TitleEs string `gorm:"column:title_es;size:255" json:"title_es"`
	TitleEn string `gorm:"column:title_en;size:255" json:"title_en"`
	BodyEs  string `gorm:"column:body_es;type:text" json:"body_es"`
	BodyEn  string `gorm:"column:body_en;type:text" json:"body_en"`

	Retired bool `gorm:"column:retired;not null;default:false;index" json:"retired"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Epigraph) TableName() string { return "epigraph" }
