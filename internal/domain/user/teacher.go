package user

import "time"

// Teacher is the actor referenced by change records. Account management and
// login live outside this service; rows exist so audit rows have something
// to point at, and are seeded by the bootstrap command.
type Teacher struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Admin     bool      `gorm:"column:admin;not null;default:false" json:"admin"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Teacher) TableName() string { return "teacher" }
