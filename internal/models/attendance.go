// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Attendance records that a user is going to a game. Owner-scoped like Flight.
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	GameID    int       `gorm:"not null" json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (Attendance) TableName() string {
	return "attendances"
}
