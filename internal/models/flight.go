// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Flight is a user's flight booking for a game. The owning user is set from
// the authenticated caller on create and cannot be changed through updates.
// Return fields must be present if and only if IsReturn is true; the
// validation package enforces the pairing rule before anything is stored.
type Flight struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	GameID           int       `gorm:"not null" json:"game_id"`
	Airline          string    `gorm:"not null" json:"airline"`
	DepartureAirport string    `gorm:"not null" json:"departure_airport"`
	ArrivalAirport   string    `gorm:"not null" json:"arrival_airport"`
	DepartureDate    string    `gorm:"not null" json:"departure_date"`
	DepartureTime    string    `gorm:"not null" json:"departure_time"`
	IsReturn         bool      `gorm:"default:false" json:"is_return"`
	ReturnDate       *string   `json:"return_date"`
	ReturnTime       *string   `json:"return_time"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
