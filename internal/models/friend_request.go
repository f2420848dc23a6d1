// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// FriendRequestStatus represents the status of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates a request awaiting a decision by the recipient.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted indicates an accepted request. Terminal.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	// FriendRequestStatusRejected indicates a declined request. Terminal.
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed edge from the requesting user to the recipient.
// The composite unique index on (from_user_id, to_user_id) guarantees at most
// one edge per ordered pair even under concurrent sends; the handler-level
// duplicate check alone is not atomic.
type FriendRequest struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	FromUserID uint                `gorm:"not null;uniqueIndex:idx_friend_request_users" json:"from_user_id"`
	ToUserID   uint                `gorm:"not null;uniqueIndex:idx_friend_request_users" json:"to_user_id"`
	Status     FriendRequestStatus `gorm:"type:varchar(20);default:'pending';index:idx_friend_requests_status" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	// Relationships
	FromUser User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}
