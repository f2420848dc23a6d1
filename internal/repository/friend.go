package repository

import (
	"context"
	"errors"

	"matchday/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend request data operations.
type FriendRepository interface {
	// Create inserts a pending edge. A unique-index collision on the ordered
	// (from, to) pair is reported as DuplicateRequest.
	Create(ctx context.Context, request *models.FriendRequest) error
	GetByID(ctx context.Context, id uint) (*models.FriendRequest, error)
	// GetByUsers looks up the edge for the ordered pair (fromID, toID).
	// Returns (nil, nil) when no edge exists.
	GetByUsers(ctx context.Context, fromID, toID uint) (*models.FriendRequest, error)
	// TransitionPending atomically moves the pending edge (fromID -> toID)
	// into the given terminal status. RequestNotFound is returned when no
	// such edge exists or it is no longer pending; a concurrent accept and
	// decline therefore cannot both win.
	TransitionPending(ctx context.Context, toID, fromID uint, status models.FriendRequestStatus) (*models.FriendRequest, error)
	GetPendingReceived(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	GetPendingSent(ctx context.Context, userID uint) ([]models.FriendRequest, error)
	// GetFriends returns users connected to userID by an accepted edge in
	// either direction.
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewDuplicateRequestError()
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("FromUser").Preload("ToUser").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) GetByUsers(ctx context.Context, fromID, toID uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromID, toID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no edge for this ordered pair
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) TransitionPending(ctx context.Context, toID, fromID uint, status models.FriendRequestStatus) (*models.FriendRequest, error) {
	// Single conditional UPDATE guards the pending->terminal transition:
	// whichever of accept/decline runs second matches zero rows.
	res := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("to_user_id = ? AND from_user_id = ? AND status = ?",
			toID, fromID, models.FriendRequestStatusPending).
		Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewRequestNotFoundError()
	}

	var request models.FriendRequest
	if err := r.db.WithContext(ctx).
		Preload("FromUser").Preload("ToUser").
		Where("to_user_id = ? AND from_user_id = ?", toID, fromID).
		First(&request).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *friendRepository) GetPendingReceived(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("FromUser").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRepository) GetPendingSent(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Preload("ToUser").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	// Reciprocal accepted edges (A->B and B->A) would otherwise join the same
	// user twice.
	if err := r.db.WithContext(ctx).
		Table("users").
		Distinct("users.*").
		Joins("JOIN friend_requests f ON (users.id = f.from_user_id OR users.id = f.to_user_id)").
		Where("f.status = ? AND (f.from_user_id = ? OR f.to_user_id = ?) AND users.id != ?",
			models.FriendRequestStatusAccepted, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
