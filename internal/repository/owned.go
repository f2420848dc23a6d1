package repository

import (
	"context"
	"errors"

	"matchday/internal/models"

	"gorm.io/gorm"
)

// OwnedRepository is the scoped data access contract shared by all per-user
// resources. Every read filters on the owner and every mutation is restricted
// to the owner's own records; a foreign record behaves exactly like a missing
// one, so unauthorized access is indistinguishable from non-existence.
type OwnedRepository[T any] interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]T, error)
	GetForOwner(ctx context.Context, ownerID, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
	DeleteForOwner(ctx context.Context, ownerID, id uint) error
}

type ownedRepository[T any] struct {
	db       *gorm.DB
	resource string
}

// NewOwnedRepository returns an owner-scoped repository for a resource type.
// resource names the type in not-found errors ("Flight", "Attendance").
func NewOwnedRepository[T any](db *gorm.DB, resource string) OwnedRepository[T] {
	return &ownedRepository[T]{db: db, resource: resource}
}

func (r *ownedRepository[T]) ListByOwner(ctx context.Context, ownerID uint) ([]T, error) {
	var records []T
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *ownedRepository[T]) GetForOwner(ctx context.Context, ownerID, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(r.resource, id)
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

func (r *ownedRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ownedRepository[T]) Update(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ownedRepository[T]) DeleteForOwner(ctx context.Context, ownerID, id uint) error {
	var record T
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", ownerID, id).
		Delete(&record)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(r.resource, id)
	}
	return nil
}
