package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a user with the favorites set by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).
		Preload("Favorites").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists profile changes to an existing user. The favorites set and
// role are untouched: favorites change only through AddFavorite/RemoveFavorite.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "phone", "address").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddFavorite inserts a favorites membership, ignoring conflicts so the
// operation stays idempotent under concurrent adds.
func (r *GormUserRepository) AddFavorite(ctx context.Context, userID kernel.UUID, menuItemID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(
		"INSERT INTO user_favorites (user_id, menu_item_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		userID.Bytes(), menuItemID.Bytes(),
	).Error
}

// RemoveFavorite deletes a favorites membership. Removing an absent member
// affects zero rows and is not an error.
func (r *GormUserRepository) RemoveFavorite(ctx context.Context, userID kernel.UUID, menuItemID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(
		"DELETE FROM user_favorites WHERE user_id = ? AND menu_item_id = ?",
		userID.Bytes(), menuItemID.Bytes(),
	).Error
}
