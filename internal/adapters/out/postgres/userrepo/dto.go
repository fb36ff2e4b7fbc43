// Package userrepo provides data transfer objects and mapping functions for
// user persistence, including the favorites set.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Address   string
	Role      string        `gorm:"type:varchar(32)"`
	Favorites []FavoriteDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// FavoriteDTO represents one favorites-set membership. The composite primary
// key makes membership unique; inserts ignore conflicts so adds stay
// idempotent under concurrency.
type FavoriteDTO struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for favorites memberships.
func (FavoriteDTO) TableName() string {
	return "user_favorites"
}

// fromDomain converts a user aggregate to its database representation.
// Favorites are not included: membership changes go through the dedicated
// atomic set operations, never through whole-aggregate writes.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Phone:   aggregate.Phone(),
		Address: aggregate.Address(),
		Role:    aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	favorites := make([]kernel.UUID, 0, len(dto.Favorites))
	for _, favoriteDTO := range dto.Favorites {
		menuItemID, favErr := kernel.UUIDFromBytes(favoriteDTO.MenuItemID[:])
		if favErr != nil {
			return nil, favErr
		}
		favorites = append(favorites, menuItemID)
	}

	return user.RestoreUser(id, dto.Name, dto.Phone, dto.Address, role, favorites)
}
