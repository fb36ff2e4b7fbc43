package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves a user's profile and favorites.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile reads.
// Requires a GORM database connection for query execution.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError if the user does not exist.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var response GetProfileQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			address,
			role
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	if err := row.Scan(&id, &response.Name, &response.Phone, &response.Address, &response.Role); err != nil {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("userID", query.UserID(), err)
	}

	var err error
	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProfileQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id
		FROM user_favorites
		WHERE user_id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	defer rows.Close()

	response.Favorites = make([]kernel.UUID, 0)
	for rows.Next() {
		var menuItemID uuid.UUID
		if err = rows.Scan(&menuItemID); err != nil {
			return GetProfileQueryResponse{}, err
		}

		favorite, convErr := kernel.UUIDFromBytes(menuItemID[:])
		if convErr != nil {
			return GetProfileQueryResponse{}, convErr
		}
		response.Favorites = append(response.Favorites, favorite)
	}

	if err = rows.Err(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return response, nil
}
