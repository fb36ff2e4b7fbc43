package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves a user's own profile including their favorites.
type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for one user's profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileQueryIsNotConstructed if validation fails.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the requested user identifier.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// GetProfileQueryResponse is the profile read model.
type GetProfileQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Address   string
	Role      string
	Favorites []kernel.UUID
}
