package services

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated actor performing a request. Authentication
// itself happens upstream (gateway middleware); the principal carries only the
// identifier and role that authorization decisions need.
type Principal struct {
	id   kernel.UUID
	role user.Role

	isConstructed bool
}

// NewPrincipal creates a principal with a validated identifier and role.
func NewPrincipal(id kernel.UUID, role user.Role) (Principal, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}
	return Principal{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the principal was created through NewPrincipal.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the principal's user identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() user.Role {
	return p.role
}

// Action names an operation a principal may attempt. Actions are the keys of
// the access policy table; handlers authorize against actions, never against
// raw role strings.
type Action string

const (
	ActionRestaurantCreate Action = "restaurant.create"
	ActionRestaurantUpdate Action = "restaurant.update"
	ActionRestaurantDelete Action = "restaurant.delete"

	ActionMenuCreate Action = "menu.create"
	ActionMenuUpdate Action = "menu.update"
	ActionMenuDelete Action = "menu.delete"

	ActionOrderCreate         Action = "order.create"
	ActionOrderRead           Action = "order.read"
	ActionOrderListCustomer   Action = "order.list.customer"
	ActionOrderListRestaurant Action = "order.list.restaurant"
	ActionOrderListDriver     Action = "order.list.driver"
	ActionOrderTransition     Action = "order.transition"

	ActionReviewCreate Action = "review.create"

	ActionFavoritesManage Action = "favorites.manage"

	ActionProfileRead   Action = "profile.read"
	ActionProfileUpdate Action = "profile.update"
)

// AccessPolicy is a domain service answering "may this role perform that
// action". It replaces scattered per-handler role comparisons with one table
// evaluated uniformly; ownership checks (is this user the owner of that
// restaurant) remain on the aggregates themselves.
//
// Example:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(principal, services.ActionOrderTransition); err != nil {
//	    // 403: customers may not change order status
//	}
type AccessPolicy struct {
	table map[Action][]user.Role
}

// NewAccessPolicy creates the policy with the fixed role table of the service.
func NewAccessPolicy() AccessPolicy {
	anyAuthenticated := []user.Role{
		user.RoleCustomer,
		user.RoleRestaurantOwner,
		user.RoleRestaurantManager,
		user.RoleDeliveryDriver,
		user.RoleAdmin,
	}

	return AccessPolicy{
		table: map[Action][]user.Role{
			ActionRestaurantCreate: {user.RoleRestaurantOwner, user.RoleAdmin},
			ActionRestaurantUpdate: {user.RoleRestaurantOwner, user.RoleRestaurantManager, user.RoleAdmin},
			ActionRestaurantDelete: {user.RoleRestaurantOwner, user.RoleAdmin},

			ActionMenuCreate: {user.RoleRestaurantOwner, user.RoleRestaurantManager},
			ActionMenuUpdate: {user.RoleRestaurantOwner, user.RoleRestaurantManager},
			ActionMenuDelete: {user.RoleRestaurantOwner, user.RoleRestaurantManager},

			ActionOrderCreate:         {user.RoleCustomer},
			ActionOrderRead:           anyAuthenticated,
			ActionOrderListCustomer:   {user.RoleCustomer},
			ActionOrderListRestaurant: {user.RoleRestaurantOwner, user.RoleRestaurantManager},
			ActionOrderListDriver:     {user.RoleDeliveryDriver},
			ActionOrderTransition: {
				user.RoleRestaurantOwner,
				user.RoleRestaurantManager,
				user.RoleDeliveryDriver,
			},

			ActionReviewCreate: {user.RoleCustomer},

			ActionFavoritesManage: {user.RoleCustomer},

			ActionProfileRead:   anyAuthenticated,
			ActionProfileUpdate: anyAuthenticated,
		},
	}
}

// Allows reports whether the role may perform the action.
// Unknown actions are always denied.
func (p AccessPolicy) Allows(role user.Role, action Action) bool {
	for _, allowed := range p.table[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Authorize checks the principal against the table and returns a
// *errs.NotAuthorizedError if the principal's role may not perform the action.
func (p AccessPolicy) Authorize(principal Principal, action Action) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !p.Allows(principal.Role(), action) {
		return errs.NewNotAuthorizedError(principal.Role().String(), string(action))
	}
	return nil
}
