package user

import (
	"marketplace/internal/pkg/errs"
)

// Role classifies what kind of actor a user is. Authorization decisions are
// made against roles by the access policy; ownership checks stay on the
// individual aggregates.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders, writes reviews and manages favorites.
	RoleCustomer

	// RoleRestaurantOwner owns restaurants and manages their menus and orders.
	RoleRestaurantOwner

	// RoleRestaurantManager manages menus and orders of restaurants that list them.
	RoleRestaurantManager

	// RoleDeliveryDriver picks up and delivers orders.
	RoleDeliveryDriver

	// RoleAdmin overrides ownership checks on restaurant administration.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their wire representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:           "unknown",
		RoleCustomer:          "customer",
		RoleRestaurantOwner:   "restaurant_owner",
		RoleRestaurantManager: "restaurant_manager",
		RoleDeliveryDriver:    "delivery_driver",
		RoleAdmin:             "admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:          "customer",
		RoleRestaurantOwner:   "restaurant_owner",
		RoleRestaurantManager: "restaurant_manager",
		RoleDeliveryDriver:    "delivery_driver",
		RoleAdmin:             "admin",
	}
}

// RoleFromString parses a wire representation ("customer", "admin", ...) into
// a Role. Returns an error for unknown or empty strings.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role: " + s)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the wire representation of the role.
// Returns "unknown" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
