package http

import (
	"net/http"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Headers carrying the gateway-verified principal.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// principal extracts the authenticated actor from the request headers.
// A missing or malformed principal on an authenticated route is an
// authorization failure, not a validation one: the gateway should never
// forward such a request, so we treat it as a denied actor.
func (s *Server) principal(ctx echo.Context) (services.Principal, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return services.Principal{}, echo.NewHTTPError(http.StatusForbidden, "missing or invalid principal")
	}

	role, err := user.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return services.Principal{}, echo.NewHTTPError(http.StatusForbidden, "missing or invalid principal")
	}

	principal, err := services.NewPrincipal(id, role)
	if err != nil {
		return services.Principal{}, echo.NewHTTPError(http.StatusForbidden, "missing or invalid principal")
	}

	return principal, nil
}

// authorize resolves the principal and checks it against the policy table.
func (s *Server) authorize(ctx echo.Context, action services.Action) (services.Principal, error) {
	principal, err := s.principal(ctx)
	if err != nil {
		return services.Principal{}, err
	}

	if err := s.policy.Authorize(principal, action); err != nil {
		return services.Principal{}, err
	}

	return principal, nil
}
