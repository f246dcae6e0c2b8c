package http

import (
	"net/http"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Caller identity arrives in trusted headers set by the gateway. The identity
// subsystem itself is external; this adapter only reads its verdict.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Roles the gateway may assert.
const (
	RoleCustomer = "customer"
	RoleCourier  = "courier"
	RoleMerchant = "merchant"
)

// callerID extracts the authenticated user from the request headers and
// checks the asserted role. Returns an echo.HTTPError ready to be returned
// from the route handler.
func callerID(ctx echo.Context, requiredRole string) (kernel.UUID, error) {
	rawID := ctx.Request().Header.Get(headerUserID)
	if rawID == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+headerUserID+" header")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+headerUserID+" header")
	}

	if role := ctx.Request().Header.Get(headerUserRole); role != requiredRole {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "requires role "+requiredRole)
	}

	return id, nil
}
