package http

import (
	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"

	RoleMaster = "MASTER"
)

const (
	contextKeyUserID   = "identity.userId"
	contextKeyUserRole = "identity.userRole"
)

// IdentityMiddleware copies the gateway identity headers into the request
// context so handlers can scope reads to the caller.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKeyUserID, c.Request().Header.Get(HeaderUserID))
			c.Set(contextKeyUserRole, c.Request().Header.Get(HeaderUserRole))
			return next(c)
		}
	}
}

func callerUserID(c echo.Context) string {
	userID, _ := c.Get(contextKeyUserID).(string)
	return userID
}

func callerRole(c echo.Context) string {
	role, _ := c.Get(contextKeyUserRole).(string)
	return role
}
