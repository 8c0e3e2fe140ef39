package http

import (
	"net/http"
	"strconv"

	"commerce/internal/core/domain/model/auth"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the upstream access guard. Credentials are
// verified before requests reach this service; the headers carry the
// already resolved principal.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the authenticated principal from identity
// headers and stores it on the request context. Requests without a valid
// principal are rejected before reaching any handler.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			idHeader := ctx.Request().Header.Get(HeaderUserID)
			roleHeader := ctx.Request().Header.Get(HeaderUserRole)
			if idHeader == "" || roleHeader == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    CodeUnauthenticated,
					Message: "Missing identity headers",
				})
			}

			id, err := strconv.ParseInt(idHeader, 10, 64)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    CodeUnauthenticated,
					Message: "Invalid user id header",
				})
			}

			role, err := auth.RoleFromString(roleHeader)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    CodeUnauthenticated,
					Message: "Invalid user role header",
				})
			}

			principal, err := auth.NewPrincipal(id, role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    CodeUnauthenticated,
					Message: "Invalid identity headers",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom returns the principal stored by PrincipalMiddleware.
func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	return principal, ok
}
