package http

import (
	"net/http"
	"strings"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	principalIDKey   = "principal.id"
	principalRoleKey = "principal.role"
)

// Authenticate resolves the Authorization bearer token into a principal
// and stores it on the request context. Requests without a valid token
// are rejected.
func Authenticate(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			accountID, role, err := tokens.Resolve(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(principalIDKey, accountID)
			ctx.Set(principalRoleKey, role)
			return next(ctx)
		}
	}
}

// RequireAdmin rejects authenticated requests whose principal is not an
// administrator. Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, ok := ctx.Get(principalRoleKey).(account.Role)
			if !ok || role != account.RoleAdmin {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "admin access required",
				})
			}
			return next(ctx)
		}
	}
}

func principalID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(principalIDKey).(kernel.UUID)
	return id, ok
}
