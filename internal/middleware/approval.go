package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

// RequireApprovedOwner blocks BOAT_OWNER accounts that have not been
// approved by an admin yet.  Admins pass through unchanged so they can act
// on the owner surface during support work.  Must run after JWTAuth.
func RequireApprovedOwner(users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get("role").(string); role == model.RoleAdmin {
				return next(c)
			}
			uid := contextUserID(c)
			if uid == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			u, err := users.GetByID(c.Request().Context(), uid)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if u.ApprovalStatus != model.ApprovalApproved {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "owner account is awaiting approval"})
			}
			if !u.IsActive {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "account is deactivated"})
			}
			return next(c)
		}
	}
}

// contextUserID converts the JWT subject stored by JWTAuth to a uint64.
// JSON numbers arrive as float64; tokens from other issuers may carry a
// string subject.
func contextUserID(c echo.Context) uint64 {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t
	case float64:
		return uint64(t)
	case int64:
		return uint64(t)
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
