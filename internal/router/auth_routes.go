package router

import (
	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/handler"
	"github.com/umisachi/fishing-charter-booking/internal/middleware"
	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while the protected profile endpoint lives under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	// Registration creates the account; owner registrations also create
	// the first boat and start in PENDING approval.
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and returns a new pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a bearer token (revoke all sessions) or a
	// refresh_token body (revoke one session) and needs no JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleBoatOwner, model.RoleAdmin),
	)
	auth.GET("/me", a.Me)
}
