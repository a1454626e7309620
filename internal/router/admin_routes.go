package router

import (
	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/handler"
	"github.com/umisachi/fishing-charter-booking/internal/middleware"
	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// RegisterAdmin registers the back-office endpoints under /v1/admin.  All
// routes require a valid JWT with the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.GET("/stats", a.Stats)
	g.GET("/users", a.ListUsers)
	g.PATCH("/users/:id/status", a.UpdateUserStatus)
	g.PATCH("/users/:id/approval", a.UpdateUserApproval)
	g.GET("/bookings", a.ListBookings)
	g.DELETE("/bookings/:id", a.DeleteBooking)
	g.GET("/boats", a.ListBoats)
	g.GET("/plans", a.ListPlans)
}
