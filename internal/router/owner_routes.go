package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/handler"    // owner handlers
	"github.com/umisachi/fishing-charter-booking/internal/middleware" // JWT + role middlewares
	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

// RegisterOwner registers BOAT_OWNER-scoped endpoints under /v1/owner.
// All routes require a valid JWT, the owner role (admins pass too) and an
// APPROVED owner account.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group(
		"/v1/owner",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleBoatOwner, model.RoleAdmin),
		middleware.RequireApprovedOwner(users),
	)

	// ---- Boats ----
	g.GET("/boats", o.ListBoats)
	g.POST("/boats", o.CreateBoat)
	g.PATCH("/boats/:id", o.UpdateBoat)
	g.DELETE("/boats/:id", o.DeleteBoat)

	// ---- Plan occurrences ----
	g.GET("/plans", o.ListPlans)
	g.POST("/plans", o.CreatePlan)
	g.POST("/plans/from-template", o.CreatePlanFromTemplate)
	g.PATCH("/plans/:id", o.UpdatePlan)
	// Refused with 409 while active bookings reference the plan.
	g.DELETE("/plans/:id", o.DeletePlan)

	// ---- Plan templates ----
	g.GET("/plan-templates", o.ListTemplates)
	g.POST("/plan-templates", o.CreateTemplate)
	g.PATCH("/plan-templates/:id", o.UpdateTemplate)
	g.DELETE("/plan-templates/:id", o.DeleteTemplate)

	// ---- Bookings dashboard ----
	g.GET("/bookings", o.ListOwnerBookings)
}
