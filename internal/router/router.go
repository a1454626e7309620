package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql" // database handle for the health check

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/umisachi/fishing-charter-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers the operational endpoints that require no
// authentication: the liveness check and the database readiness check.
func RegisterRoutes(e *echo.Echo, db *sql.DB) {
	// Load balancers and monitoring poll these to verify the service is up.
	e.GET("/healthz", handler.Health)
	e.GET("/healthz/db", handler.HealthDB(db))
}

// RegisterPublic registers the unauthenticated catalog browse endpoints.
// Responses are cached by the provided middleware (a no-op when caching is
// disabled); guests can inspect boats and plan occurrences before booking.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	// All boats currently in operation.
	g.GET("/boats", p.GetPublicBoats)
	// One boat's public profile.
	g.GET("/boats/:id", p.GetPublicBoat)
	// Plan occurrences on one boat.
	g.GET("/boats/:id/plans", p.GetPublicBoatPlans)
	// Plan search across all boats: ?boat_id=&fish_type=&max_price=&q=.
	g.GET("/plans", p.GetPublicPlans)
	// Plan detail joined with its boat.
	g.GET("/plans/:id", p.GetPublicPlan)
}
