package handler // declare the package name; contains HTTP handlers

import (
	"context"      // timeout context for the DB ping
	"database/sql" // database handle for the DB ping check
	"net/http"     // net/http provides status codes and response helpers
	"time"         // timeout for the ping

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health‑check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// HealthDB returns a handler that pings the database with a short timeout.
// A failed ping responds 503 so orchestrators can take the instance out of
// rotation while the database is unreachable.
func HealthDB(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "down", "error": "database unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
