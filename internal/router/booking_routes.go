package router

import (
	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/handler"
	"github.com/umisachi/fishing-charter-booking/internal/middleware"
	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// RegisterBooking registers the booking engine endpoints.  Creation is open
// to guests (rate limited); the handler attributes the booking to a user
// when a valid bearer token accompanies the request.  Status transitions
// require authentication and are authorized per role inside the handler.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	e.POST("/v1/bookings", b.CreateBooking, limiter)
	e.GET("/v1/bookings/:id", b.GetBooking)
	e.PATCH("/v1/bookings/:id", b.UpdateBookingStatus,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleBoatOwner, model.RoleAdmin),
	)

	// Customers (and owners or admins booking for themselves) list their
	// own bookings here.
	e.GET("/v1/my-bookings", b.ListMyBookings,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleBoatOwner, model.RoleAdmin),
	)
}
