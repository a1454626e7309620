package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListOwnerBookings handles GET /v1/owner/bookings.  It returns every
// booking against the owner's plans across all of their boats, joined with
// plan, boat and template fields, newest first.  Owners approve or decline
// PENDING bookings from this list via PATCH /v1/bookings/:id.
func (h *OwnerHandler) ListOwnerBookings(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Bookings.ListDetailsByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
