// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines handlers for the public catalog API. These routes allow
// unauthenticated visitors to browse boats and fishing plans without an
// account. Sensitive fields (owner IDs, timestamps, etc.) are filtered
// from responses.

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
// It produces sanitized responses suitable for public consumption.
type PublicHandler struct {
	Boats *repository.BoatRepo // provides access to boat data
	Plans *repository.PlanRepo // provides access to plan data
}

// PublicBoat represents a boat exposed via the public API. It contains
// only safe fields.
type PublicBoat struct {
	ID                    uint64  `json:"id"`
	Name                  string  `json:"name"`
	Location              string  `json:"location"`
	Description           *string `json:"description,omitempty"`
	ImageURL              *string `json:"image_url,omitempty"`
	Capacity              uint32  `json:"capacity"`
	AllowMultipleBookings bool    `json:"allow_multiple_bookings"`
}

// PublicPlan represents a plan occurrence in list responses.
type PublicPlan struct {
	ID            uint64  `json:"id"`
	BoatID        uint64  `json:"boat_id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	FishType      string  `json:"fish_type"`
	Price         uint32  `json:"price"`
	MaxPeople     uint32  `json:"max_people"`
	TripDate      string  `json:"trip_date"`
	DepartureTime string  `json:"departure_time"`
	ReturnTime    string  `json:"return_time"`
}

// PublicPlanDetail is a single plan joined with its boat.
type PublicPlanDetail struct {
	PublicPlan
	Boat *PublicBoat `json:"boat,omitempty"`
}

func toPublicBoat(b model.Boat) PublicBoat {
	return PublicBoat{
		ID: b.ID, Name: b.Name, Location: b.Location, Description: b.Description,
		ImageURL: b.ImageURL, Capacity: b.Capacity,
		AllowMultipleBookings: b.AllowMultipleBookings,
	}
}

func toPublicPlan(p model.FishingPlan) PublicPlan {
	return PublicPlan{
		ID: p.ID, BoatID: p.BoatID, Title: p.Title, Description: p.Description,
		FishType: p.FishType, Price: p.Price, MaxPeople: p.MaxPeople,
		TripDate: p.TripDate.Format(tripDateLayout),
		DepartureTime: p.DepartureTime, ReturnTime: p.ReturnTime,
	}
}

// GetPublicBoats returns all active boats.  Response JSON contains an
// "items" array of PublicBoat.
func (h *PublicHandler) GetPublicBoats(c echo.Context) error {
	boats, err := h.Boats.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicBoat, 0, len(boats))
	for _, b := range boats {
		out = append(out, toPublicBoat(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicBoat returns one boat.  Inactive boats are hidden from the
// public surface.
func (h *PublicHandler) GetPublicBoat(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Boats.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !b.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toPublicBoat(b)})
}

// GetPublicPlans lists plan occurrences with optional filters: boat_id,
// fish_type (substring), max_price and q (title/description substring).
// Only plans on active boats are returned.
func (h *PublicHandler) GetPublicPlans(c echo.Context) error {
	var filter repository.PlanFilter
	if v := c.QueryParam("boat_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			filter.BoatID = id
		}
	}
	filter.FishType = c.QueryParam("fish_type")
	if v := c.QueryParam("max_price"); v != "" {
		if p, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.MaxPrice = uint32(p)
		}
	}
	filter.Query = c.QueryParam("q")

	plans, err := h.Plans.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPublicPlan(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicPlan returns one plan joined with its boat.
func (h *PublicHandler) GetPublicPlan(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	p, err := h.Plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	resp := PublicPlanDetail{PublicPlan: toPublicPlan(p)}
	if boat, err := h.Boats.GetByID(ctx, p.BoatID); err == nil {
		pb := toPublicBoat(boat)
		resp.Boat = &pb
	}
	return c.JSON(http.StatusOK, resp)
}

// GetPublicBoatPlans lists a boat's plan occurrences.
func (h *PublicHandler) GetPublicBoatPlans(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	// ensure boat exists and is publicly visible
	b, err := h.Boats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !b.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
	}
	plans, err := h.Plans.List(ctx, repository.PlanFilter{BoatID: id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPublicPlan(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
