package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

type boatReq struct {
	Name                  string  `json:"name" validate:"required"`
	Location              string  `json:"location" validate:"required"`
	Description           *string `json:"description"`
	ImageURL              *string `json:"image_url"`
	Capacity              uint32  `json:"capacity" validate:"required,min=1"`
	AllowMultipleBookings bool    `json:"allow_multiple_bookings"`
	IsActive              *bool   `json:"is_active"`
}

// boatResp mirrors model.Boat with JSON tags for owner and admin tables.
type boatResp struct {
	ID                    uint64  `json:"id"`
	OwnerID               uint64  `json:"owner_id"`
	Name                  string  `json:"name"`
	Location              string  `json:"location"`
	Description           *string `json:"description,omitempty"`
	ImageURL              *string `json:"image_url,omitempty"`
	Capacity              uint32  `json:"capacity"`
	AllowMultipleBookings bool    `json:"allow_multiple_bookings"`
	IsActive              bool    `json:"is_active"`
}

// ListBoats handles GET /v1/owner/boats.
func (h *OwnerHandler) ListBoats(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	boats, err := h.Boats.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]boatResp, 0, len(boats))
	for _, b := range boats {
		out = append(out, boatResp{
			ID: b.ID, OwnerID: b.OwnerID, Name: b.Name, Location: b.Location,
			Description: b.Description, ImageURL: b.ImageURL, Capacity: b.Capacity,
			AllowMultipleBookings: b.AllowMultipleBookings, IsActive: b.IsActive,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// CreateBoat handles POST /v1/owner/boats.
func (h *OwnerHandler) CreateBoat(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req boatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, location and capacity (>=1) are required"})
	}
	id, err := h.Boats.Create(c.Request().Context(), ownerID, req.Name, req.Location,
		req.Description, req.ImageURL, req.Capacity, req.AllowMultipleBookings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create boat"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// UpdateBoat handles PATCH /v1/owner/boats/:id.
func (h *OwnerHandler) UpdateBoat(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid boat id"})
	}
	var req boatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, location and capacity (>=1) are required"})
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	err = h.Boats.UpdateForOwner(c.Request().Context(), id, ownerID, req.Name, req.Location,
		req.Description, req.ImageURL, req.Capacity, req.AllowMultipleBookings, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update boat"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeleteBoat handles DELETE /v1/owner/boats/:id.  Plans and bookings on the
// boat are removed by the cascading foreign keys; this is a destructive
// escape hatch, not part of the normal booking lifecycle.
func (h *OwnerHandler) DeleteBoat(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid boat id"})
	}
	if err := h.Boats.DeleteForOwner(c.Request().Context(), id, ownerID); err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete boat"})
	}
	return c.NoContent(http.StatusNoContent)
}
