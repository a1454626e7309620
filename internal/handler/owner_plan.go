package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

const tripDateLayout = "2006-01-02"

type planReq struct {
	BoatID        uint64  `json:"boat_id" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	FishType      string  `json:"fish_type" validate:"required"`
	Price         uint32  `json:"price" validate:"required,min=1"`
	MaxPeople     uint32  `json:"max_people" validate:"required,min=1"`
	TripDate      string  `json:"trip_date" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ReturnTime    string  `json:"return_time" validate:"required"`
}

// planUpdateReq is planReq without boat_id; a plan cannot move between boats.
type planUpdateReq struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	FishType      string  `json:"fish_type" validate:"required"`
	Price         uint32  `json:"price" validate:"required,min=1"`
	MaxPeople     uint32  `json:"max_people" validate:"required,min=1"`
	TripDate      string  `json:"trip_date" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ReturnTime    string  `json:"return_time" validate:"required"`
}

type planFromTemplateReq struct {
	TemplateID uint64 `json:"template_id" validate:"required"`
	TripDate   string `json:"trip_date" validate:"required"`
}

// planResp mirrors model.FishingPlan with JSON tags.
type planResp struct {
	ID            uint64  `json:"id"`
	BoatID        uint64  `json:"boat_id"`
	TemplateID    *uint64 `json:"template_id,omitempty"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	FishType      string  `json:"fish_type"`
	Price         uint32  `json:"price"`
	MaxPeople     uint32  `json:"max_people"`
	TripDate      string  `json:"trip_date"`
	DepartureTime string  `json:"departure_time"`
	ReturnTime    string  `json:"return_time"`
}

func toPlanResp(p model.FishingPlan) planResp {
	return planResp{
		ID: p.ID, BoatID: p.BoatID, TemplateID: p.TemplateID, Title: p.Title,
		Description: p.Description, FishType: p.FishType, Price: p.Price,
		MaxPeople: p.MaxPeople, TripDate: p.TripDate.Format(tripDateLayout),
		DepartureTime: p.DepartureTime, ReturnTime: p.ReturnTime,
	}
}

// ownsBoat verifies the boat exists and belongs to the acting owner.
func (h *OwnerHandler) ownsBoat(c echo.Context, boatID, ownerID uint64) error {
	boat, err := h.Boats.GetByID(c.Request().Context(), boatID)
	if err != nil {
		if errors.Is(err, repository.ErrBoatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if boat.OwnerID != ownerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return nil
}

// ListPlans handles GET /v1/owner/plans.
func (h *OwnerHandler) ListPlans(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	plans, err := h.Plans.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]planResp, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// CreatePlan handles POST /v1/owner/plans.  The plan is one bookable date
// occurrence on a boat the owner controls.
func (h *OwnerHandler) CreatePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req planReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "boat_id, title, fish_type, price, max_people, trip_date, departure_time and return_time are required"})
	}
	tripDate, err := time.Parse(tripDateLayout, req.TripDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_date must be YYYY-MM-DD"})
	}
	if resp := h.ownsBoat(c, req.BoatID, ownerID); resp != nil {
		return resp
	}
	plan := model.FishingPlan{
		BoatID: req.BoatID, Title: req.Title, Description: req.Description,
		FishType: req.FishType, Price: req.Price, MaxPeople: req.MaxPeople,
		TripDate: tripDate, DepartureTime: req.DepartureTime, ReturnTime: req.ReturnTime,
	}
	id, err := h.Plans.Create(c.Request().Context(), &plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create plan"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// CreatePlanFromTemplate handles POST /v1/owner/plans/from-template.  It
// stamps a concrete plan occurrence for one date out of a saved template,
// copying the template fields so later template edits do not rewrite
// history.
func (h *OwnerHandler) CreatePlanFromTemplate(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req planFromTemplateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "template_id and trip_date are required"})
	}
	tripDate, err := time.Parse(tripDateLayout, req.TripDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_date must be YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	tmpl, err := h.Templates.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan template not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if resp := h.ownsBoat(c, tmpl.BoatID, ownerID); resp != nil {
		return resp
	}
	templateID := tmpl.ID
	plan := model.FishingPlan{
		BoatID: tmpl.BoatID, TemplateID: &templateID, Title: tmpl.Name,
		Description: tmpl.Description, FishType: tmpl.FishType, Price: tmpl.Price,
		MaxPeople: tmpl.MaxPeople, TripDate: tripDate,
		DepartureTime: tmpl.DepartureTime, ReturnTime: tmpl.ReturnTime,
	}
	id, err := h.Plans.Create(ctx, &plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create plan"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// UpdatePlan handles PATCH /v1/owner/plans/:id.
func (h *OwnerHandler) UpdatePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}
	var req planUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, fish_type, price, max_people, trip_date, departure_time and return_time are required"})
	}
	tripDate, err := time.Parse(tripDateLayout, req.TripDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trip_date must be YYYY-MM-DD"})
	}
	plan := model.FishingPlan{
		Title: req.Title, Description: req.Description, FishType: req.FishType,
		Price: req.Price, MaxPeople: req.MaxPeople, TripDate: tripDate,
		DepartureTime: req.DepartureTime, ReturnTime: req.ReturnTime,
	}
	if err := h.Plans.UpdateForOwner(c.Request().Context(), id, ownerID, &plan); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update plan"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeletePlan handles DELETE /v1/owner/plans/:id.  Deletion is refused with
// 409 while PENDING or CONFIRMED bookings still reference the plan, so a
// paid-for reservation can never be silently orphaned.
func (h *OwnerHandler) DeletePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}
	if err := h.Plans.DeleteForOwner(c.Request().Context(), id, ownerID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		if errors.Is(err, repository.ErrActiveBookingsExist) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "plan has active bookings and cannot be deleted"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete plan"})
	}
	return c.NoContent(http.StatusNoContent)
}
