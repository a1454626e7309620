package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/repository"
)

type templateReq struct {
	BoatID        uint64  `json:"boat_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Description   *string `json:"description"`
	FishType      string  `json:"fish_type" validate:"required"`
	Price         uint32  `json:"price" validate:"required,min=1"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ReturnTime    string  `json:"return_time" validate:"required"`
	MaxPeople     uint32  `json:"max_people" validate:"required,min=1"`
}

// templateUpdateReq is templateReq without boat_id; a template stays on
// its boat.
type templateUpdateReq struct {
	Name          string  `json:"name" validate:"required"`
	Description   *string `json:"description"`
	FishType      string  `json:"fish_type" validate:"required"`
	Price         uint32  `json:"price" validate:"required,min=1"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ReturnTime    string  `json:"return_time" validate:"required"`
	MaxPeople     uint32  `json:"max_people" validate:"required,min=1"`
}

type templateResp struct {
	ID            uint64  `json:"id"`
	BoatID        uint64  `json:"boat_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	FishType      string  `json:"fish_type"`
	Price         uint32  `json:"price"`
	DepartureTime string  `json:"departure_time"`
	ReturnTime    string  `json:"return_time"`
	MaxPeople     uint32  `json:"max_people"`
}

// ListTemplates handles GET /v1/owner/plan-templates.
func (h *OwnerHandler) ListTemplates(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	templates, err := h.Templates.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]templateResp, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateResp{
			ID: t.ID, BoatID: t.BoatID, Name: t.Name, Description: t.Description,
			FishType: t.FishType, Price: t.Price, DepartureTime: t.DepartureTime,
			ReturnTime: t.ReturnTime, MaxPeople: t.MaxPeople,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// CreateTemplate handles POST /v1/owner/plan-templates.
func (h *OwnerHandler) CreateTemplate(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req templateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "boat_id, name, fish_type, price, departure_time, return_time and max_people are required"})
	}
	if resp := h.ownsBoat(c, req.BoatID, ownerID); resp != nil {
		return resp
	}
	tmpl := model.PlanTemplate{
		BoatID: req.BoatID, Name: req.Name, Description: req.Description,
		FishType: req.FishType, Price: req.Price, DepartureTime: req.DepartureTime,
		ReturnTime: req.ReturnTime, MaxPeople: req.MaxPeople,
	}
	id, err := h.Templates.Create(c.Request().Context(), &tmpl)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create template"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// UpdateTemplate handles PATCH /v1/owner/plan-templates/:id.  Edits do not
// touch plan occurrences already stamped from the template.
func (h *OwnerHandler) UpdateTemplate(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}
	var req templateUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, fish_type, price, departure_time, return_time and max_people are required"})
	}
	tmpl := model.PlanTemplate{
		Name: req.Name, Description: req.Description, FishType: req.FishType,
		Price: req.Price, DepartureTime: req.DepartureTime,
		ReturnTime: req.ReturnTime, MaxPeople: req.MaxPeople,
	}
	if err := h.Templates.UpdateForOwner(c.Request().Context(), id, ownerID, &tmpl); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan template not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update template"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// DeleteTemplate handles DELETE /v1/owner/plan-templates/:id.
func (h *OwnerHandler) DeleteTemplate(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid template id"})
	}
	if err := h.Templates.DeleteForOwner(c.Request().Context(), id, ownerID); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan template not found"})
		}
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete template"})
	}
	return c.NoContent(http.StatusNoContent)
}
