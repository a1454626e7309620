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

// AdminHandler serves the back-office endpoints: platform stats, account
// moderation and full-table views of boats, plans and bookings.
type AdminHandler struct {
	Users    *repository.UserRepo
	Boats    *repository.BoatRepo
	Plans    *repository.PlanRepo
	Bookings *repository.BookingRepo
}

func NewAdminHandler(users *repository.UserRepo, boats *repository.BoatRepo, plans *repository.PlanRepo, bookings *repository.BookingRepo) *AdminHandler {
	if users == nil || boats == nil || plans == nil || bookings == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Users: users, Boats: boats, Plans: plans, Bookings: bookings}
}

// Stats handles GET /v1/admin/stats.  It reports the current calendar
// month: confirmed bookings, their revenue, newly registered users, plus
// the number of owner accounts awaiting approval.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	bookings, err := h.Bookings.CountConfirmedBetween(ctx, monthStart, nextMonth)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	revenue, err := h.Bookings.SumRevenueBetween(ctx, monthStart, nextMonth)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	newUsers, err := h.Users.CountCreatedBetween(ctx, monthStart, nextMonth)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	pendingOwners, err := h.Users.CountPendingOwners(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"month":            monthStart.Format("2006-01"),
		"monthly_bookings": bookings,
		"monthly_revenue":  revenue,
		"new_users":        newUsers,
		"pending_owners":   pendingOwners,
	})
}

// adminUser is the account shape shown in the admin user table.  The
// password hash never leaves the repository layer.
type adminUser struct {
	ID             uint64 `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	ApprovalStatus string `json:"approval_status"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		out = append(out, adminUser{
			ID: u.ID, Email: u.Email, Name: u.Name, Phone: u.PhoneNumber,
			Role: u.Role, ApprovalStatus: u.ApprovalStatus, IsActive: u.IsActive,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type userStatusReq struct {
	IsActive *bool `json:"is_active"`
}

// UpdateUserStatus handles PATCH /v1/admin/users/:id/status to activate or
// deactivate an account.
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req userStatusReq
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_active is required"})
	}
	if err := h.Users.SetActive(c.Request().Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

type approvalReq struct {
	Approval string `json:"approval"` // APPROVED | REJECTED
}

// UpdateUserApproval handles PATCH /v1/admin/users/:id/approval to approve
// or reject a boat owner application.
func (h *AdminHandler) UpdateUserApproval(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req approvalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	approval := strings.ToUpper(strings.TrimSpace(req.Approval))
	if approval != model.ApprovalApproved && approval != model.ApprovalRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "approval must be APPROVED or REJECTED"})
	}
	ctx := c.Request().Context()
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if u.Role != model.RoleBoatOwner {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user is not a boat owner"})
	}
	if err := h.Users.SetApproval(ctx, id, approval); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update approval"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// ListBookings handles GET /v1/admin/bookings.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	items, err := h.Bookings.ListDetailsAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// DeleteBooking handles DELETE /v1/admin/bookings/:id.  Hard delete;
// normal flows cancel through the status transition instead.
func (h *AdminHandler) DeleteBooking(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete booking"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBoats handles GET /v1/admin/boats (all boats, active or not).
func (h *AdminHandler) ListBoats(c echo.Context) error {
	boats, err := h.Boats.ListAll(c.Request().Context())
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

// ListPlans handles GET /v1/admin/plans.
func (h *AdminHandler) ListPlans(c echo.Context) error {
	plans, err := h.Plans.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]planResp, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResp(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
