package handler

import (
	"errors"   // errors.Is / errors.As comparisons
	"fmt"      // building validation messages
	"net/http" // HTTP status codes
	"regexp"   // phone number pattern
	"strings"  // trimming input fields
	"time"     // timestamps in responses

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/umisachi/fishing-charter-booking/internal/config"          // app configuration (JWT secret for optional auth)
	"github.com/umisachi/fishing-charter-booking/internal/model"           // booking state machine and creation rules
	"github.com/umisachi/fishing-charter-booking/internal/queue"           // event payloads
	"github.com/umisachi/fishing-charter-booking/internal/repository"      // repository layer
	queue_publisher "github.com/umisachi/fishing-charter-booking/internal/service" // best-effort event publishing
)

// phonePattern accepts digits and hyphens only, e.g. 090-1234-5678.
var phonePattern = regexp.MustCompile(`^[0-9-]+$`)

// BookingHandler serves booking creation, status transitions and booking
// reads.  Creation and transition both run their read-decide-write sequence
// inside a transaction that locks the relevant rows, so two concurrent
// requests against the same plan cannot both pass the capacity check.
type BookingHandler struct {
	Cfg      config.Config
	Plans    *repository.PlanRepo
	Bookings *repository.BookingRepo
}

// NewBookingHandler constructs a BookingHandler.  All dependencies must be
// non-nil.
func NewBookingHandler(cfg config.Config, plans *repository.PlanRepo, bookings *repository.BookingRepo) *BookingHandler {
	if plans == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Cfg: cfg, Plans: plans, Bookings: bookings}
}

type createBookingReq struct {
	PlanID       uint64 `json:"plan_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Participants uint32 `json:"participants"`
	Message      string `json:"message"`
}

// bookingPart is the booking shape echoed back on creation.
type bookingPart struct {
	ID           uint64 `json:"id"`
	PlanID       uint64 `json:"plan_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Participants uint32 `json:"participants"`
	TotalPrice   uint64 `json:"total_price"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// CreateBooking handles POST /v1/bookings.  Guests may book without an
// account; when a valid bearer token accompanies the request the booking is
// attributed to that user.  The plan row is locked FOR UPDATE before active
// bookings are read so the exclusivity and capacity checks cannot race with
// a concurrent creation or transition on the same plan.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.PlanID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "plan_id is required"})
	}

	ctx := c.Request().Context()
	tx, err := h.Plans.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the plan row.  All booking writers for this plan serialize here.
	plan, err := h.Plans.GetByIDForUpdateTx(ctx, tx, req.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Field validation happens after the plan lookup so that a missing plan
	// is always reported as 404 regardless of the rest of the payload.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name is required"})
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" || !phonePattern.MatchString(phone) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "phone number may contain only digits and hyphens"})
	}
	if req.Participants < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "number of people must be at least 1"})
	}
	if req.Participants > plan.MaxPeople {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": fmt.Sprintf("number of people must not exceed %d for this plan", plan.MaxPeople),
		})
	}

	var allowMultiple bool
	if err := tx.QueryRowContext(ctx,
		"SELECT allow_multiple_bookings FROM boats WHERE id=?", plan.BoatID).Scan(&allowMultiple); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	active, err := h.Bookings.ListActiveByPlanTx(ctx, tx, plan.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	status, err := model.DecideBookingCreation(allowMultiple, plan.MaxPeople, active, req.Participants)
	if err != nil {
		var capErr *model.CapacityExceededError
		if errors.Is(err, model.ErrCharterConflict) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "this boat is charter-only and already booked for this date"})
		}
		if errors.As(err, &capErr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": fmt.Sprintf("not enough seats left: %d people already booked, only %d remaining", capErr.Booked, capErr.Remaining),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking rules failed"})
	}

	booking := model.Booking{
		PlanID:         plan.ID,
		CustomerName:   name,
		CustomerPhone:  phone,
		NumberOfPeople: req.Participants,
		TotalPrice:     model.TotalPrice(plan.Price, req.Participants),
		Status:         status,
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		booking.CustomerEmail = &email
	}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		booking.Message = &msg
	}
	// Attribute the booking to the caller when a valid token is present;
	// guests leave user_id NULL.
	if uid, ok := parseBearerSub(c, h.Cfg.JWTSecret); ok && uid != 0 {
		booking.UserID = &uid
	}

	if err := h.Bookings.CreateTx(ctx, tx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best-effort event; a broker outage never fails the booking.
	go func(b model.Booking, planTitle string) {
		evt := queue.BookingCreatedEvent{
			BookingID:      b.ID,
			PlanID:         b.PlanID,
			PlanTitle:      planTitle,
			CustomerName:   b.CustomerName,
			NumberOfPeople: b.NumberOfPeople,
			TotalPrice:     b.TotalPrice,
			Status:         b.Status.String(),
			CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339),
		}
		_ = queue_publisher.PublishBookingCreated(evt)
	}(booking, plan.Title)

	msg := "booking complete"
	if status == model.StatusPending {
		msg = "booking received, awaiting owner approval because another booking exists"
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": msg,
		"booking": bookingPart{
			ID:           booking.ID,
			PlanID:       booking.PlanID,
			Name:         booking.CustomerName,
			Phone:        booking.CustomerPhone,
			Participants: booking.NumberOfPeople,
			TotalPrice:   booking.TotalPrice,
			Status:       booking.Status.String(),
			CreatedAt:    booking.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateBookingStatus handles PATCH /v1/bookings/:id.  The transition table
// lives on model.BookingStatus; this handler adds authorization (owner of
// the plan's boat or admin for any legal transition, customers may only
// cancel their own booking) and runs the change under a booking row lock.
// Re-cancelling an already CANCELLED booking is a no-op success.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	role := getRole(c)
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	target, err := model.ParseBookingStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED"})
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.Bookings.GetByIDForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Authorization before the transition check so another user's booking
	// id never leaks transition details.
	switch role {
	case model.RoleAdmin:
		// admins may apply any legal transition
	case model.RoleBoatOwner:
		var ownerID uint64
		if err := tx.QueryRowContext(ctx,
			`SELECT b.owner_id FROM fishing_plans p JOIN boats b ON b.id = p.boat_id WHERE p.id=?`,
			booking.PlanID).Scan(&ownerID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if ownerID != uid {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
	default:
		// customers may only cancel their own booking
		if booking.UserID == nil || *booking.UserID != uid {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		if target != model.StatusCancelled {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "customers may only cancel bookings"})
		}
	}

	switch booking.Status.Transition(target) {
	case model.TransitionNoop:
		// re-cancel: nothing to write
		if err := tx.Commit(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
		}
		committed = true
		return h.respondWithDetail(c, bookingID, "booking already cancelled")
	case model.TransitionInvalid:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": fmt.Sprintf("cannot change a %s booking to %s", booking.Status, target),
		})
	}

	if err := h.Bookings.UpdateStatusTx(ctx, tx, bookingID, target); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	msg := "booking updated"
	switch target {
	case model.StatusConfirmed:
		msg = "booking confirmed"
	case model.StatusCancelled:
		msg = "booking cancelled"
	case model.StatusCompleted:
		msg = "booking completed"
	}
	return h.respondWithDetail(c, bookingID, msg)
}

// respondWithDetail loads the joined booking record and writes the common
// {message, booking} response.
func (h *BookingHandler) respondWithDetail(c echo.Context, bookingID uint64, msg string) error {
	detail, err := h.Bookings.GetDetailByID(c.Request().Context(), bookingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg, "booking": detail})
}

// GetBooking handles GET /v1/bookings/:id.  The record only contains data
// the booker submitted plus public plan/boat fields, so it is served
// without authentication, matching the guest booking flow.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid booking id"})
	}
	detail, err := h.Bookings.GetDetailByID(c.Request().Context(), bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": detail})
}

// ListMyBookings handles GET /v1/my-bookings for authenticated customers.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Bookings.ListDetailsByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
