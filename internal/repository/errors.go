package repository

import "errors"

// Sentinel errors shared by the repositories.  Handlers compare against
// these with errors.Is to translate database outcomes into HTTP responses.
var (
	// ErrBoatNotFound is returned when a boat lookup matches no row.
	ErrBoatNotFound = errors.New("boat not found")
	// ErrPlanNotFound is returned when a fishing plan lookup matches no row.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrTemplateNotFound is returned when a plan template lookup matches no row.
	ErrTemplateNotFound = errors.New("plan template not found")
	// ErrBookingNotFound is returned when a booking lookup matches no row.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden is returned when a record exists but does not belong to
	// the requesting owner.
	ErrForbidden = errors.New("forbidden")
	// ErrEmailExists is returned when the unique email constraint fires.
	ErrEmailExists = errors.New("email already exists")
	// ErrPhoneExists is returned when the unique phone constraint fires.
	ErrPhoneExists = errors.New("phone number already exists")
	// ErrActiveBookingsExist blocks plan deletion while PENDING or
	// CONFIRMED bookings still reference the plan.
	ErrActiveBookingsExist = errors.New("active bookings reference this plan")
	// ErrTokenInvalid covers unknown, revoked and expired refresh tokens
	// alike so callers cannot distinguish the three cases.
	ErrTokenInvalid = errors.New("refresh token is invalid")
)
