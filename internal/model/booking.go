package model

import (
	"fmt"
	"time"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// validTransitions defines the state machine for booking status changes.
// CANCELLED and COMPLETED are terminal; a cancelled booking can never
// change state again.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the
// target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(validTransitions[s]) == 0
}

// IsActive reports whether the booking counts toward capacity and
// exclusivity checks.  Only PENDING and CONFIRMED bookings hold seats;
// CANCELLED and COMPLETED release them.
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// String returns the string representation of the status.
func (s BookingStatus) String() string { return string(s) }

// TransitionOutcome classifies a requested status change.
type TransitionOutcome int

const (
	// TransitionApply means the change is legal and should be written.
	TransitionApply TransitionOutcome = iota
	// TransitionNoop means the booking already is what the caller asked
	// for and nothing should be written, but the request succeeds.
	TransitionNoop
	// TransitionInvalid means the change violates the state machine.
	TransitionInvalid
)

// Transition classifies a change from s to target.  Cancelling an already
// cancelled booking is tolerated as a no-op so cancel requests stay
// idempotent on retry; every other move out of a terminal state is invalid.
func (s BookingStatus) Transition(target BookingStatus) TransitionOutcome {
	if s == StatusCancelled && target == StatusCancelled {
		return TransitionNoop
	}
	if s.CanTransitionTo(target) {
		return TransitionApply
	}
	return TransitionInvalid
}

// ParseBookingStatus converts a string to a BookingStatus, returning an
// error if the value is not one of the four recognized states.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// Booking records a reservation against one fishing plan occurrence.
// Contact details are copied onto the booking at creation time; UserID is
// set only when the booker was logged in, guests leave it nil.  TotalPrice
// is computed once at creation (plan price × people) and never recomputed,
// even if the plan's price changes later.
type Booking struct {
	ID             uint64        // bookings.id
	PlanID         uint64        // bookings.plan_id
	UserID         *uint64       // bookings.user_id (nullable, nil for guests)
	CustomerName   string        // bookings.customer_name
	CustomerPhone  string        // bookings.customer_phone
	CustomerEmail  *string       // bookings.customer_email (nullable)
	NumberOfPeople uint32        // bookings.number_of_people
	TotalPrice     uint64        // bookings.total_price
	Status         BookingStatus // bookings.status
	Message        *string       // bookings.message (nullable free text)
	CreatedAt      time.Time     // bookings.created_at
	UpdatedAt      time.Time     // bookings.updated_at
}
