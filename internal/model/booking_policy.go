package model

import (
	"errors"
	"fmt"
)

// ErrCharterConflict is returned when a charter-only boat already has an
// active booking for the requested plan occurrence.
var ErrCharterConflict = errors.New("boat is charter-only and already booked for this date")

// CapacityExceededError is returned when a shared boat's remaining seats
// cannot fit the requested party.  Booked and Remaining let callers build
// a message that states the exact remaining capacity.
type CapacityExceededError struct {
	Booked    uint32 // people already booked across active bookings
	Remaining uint32 // seats still available (max - booked)
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d people already booked, %d seats remaining", e.Booked, e.Remaining)
}

// ActivePeople sums NumberOfPeople over the active bookings in the given
// slice.  Non-active bookings (CANCELLED, COMPLETED) are skipped so that
// callers may pass an unfiltered list.
func ActivePeople(bookings []Booking) uint32 {
	var sum uint32
	for _, b := range bookings {
		if b.Status.IsActive() {
			sum += b.NumberOfPeople
		}
	}
	return sum
}

// DecideBookingCreation applies the capacity and exclusivity rules for a new
// booking request and decides its initial status.  The caller must supply
// the plan's active bookings as observed under the plan row lock; the
// decision is only valid while that lock is held.
//
// Rules:
//   - charter-only boat (allowMultiple=false): any existing active booking
//     rejects the request with ErrCharterConflict.
//   - shared boat: the active people sum plus the request must stay within
//     maxPeople, otherwise *CapacityExceededError is returned.
//   - the first active booking on a plan is auto-confirmed; later bookings
//     on a shared boat await owner approval as PENDING.
func DecideBookingCreation(allowMultiple bool, maxPeople uint32, active []Booking, participants uint32) (BookingStatus, error) {
	activeCount := 0
	for _, b := range active {
		if b.Status.IsActive() {
			activeCount++
		}
	}

	if !allowMultiple && activeCount > 0 {
		return "", ErrCharterConflict
	}

	if allowMultiple {
		booked := ActivePeople(active)
		if booked+participants > maxPeople {
			return "", &CapacityExceededError{Booked: booked, Remaining: maxPeople - booked}
		}
	}

	if activeCount > 0 {
		return StatusPending, nil
	}
	return StatusConfirmed, nil
}

// TotalPrice computes the immutable booking total: plan price × headcount.
// The result is 64-bit; a high-priced charter times a full party overflows
// uint32 arithmetic.
func TotalPrice(price, participants uint32) uint64 {
	return uint64(price) * uint64(participants)
}
