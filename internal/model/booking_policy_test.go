package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(status BookingStatus, people uint32) Booking {
	return Booking{Status: status, NumberOfPeople: people}
}

func TestDecideBookingCreationFirstBookingConfirmed(t *testing.T) {
	status, err := DecideBookingCreation(true, 8, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)
}

func TestDecideBookingCreationSecondBookingPending(t *testing.T) {
	active := []Booking{booking(StatusConfirmed, 4)}
	status, err := DecideBookingCreation(true, 8, active, 3)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status, "a later booking on a shared boat awaits approval")
}

func TestDecideBookingCreationCapacityExceeded(t *testing.T) {
	active := []Booking{booking(StatusConfirmed, 4)}
	_, err := DecideBookingCreation(true, 8, active, 5)
	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, uint32(4), capErr.Booked)
	assert.Equal(t, uint32(4), capErr.Remaining)
}

func TestDecideBookingCreationExactFit(t *testing.T) {
	active := []Booking{booking(StatusConfirmed, 4), booking(StatusPending, 2)}
	status, err := DecideBookingCreation(true, 8, active, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)
}

func TestDecideBookingCreationCharterOnlyFirst(t *testing.T) {
	status, err := DecideBookingCreation(false, 10, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status, "sole booking on a charter-only boat is auto-confirmed")
}

func TestDecideBookingCreationCharterOnlyConflict(t *testing.T) {
	active := []Booking{booking(StatusConfirmed, 2)}
	_, err := DecideBookingCreation(false, 10, active, 1)
	assert.ErrorIs(t, err, ErrCharterConflict)
}

func TestDecideBookingCreationCharterConflictEvenWhenPending(t *testing.T) {
	active := []Booking{booking(StatusPending, 1)}
	_, err := DecideBookingCreation(false, 10, active, 1)
	assert.ErrorIs(t, err, ErrCharterConflict)
}

func TestDecideBookingCreationIgnoresInactiveBookings(t *testing.T) {
	// Cancelled and completed bookings release their seats, so a plan
	// that was once full becomes bookable again.
	active := []Booking{
		booking(StatusCancelled, 8),
		booking(StatusCompleted, 8),
	}
	status, err := DecideBookingCreation(true, 8, active, 8)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status, "no active booking remains, so this is the first")

	status, err = DecideBookingCreation(false, 10, active, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status, "charter-only boat frees up after cancellation")
}

func TestActivePeople(t *testing.T) {
	bookings := []Booking{
		booking(StatusConfirmed, 4),
		booking(StatusPending, 3),
		booking(StatusCancelled, 5),
		booking(StatusCompleted, 2),
	}
	assert.Equal(t, uint32(7), ActivePeople(bookings))
	assert.Equal(t, uint32(0), ActivePeople(nil))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, uint64(34000), TotalPrice(8500, 4))
	assert.Equal(t, uint64(0), TotalPrice(0, 3))

	// A six-figure charter price times a big party exceeds uint32; the
	// total must not wrap.
	assert.Equal(t, uint64(6_000_000_000), TotalPrice(3_000_000, 2000))
}

// Capacity invariant: replaying any creation sequence through the policy
// never lets the active sum exceed maxPeople.
func TestCapacityInvariantUnderSequence(t *testing.T) {
	const maxPeople = 8
	var active []Booking
	requests := []uint32{4, 5, 3, 2, 6, 1}
	for _, n := range requests {
		status, err := DecideBookingCreation(true, maxPeople, active, n)
		if err != nil {
			continue
		}
		active = append(active, booking(status, n))
		assert.LessOrEqual(t, ActivePeople(active), uint32(maxPeople))
	}
	// 4 + 3 fit, then 2 does not (9 > 8) but 1 does.
	assert.Equal(t, uint32(8), ActivePeople(active))
}
