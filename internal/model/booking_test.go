package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusTransitionOutcome(t *testing.T) {
	assert.Equal(t, TransitionApply, StatusPending.Transition(StatusConfirmed))
	assert.Equal(t, TransitionApply, StatusConfirmed.Transition(StatusCancelled))

	// Re-cancelling is the one tolerated repeat; cancel must be safe to
	// retry without flipping into an error.
	assert.Equal(t, TransitionNoop, StatusCancelled.Transition(StatusCancelled))

	assert.Equal(t, TransitionInvalid, StatusCancelled.Transition(StatusConfirmed))
	assert.Equal(t, TransitionInvalid, StatusCompleted.Transition(StatusCancelled))
	assert.Equal(t, TransitionInvalid, StatusCompleted.Transition(StatusCompleted),
		"only re-cancel repeats; a completed booking stays put")
	assert.Equal(t, TransitionInvalid, StatusPending.Transition(StatusCompleted))
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestBookingStatusActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("CONFIRMED")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseBookingStatus("APPROVED")
	assert.Error(t, err)

	_, err = ParseBookingStatus("confirmed")
	assert.Error(t, err, "status values are case sensitive")

	_, err = ParseBookingStatus("")
	assert.Error(t, err)
}
