package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Consumers outside this repo depend on these key names.
func TestBookingCreatedEventJSONKeys(t *testing.T) {
	evt := BookingCreatedEvent{
		BookingID:      12,
		PlanID:         3,
		PlanTitle:      "Morning sea bream trip",
		CustomerName:   "Tanaka",
		NumberOfPeople: 4,
		TotalPrice:     34000,
		Status:         "CONFIRMED",
		CreatedAt:      "2025-07-01T06:00:00Z",
	}
	raw, err := json.Marshal(evt)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, k := range []string{
		"booking_id", "plan_id", "plan_title", "customer_name",
		"number_of_people", "total_price", "status", "created_at",
	} {
		assert.Contains(t, m, k)
	}
	assert.Equal(t, float64(34000), m["total_price"])
}
