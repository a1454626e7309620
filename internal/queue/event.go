// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after a booking row is committed.
// It contains enough information for downstream consumers to log, notify
// owners, or feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID      uint64 `json:"booking_id"`
	PlanID         uint64 `json:"plan_id"`
	PlanTitle      string `json:"plan_title"`
	CustomerName   string `json:"customer_name"`
	NumberOfPeople uint32 `json:"number_of_people"`
	TotalPrice     uint64 `json:"total_price"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}
