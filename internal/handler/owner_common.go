package handler // handler defines http handlers

import (
	"github.com/umisachi/fishing-charter-booking/internal/repository" // repository holds data access layer
)

// OwnerHandler bundles repositories for boat owners to manage their fleet,
// plan occurrences, templates and incoming bookings.
type OwnerHandler struct {
	Boats     *repository.BoatRepo     // boat persistence
	Plans     *repository.PlanRepo     // plan occurrence persistence
	Templates *repository.TemplateRepo // plan template persistence
	Bookings  *repository.BookingRepo  // booking reads for the owner dashboard
}

// NewOwnerHandler constructs a new OwnerHandler and panics if any dependency is nil.
func NewOwnerHandler(boats *repository.BoatRepo, plans *repository.PlanRepo, templates *repository.TemplateRepo, bookings *repository.BookingRepo) *OwnerHandler {
	if boats == nil || plans == nil || templates == nil || bookings == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{
		Boats:     boats,
		Plans:     plans,
		Templates: templates,
		Bookings:  bookings,
	}
}
