package model

import "time"

// Boat represents a fishing boat operated by an owner.  A boat either
// accepts a single exclusive charter per plan occurrence
// (AllowMultipleBookings = false) or shares a trip between independent
// bookings up to the plan's capacity (AllowMultipleBookings = true).
//
// Fields:
//  ID                    – primary key identifier.
//  OwnerID               – user who operates the boat.
//  Name                  – boat name.
//  Location              – home port / area.
//  Description           – optional introduction text.
//  ImageURL              – optional photo URL.
//  Capacity              – maximum people the vessel can ever carry.
//  AllowMultipleBookings – shared/relay boat when true, charter-only when false.
//  IsActive              – whether the boat is currently operating.
//  CreatedAt             – creation timestamp.
//  UpdatedAt             – last update timestamp.
type Boat struct {
	ID                    uint64    // boats.id
	OwnerID               uint64    // boats.owner_id
	Name                  string    // boats.name
	Location              string    // boats.location
	Description           *string   // boats.description (nullable)
	ImageURL              *string   // boats.image_url (nullable)
	Capacity              uint32    // boats.capacity
	AllowMultipleBookings bool      // boats.allow_multiple_bookings
	IsActive              bool      // boats.is_active
	CreatedAt             time.Time // boats.created_at
	UpdatedAt             time.Time // boats.updated_at
}
