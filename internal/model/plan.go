package model

import "time"

// FishingPlan is one bookable date occurrence on a boat, not a recurring
// template.  Price is in whole yen.  MaxPeople is the per-occurrence
// ceiling and is independent of the boat's physical capacity.
//
// Fields:
//  ID            – primary key identifier.
//  BoatID        – boat running the trip.
//  TemplateID    – optional plan template this occurrence was created from.
//  Title         – plan name.
//  Description   – description text.
//  FishType      – target species, comma separated.
//  Price         – fare per person in yen.
//  MaxPeople     – booking ceiling for this occurrence (must be > 0).
//  TripDate      – the calendar date of the trip.
//  DepartureTime – departure time (HH:MM).
//  ReturnTime    – return time (HH:MM).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type FishingPlan struct {
	ID            uint64    // fishing_plans.id
	BoatID        uint64    // fishing_plans.boat_id
	TemplateID    *uint64   // fishing_plans.template_id (nullable)
	Title         string    // fishing_plans.title
	Description   *string   // fishing_plans.description (nullable)
	FishType      string    // fishing_plans.fish_type
	Price         uint32    // fishing_plans.price
	MaxPeople     uint32    // fishing_plans.max_people
	TripDate      time.Time // fishing_plans.trip_date
	DepartureTime string    // fishing_plans.departure_time
	ReturnTime    string    // fishing_plans.return_time
	CreatedAt     time.Time // fishing_plans.created_at
	UpdatedAt     time.Time // fishing_plans.updated_at
}

// PlanTemplate is a reusable blueprint owners stamp plan occurrences from.
// Templates carry no date; creating a plan from a template copies the
// template fields onto a concrete occurrence for one date.
type PlanTemplate struct {
	ID            uint64    // plan_templates.id
	BoatID        uint64    // plan_templates.boat_id
	Name          string    // plan_templates.name
	Description   *string   // plan_templates.description (nullable)
	FishType      string    // plan_templates.fish_type
	Price         uint32    // plan_templates.price
	DepartureTime string    // plan_templates.departure_time
	ReturnTime    string    // plan_templates.return_time
	MaxPeople     uint32    // plan_templates.max_people
	CreatedAt     time.Time // plan_templates.created_at
	UpdatedAt     time.Time // plan_templates.updated_at
}
