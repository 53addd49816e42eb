package model

import "time"

// Organization is the tenant whose calendar is being queried. Timezone is
// the IANA identifier all wall-clock arithmetic anchors to; it has no
// default and rows without one are rejected upstream.
type Organization struct {
	ID              string
	Name            string
	Timezone        string
	SlotStepMinutes int
	CreatedAt       time.Time
}

// Employee is deactivated rather than deleted so booking history survives;
// a deactivated employee is invisible to availability queries.
type Employee struct {
	ID             string
	OrganizationID string
	Name           string
	IsActive       bool
}

// Booking is consumed read-only: the availability service only ever marks
// slots against it, the write path lives elsewhere.
type Booking struct {
	ID             string
	OrganizationID string
	EmployeeID     string // empty for unassigned bookings
	StartTime      time.Time
	EndTime        time.Time
	Status         string
}
