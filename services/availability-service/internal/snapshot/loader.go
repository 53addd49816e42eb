package snapshot

import (
	"context"

	"github.com/agendly/agendly/services/availability-service/internal/availability"
	"github.com/agendly/agendly/services/availability-service/internal/model"
	"github.com/agendly/agendly/services/availability-service/internal/storage"
)

// Snapshot is the immutable bundle of schedule and booking state one
// availability query runs against. Gathering it is the only I/O in the
// request path; the engine itself stays pure and testable without a store.
type Snapshot struct {
	Organization model.Organization
	Schedule     availability.WeeklySchedule
	Overrides    availability.WeeklyOverrides // nil for organization-wide queries
	Bookings     []availability.Interval      // UTC, scoped to the employee or the whole organization
}

type Loader struct {
	schedules *storage.ScheduleRepository
	bookings  *storage.BookingRepository
}

func NewLoader(schedules *storage.ScheduleRepository, bookings *storage.BookingRepository) *Loader {
	return &Loader{schedules: schedules, bookings: bookings}
}

// Load gathers the snapshot for one organization-local calendar day.
// employeeID may be empty. Errors pass through untranslated: pgx.ErrNoRows
// for unknown organization/employee, availability.ValidationError for a bad
// date or an organization record missing its timezone.
func (l *Loader) Load(ctx context.Context, orgID, employeeID, date string) (Snapshot, error) {
	org, err := l.schedules.GetOrganization(ctx, orgID)
	if err != nil {
		return Snapshot{}, err
	}

	day, err := availability.ResolveLocalDay(date, org.Timezone)
	if err != nil {
		return Snapshot{}, err
	}

	schedule, err := l.schedules.GetWeeklySchedule(ctx, orgID)
	if err != nil {
		return Snapshot{}, err
	}

	var overrides availability.WeeklyOverrides
	if employeeID != "" {
		overrides, err = l.schedules.GetEmployeeOverrides(ctx, orgID, employeeID)
		if err != nil {
			return Snapshot{}, err
		}
	}

	bounds := day.Bounds()
	booked, err := l.bookings.ListBookedIntervals(ctx, orgID, employeeID, bounds.Start, bounds.End)
	if err != nil {
		return Snapshot{}, err
	}

	busy := make([]availability.Interval, 0, len(booked))
	for _, b := range booked {
		busy = append(busy, availability.Interval{Start: b.StartTime.UTC(), End: b.EndTime.UTC()})
	}

	return Snapshot{
		Organization: org,
		Schedule:     schedule,
		Overrides:    overrides,
		Bookings:     busy,
	}, nil
}
