package storage

import (
	"context"
	"time"

	"github.com/agendly/agendly/libs/db"
	"github.com/agendly/agendly/services/availability-service/internal/model"
)

type BookingRepository struct {
	pool querier
}

func NewBookingRepository(pool *db.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func newBookingRepositoryWithQuerier(q querier) *BookingRepository {
	return &BookingRepository{pool: q}
}

// ListBookedIntervals returns committed bookings whose start instant falls
// within [from, to), the UTC bounds of the organization-local day. With an
// employee id only that employee's bookings count; without one, every
// booking of the organization does. Cancelled bookings never block slots.
func (r *BookingRepository) ListBookedIntervals(ctx context.Context, orgID, employeeID string, from, to time.Time) ([]model.Booking, error) {
	query := `
		SELECT id::text, organization_id::text, COALESCE(employee_id::text, ''), start_time, end_time, status
		FROM bookings
		WHERE organization_id = $1
			AND status = 'booked'
			AND start_time >= $2
			AND start_time < $3
	`
	args := []any{orgID, from, to}
	if employeeID != "" {
		query += ` AND employee_id = $4`
		args = append(args, employeeID)
	}
	query += ` ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.OrganizationID, &b.EmployeeID, &b.StartTime, &b.EndTime, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
