package storage

import (
	"context"
	"time"

	"github.com/agendly/agendly/libs/db"
	"github.com/agendly/agendly/services/availability-service/internal/availability"
	"github.com/agendly/agendly/services/availability-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the slice of the pgx pool surface the repositories use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScheduleRepository reads organization calendars and employee overrides.
// It is read-only: schedule mutation belongs to the admin surface upstream.
type ScheduleRepository struct {
	pool querier
}

func NewScheduleRepository(pool *db.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func newScheduleRepositoryWithQuerier(q querier) *ScheduleRepository {
	return &ScheduleRepository{pool: q}
}

func (r *ScheduleRepository) GetOrganization(ctx context.Context, orgID string) (model.Organization, error) {
	var org model.Organization
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, timezone, slot_step_minutes, created_at
		FROM organizations
		WHERE id = $1
	`, orgID).Scan(&org.ID, &org.Name, &org.Timezone, &org.SlotStepMinutes, &org.CreatedAt)
	if err != nil {
		return model.Organization{}, err
	}
	return org, nil
}

// GetWeeklySchedule assembles the organization's operating hours and breaks
// keyed by weekday (0 = Sunday). Days without an hours row are closed.
func (r *ScheduleRepository) GetWeeklySchedule(ctx context.Context, orgID string) (availability.WeeklySchedule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT weekday, open_minute, close_minute
		FROM organization_hours
		WHERE organization_id = $1
		ORDER BY weekday ASC
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedule := availability.WeeklySchedule{}
	for rows.Next() {
		var weekday, openMin, closeMin int
		if err := rows.Scan(&weekday, &openMin, &closeMin); err != nil {
			return nil, err
		}
		schedule[time.Weekday(weekday)] = availability.DaySchedule{
			StartMinute: openMin,
			EndMinute:   closeMin,
		}
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	breakRows, err := r.pool.Query(ctx, `
		SELECT weekday, start_minute, end_minute, COALESCE(note, '')
		FROM organization_breaks
		WHERE organization_id = $1
		ORDER BY weekday ASC, start_minute ASC
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer breakRows.Close()

	for breakRows.Next() {
		var weekday, startMin, endMin int
		var note string
		if err := breakRows.Scan(&weekday, &startMin, &endMin, &note); err != nil {
			return nil, err
		}
		day, open := schedule[time.Weekday(weekday)]
		if !open {
			// Break rows for a closed day carry no meaning.
			continue
		}
		day.Breaks = append(day.Breaks, availability.BreakPeriod{
			StartMinute: startMin,
			EndMinute:   endMin,
			Note:        note,
		})
		schedule[time.Weekday(weekday)] = day
	}
	if breakRows.Err() != nil {
		return nil, breakRows.Err()
	}

	return schedule, nil
}

// GetEmployee returns the employee row, scoped to the organization.
// An employee belonging to a different organization is pgx.ErrNoRows.
func (r *ScheduleRepository) GetEmployee(ctx context.Context, orgID, employeeID string) (model.Employee, error) {
	var emp model.Employee
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, organization_id::text, name, is_active
		FROM employees
		WHERE id = $1 AND organization_id = $2
	`, employeeID, orgID).Scan(&emp.ID, &emp.OrganizationID, &emp.Name, &emp.IsActive)
	if err != nil {
		return model.Employee{}, err
	}
	return emp, nil
}

// GetEmployeeOverrides returns the per-weekday overrides for an employee.
// pgx.ErrNoRows means an unknown, foreign or deactivated employee; a
// deactivated employee is invisible to availability queries.
func (r *ScheduleRepository) GetEmployeeOverrides(ctx context.Context, orgID, employeeID string) (availability.WeeklyOverrides, error) {
	emp, err := r.GetEmployee(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive {
		return nil, pgx.ErrNoRows
	}

	rows, err := r.pool.Query(ctx, `
		SELECT weekday, use_org_schedule, start_minute, end_minute
		FROM employee_hours
		WHERE employee_id = $1
		ORDER BY weekday ASC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := availability.WeeklyOverrides{}
	for rows.Next() {
		var weekday, startMin, endMin int
		var useOrg bool
		if err := rows.Scan(&weekday, &useOrg, &startMin, &endMin); err != nil {
			return nil, err
		}
		overrides[time.Weekday(weekday)] = availability.DayOverride{
			UseOrganizationSchedule: useOrg,
			StartMinute:             startMin,
			EndMinute:               endMin,
		}
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	breakRows, err := r.pool.Query(ctx, `
		SELECT weekday, start_minute, end_minute, COALESCE(note, '')
		FROM employee_breaks
		WHERE employee_id = $1
		ORDER BY weekday ASC, start_minute ASC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer breakRows.Close()

	for breakRows.Next() {
		var weekday, startMin, endMin int
		var note string
		if err := breakRows.Scan(&weekday, &startMin, &endMin, &note); err != nil {
			return nil, err
		}
		ov, has := overrides[time.Weekday(weekday)]
		if !has {
			continue
		}
		ov.Breaks = append(ov.Breaks, availability.BreakPeriod{
			StartMinute: startMin,
			EndMinute:   endMin,
			Note:        note,
		})
		overrides[time.Weekday(weekday)] = ov
	}
	if breakRows.Err() != nil {
		return nil, breakRows.Err()
	}

	return overrides, nil
}
