package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func mockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestGetEmployeeOverrides_UnknownEmployee(t *testing.T) {
	mock := mockPool(t)
	repo := newScheduleRepositoryWithQuerier(mock)

	mock.ExpectQuery("FROM employees").
		WithArgs("emp-x", "org-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetEmployeeOverrides(context.Background(), "org-1", "emp-x")
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows for an unknown employee, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetEmployeeOverrides_DeactivatedEmployee(t *testing.T) {
	mock := mockPool(t)
	repo := newScheduleRepositoryWithQuerier(mock)

	mock.ExpectQuery("FROM employees").
		WithArgs("emp-1", "org-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "name", "is_active"}).
			AddRow("emp-1", "org-1", "Alex Rivera", false))

	_, err := repo.GetEmployeeOverrides(context.Background(), "org-1", "emp-1")
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("a deactivated employee must read as not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetEmployeeOverrides_ActiveEmployee(t *testing.T) {
	mock := mockPool(t)
	repo := newScheduleRepositoryWithQuerier(mock)

	mock.ExpectQuery("FROM employees").
		WithArgs("emp-1", "org-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "name", "is_active"}).
			AddRow("emp-1", "org-1", "Alex Rivera", true))
	mock.ExpectQuery("FROM employee_hours").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"weekday", "use_org_schedule", "start_minute", "end_minute"}).
			AddRow(1, true, 0, 0).
			AddRow(5, false, 600, 840))
	mock.ExpectQuery("FROM employee_breaks").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"weekday", "start_minute", "end_minute", "note"}).
			AddRow(5, 720, 750, "lunch"))

	overrides, err := repo.GetEmployeeOverrides(context.Background(), "org-1", "emp-1")
	if err != nil {
		t.Fatalf("GetEmployeeOverrides: %v", err)
	}

	monday, ok := overrides[time.Monday]
	if !ok || !monday.UseOrganizationSchedule {
		t.Fatalf("expected an inert Monday override, got %+v present=%v", monday, ok)
	}
	friday, ok := overrides[time.Friday]
	if !ok {
		t.Fatal("expected a Friday override")
	}
	if friday.StartMinute != 600 || friday.EndMinute != 840 {
		t.Fatalf("Friday window = [%d, %d), want [600, 840)", friday.StartMinute, friday.EndMinute)
	}
	if len(friday.Breaks) != 1 || friday.Breaks[0].StartMinute != 720 {
		t.Fatalf("Friday breaks = %+v, want one starting at 720", friday.Breaks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetEmployee_ScopedToOrganization(t *testing.T) {
	mock := mockPool(t)
	repo := newScheduleRepositoryWithQuerier(mock)

	mock.ExpectQuery("FROM employees").
		WithArgs("emp-1", "org-other").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetEmployee(context.Background(), "org-other", "emp-1")
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("an employee of another organization must read as not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
