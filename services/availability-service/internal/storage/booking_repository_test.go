package storage

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestListBookedIntervals_OrganizationWide(t *testing.T) {
	mock := mockPool(t)
	repo := newBookingRepositoryWithQuerier(mock)

	from := time.Date(2025, 1, 24, 5, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("FROM bookings").
		WithArgs("org-1", from, to).
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "employee_id", "start_time", "end_time", "status"}).
			AddRow("b-1", "org-1", "", from.Add(14*time.Hour), from.Add(15*time.Hour), "booked"))

	booked, err := repo.ListBookedIntervals(context.Background(), "org-1", "", from, to)
	if err != nil {
		t.Fatalf("ListBookedIntervals: %v", err)
	}
	if len(booked) != 1 || booked[0].EmployeeID != "" {
		t.Fatalf("booked = %+v, want one unassigned booking", booked)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListBookedIntervals_EmployeeScoped(t *testing.T) {
	mock := mockPool(t)
	repo := newBookingRepositoryWithQuerier(mock)

	from := time.Date(2025, 1, 24, 5, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("FROM bookings").
		WithArgs("org-1", from, to, "emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "organization_id", "employee_id", "start_time", "end_time", "status"}))

	booked, err := repo.ListBookedIntervals(context.Background(), "org-1", "emp-1", from, to)
	if err != nil {
		t.Fatalf("ListBookedIntervals: %v", err)
	}
	if len(booked) != 0 {
		t.Fatalf("booked = %+v, want none", booked)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
