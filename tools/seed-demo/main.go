package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds a demo organization with weekly hours, a lunch break, one employee
// with a reduced Friday shift, and a couple of bookings for tomorrow.
func main() {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fatal(err.Error())
	}
	defer pool.Close()

	tz := strings.TrimSpace(os.Getenv("SEED_TIMEZONE"))
	if tz == "" {
		tz = "America/Bogota"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		fatal("invalid SEED_TIMEZONE: " + err.Error())
	}

	orgID := uuid.NewString()
	employeeID := uuid.NewString()

	tx, err := pool.Begin(ctx)
	if err != nil {
		fatal(err.Error())
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO organizations (id, name, timezone, slot_step_minutes)
		VALUES ($1, $2, $3, $4)
	`, orgID, "Demo Clinic", tz, 30); err != nil {
		fatal(err.Error())
	}

	// Monday through Friday, 09:00 to 18:00, lunch 12:30 to 13:30.
	for weekday := 1; weekday <= 5; weekday++ {
		if _, err := tx.Exec(ctx, `
			INSERT INTO organization_hours (organization_id, weekday, open_minute, close_minute)
			VALUES ($1, $2, $3, $4)
		`, orgID, weekday, 9*60, 18*60); err != nil {
			fatal(err.Error())
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO organization_breaks (organization_id, weekday, start_minute, end_minute, note)
			VALUES ($1, $2, $3, $4, $5)
		`, orgID, weekday, 12*60+30, 13*60+30, "lunch"); err != nil {
			fatal(err.Error())
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO employees (id, organization_id, name)
		VALUES ($1, $2, $3)
	`, employeeID, orgID, "Alex Rivera"); err != nil {
		fatal(err.Error())
	}

	// The employee follows the organization calendar except Friday, where
	// they work a short 10:00 to 14:00 shift.
	for weekday := 1; weekday <= 4; weekday++ {
		if _, err := tx.Exec(ctx, `
			INSERT INTO employee_hours (employee_id, weekday, use_org_schedule)
			VALUES ($1, $2, TRUE)
		`, employeeID, weekday); err != nil {
			fatal(err.Error())
		}
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO employee_hours (employee_id, weekday, use_org_schedule, start_minute, end_minute)
		VALUES ($1, 5, FALSE, $2, $3)
	`, employeeID, 10*60, 14*60); err != nil {
		fatal(err.Error())
	}

	// Two bookings tomorrow: one assigned, one organization-wide.
	now := time.Now().In(loc)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
	bookings := []struct {
		employee string
		start    time.Time
	}{
		{employeeID, tomorrow.Add(10 * time.Hour)},
		{"", tomorrow.Add(15 * time.Hour)},
	}
	for _, b := range bookings {
		var emp any
		if b.employee != "" {
			emp = b.employee
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO bookings (id, organization_id, employee_id, start_time, end_time, status)
			VALUES ($1, $2, $3, $4, $5, 'booked')
		`, uuid.NewString(), orgID, emp, b.start.UTC(), b.start.Add(time.Hour).UTC()); err != nil {
			fatal(err.Error())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		fatal(err.Error())
	}

	fmt.Printf("organization_id=%s\nemployee_id=%s\n", orgID, employeeID)
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
