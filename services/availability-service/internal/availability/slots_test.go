package availability

import (
	"reflect"
	"testing"
	"time"
)

// 2025-01-24 is a Friday in America/Bogota.
func referenceInput() ComputeInput {
	return ComputeInput{
		Date:     "2025-01-24",
		Timezone: "America/Bogota",
		Schedule: WeeklySchedule{
			time.Friday: {
				StartMinute: 13 * 60,
				EndMinute:   19*60 + 30,
				Breaks:      []BreakPeriod{{StartMinute: 15 * 60, EndMinute: 15*60 + 30, Note: "lunch"}},
			},
		},
		DurationMinutes: 60,
		StepMinutes:     60,
	}
}

func TestCompute_ReferenceDay(t *testing.T) {
	res, err := Compute(referenceInput())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Closed {
		t.Fatalf("expected open day")
	}

	wantSegments := []Segment{
		{StartMinute: 13 * 60, EndMinute: 15 * 60},
		{StartMinute: 15*60 + 30, EndMinute: 19*60 + 30},
	}
	if !reflect.DeepEqual(res.Segments, wantSegments) {
		t.Fatalf("segments = %v, want %v", res.Segments, wantSegments)
	}

	wantTimes := []string{"13:00", "14:00", "15:30", "16:30", "17:30", "18:30"}
	if len(res.Slots) != len(wantTimes) {
		t.Fatalf("expected %d slots, got %d", len(wantTimes), len(res.Slots))
	}
	for i, s := range res.Slots {
		if s.LocalTime != wantTimes[i] {
			t.Fatalf("slot %d = %s, want %s", i, s.LocalTime, wantTimes[i])
		}
		if !s.Available {
			t.Fatalf("slot %s unavailable with no bookings", s.LocalTime)
		}
		if got := s.End.Sub(s.Start); got != time.Hour {
			t.Fatalf("slot %s spans %s, want 1h", s.LocalTime, got)
		}
	}

	// No slot may intersect the break (15:00-15:30 local = 20:00-20:30Z).
	brk := Interval{
		Start: time.Date(2025, 1, 24, 20, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 24, 20, 30, 0, 0, time.UTC),
	}
	for _, s := range res.Slots {
		if (Interval{Start: s.Start, End: s.End}).Overlaps(brk) {
			t.Fatalf("slot %s intersects the break", s.LocalTime)
		}
	}
}

func TestCompute_StepEqualsDuration(t *testing.T) {
	in := referenceInput()
	in.Schedule = WeeklySchedule{
		time.Friday: {StartMinute: 600, EndMinute: 720}, // 120 minute window
	}
	in.DurationMinutes = 60
	in.StepMinutes = 60

	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(res.Slots) != 2 {
		t.Fatalf("expected exactly 2 slots, got %d", len(res.Slots))
	}
	if res.Slots[0].LocalTime != "10:00" || res.Slots[1].LocalTime != "11:00" {
		t.Fatalf("slots = %s, %s", res.Slots[0].LocalTime, res.Slots[1].LocalTime)
	}
}

func TestCompute_DurationLongerThanStepOverlaps(t *testing.T) {
	in := referenceInput()
	in.Schedule = WeeklySchedule{
		time.Friday: {StartMinute: 600, EndMinute: 690}, // 90 minute window
	}
	in.DurationMinutes = 60
	in.StepMinutes = 30

	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// Offsets 0 and 30 both fit; the candidates overlap.
	if len(res.Slots) != 2 {
		t.Fatalf("expected 2 overlapping candidates, got %d", len(res.Slots))
	}
	if res.Slots[0].LocalTime != "10:00" || res.Slots[1].LocalTime != "10:30" {
		t.Fatalf("slots = %s, %s", res.Slots[0].LocalTime, res.Slots[1].LocalTime)
	}
	if !res.Slots[1].Start.Before(res.Slots[0].End) {
		t.Fatalf("expected candidates to overlap")
	}
}

func TestCompute_ClosedDay(t *testing.T) {
	in := referenceInput()
	in.Date = "2025-01-26" // Sunday, no schedule entry
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !res.Closed || len(res.Slots) != 0 {
		t.Fatalf("expected closed day with no slots, got closed=%v slots=%d", res.Closed, len(res.Slots))
	}
}

func TestCompute_BreaksConsumeDayIsOpenButEmpty(t *testing.T) {
	in := referenceInput()
	in.Schedule = WeeklySchedule{
		time.Friday: {
			StartMinute: 600,
			EndMinute:   720,
			Breaks:      []BreakPeriod{{StartMinute: 600, EndMinute: 720}},
		},
	}
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	// Fully occupied by breaks is still an open day, just with nothing left.
	if res.Closed {
		t.Fatalf("expected open day")
	}
	if len(res.Segments) != 0 || len(res.Slots) != 0 {
		t.Fatalf("expected zero segments and slots, got %v / %v", res.Segments, res.Slots)
	}
}

func TestCompute_Validation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*ComputeInput)
	}{
		{"zero duration", func(in *ComputeInput) { in.DurationMinutes = 0 }},
		{"negative duration", func(in *ComputeInput) { in.DurationMinutes = -30 }},
		{"zero step", func(in *ComputeInput) { in.StepMinutes = 0 }},
		{"missing timezone", func(in *ComputeInput) { in.Timezone = "" }},
		{"bad date", func(in *ComputeInput) { in.Date = "not-a-date" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := referenceInput()
			tc.mutate(&in)
			_, err := Compute(in)
			if err == nil || !IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestCompute_ConflictMarking(t *testing.T) {
	in := referenceInput()
	base, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	// Book 14:00-15:00 local (19:00-20:00Z).
	in.Bookings = []Interval{{
		Start: time.Date(2025, 1, 24, 19, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 24, 20, 0, 0, 0, time.UTC),
	}}
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	// Exactly the overlapping slot flips; everything else is unchanged.
	for i, s := range res.Slots {
		wantAvailable := s.LocalTime != "14:00"
		if s.Available != wantAvailable {
			t.Fatalf("slot %s available=%v, want %v", s.LocalTime, s.Available, wantAvailable)
		}
		if s.LocalTime != base.Slots[i].LocalTime || !s.Start.Equal(base.Slots[i].Start) {
			t.Fatalf("slot %d shifted after adding a booking", i)
		}
	}
}

func TestCompute_TouchingBookingDoesNotConflict(t *testing.T) {
	in := referenceInput()
	// Booking ends exactly when the 13:00 slot starts (18:00Z).
	in.Bookings = []Interval{{
		Start: time.Date(2025, 1, 24, 17, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 24, 18, 0, 0, 0, time.UTC),
	}}
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !res.Slots[0].Available {
		t.Fatalf("half-open intervals: a booking ending at the slot start must not conflict")
	}
}

func TestCompute_EmployeeWindowSubset(t *testing.T) {
	in := referenceInput()
	in.Overrides = WeeklyOverrides{
		time.Friday: {StartMinute: 16 * 60, EndMinute: 18 * 60},
	}
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for _, s := range res.Slots {
		local := s.Start.In(time.FixedZone("bogota", -5*3600))
		minute := local.Hour()*60 + local.Minute()
		if minute < 16*60 || minute+in.DurationMinutes > 18*60 {
			t.Fatalf("slot %s escapes the employee window", s.LocalTime)
		}
	}
	if len(res.Slots) == 0 {
		t.Fatalf("expected slots within the employee window")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := referenceInput()
	in.Bookings = []Interval{{
		Start: time.Date(2025, 1, 24, 19, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 24, 19, 30, 0, 0, time.UTC),
	}}
	a, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	b, err := Compute(in)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different results")
	}
}
