package availability

import (
	"testing"
	"time"
)

func mondayToFriday(startMin, endMin int, breaks ...BreakPeriod) WeeklySchedule {
	s := WeeklySchedule{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		s[wd] = DaySchedule{StartMinute: startMin, EndMinute: endMin, Breaks: breaks}
	}
	return s
}

func TestResolveDaySchedule_OrganizationOnly(t *testing.T) {
	org := mondayToFriday(540, 1080, BreakPeriod{StartMinute: 780, EndMinute: 840})

	eff, open := ResolveDaySchedule(org, nil, time.Wednesday)
	if !open {
		t.Fatalf("expected open day")
	}
	if eff.Window.StartMinute != 540 || eff.Window.EndMinute != 1080 {
		t.Fatalf("window = %v", eff.Window)
	}
	if len(eff.Breaks) != 1 || eff.Breaks[0].StartMinute != 780 {
		t.Fatalf("breaks = %v", eff.Breaks)
	}
}

func TestResolveDaySchedule_ClosedDay(t *testing.T) {
	org := mondayToFriday(540, 1080)
	if _, open := ResolveDaySchedule(org, nil, time.Sunday); open {
		t.Fatalf("expected Sunday closed")
	}
}

func TestResolveDaySchedule_OverrideIntersection(t *testing.T) {
	org := mondayToFriday(540, 1080) // 09:00-18:00
	overrides := WeeklyOverrides{
		time.Monday: {StartMinute: 600, EndMinute: 900}, // 10:00-15:00
	}

	eff, open := ResolveDaySchedule(org, overrides, time.Monday)
	if !open {
		t.Fatalf("expected open day")
	}
	if eff.Window.StartMinute != 600 || eff.Window.EndMinute != 900 {
		t.Fatalf("window = %v, want [600, 900)", eff.Window)
	}
}

func TestResolveDaySchedule_OverrideWiderThanOrganization(t *testing.T) {
	org := mondayToFriday(540, 1080)
	overrides := WeeklyOverrides{
		time.Monday: {StartMinute: 480, EndMinute: 1200}, // 08:00-20:00
	}

	eff, open := ResolveDaySchedule(org, overrides, time.Monday)
	if !open {
		t.Fatalf("expected open day")
	}
	// Intersection clamps to organization hours.
	if eff.Window.StartMinute != 540 || eff.Window.EndMinute != 1080 {
		t.Fatalf("window = %v, want [540, 1080)", eff.Window)
	}
}

func TestResolveDaySchedule_OverrideUsesOrganizationSchedule(t *testing.T) {
	org := mondayToFriday(540, 1080)
	overrides := WeeklyOverrides{
		time.Monday: {UseOrganizationSchedule: true, StartMinute: 0, EndMinute: 60},
	}

	eff, open := ResolveDaySchedule(org, overrides, time.Monday)
	if !open {
		t.Fatalf("expected open day")
	}
	if eff.Window.StartMinute != 540 || eff.Window.EndMinute != 1080 {
		t.Fatalf("opted-in override must leave the organization window intact, got %v", eff.Window)
	}
}

func TestResolveDaySchedule_DisjointShiftIsClosed(t *testing.T) {
	org := mondayToFriday(540, 1080)
	overrides := WeeklyOverrides{
		// Night shift entirely outside organization hours.
		time.Monday: {StartMinute: 1200, EndMinute: 1380},
	}
	if _, open := ResolveDaySchedule(org, overrides, time.Monday); open {
		t.Fatalf("expected closed for a disjoint shift")
	}
}

func TestResolveDaySchedule_BreakUnionAndClipping(t *testing.T) {
	org := mondayToFriday(540, 1080, BreakPeriod{StartMinute: 780, EndMinute: 840})
	overrides := WeeklyOverrides{
		time.Monday: {
			StartMinute: 600,
			EndMinute:   960,
			Breaks: []BreakPeriod{
				{StartMinute: 900, EndMinute: 930},  // inside effective window
				{StartMinute: 480, EndMinute: 630},  // straddles effective start, clipped
				{StartMinute: 1000, EndMinute: 1030}, // beyond effective end, dropped
			},
		},
	}

	eff, open := ResolveDaySchedule(org, overrides, time.Monday)
	if !open {
		t.Fatalf("expected open day")
	}
	if len(eff.Breaks) != 3 {
		t.Fatalf("expected 3 effective breaks, got %v", eff.Breaks)
	}
	for _, b := range eff.Breaks {
		if b.StartMinute < eff.Window.StartMinute || b.EndMinute > eff.Window.EndMinute {
			t.Fatalf("break %v escapes window %v", b, eff.Window)
		}
	}
}
