package availability

import "time"

// EffectiveDay is the organization schedule narrowed by an employee
// override for one weekday.
type EffectiveDay struct {
	Window Segment
	Breaks []BreakPeriod
}

// ResolveDaySchedule computes the effective window and breaks for weekday.
// open=false means closed: no organization entry for the day, or an
// override whose intersection with the organization window is empty
// (an employee shift entirely outside organization hours is closed, not an
// error).
func ResolveDaySchedule(org WeeklySchedule, overrides WeeklyOverrides, weekday time.Weekday) (EffectiveDay, bool) {
	day, open := org[weekday]
	if !open || day.EndMinute <= day.StartMinute {
		return EffectiveDay{}, false
	}

	window := Segment{StartMinute: day.StartMinute, EndMinute: day.EndMinute}
	breaks := day.Breaks

	if ov, has := overrides[weekday]; has && !ov.UseOrganizationSchedule {
		if ov.StartMinute > window.StartMinute {
			window.StartMinute = ov.StartMinute
		}
		if ov.EndMinute < window.EndMinute {
			window.EndMinute = ov.EndMinute
		}
		if window.EndMinute <= window.StartMinute {
			return EffectiveDay{}, false
		}
		merged := make([]BreakPeriod, 0, len(day.Breaks)+len(ov.Breaks))
		merged = append(merged, day.Breaks...)
		merged = append(merged, ov.Breaks...)
		breaks = merged
	}

	return EffectiveDay{Window: window, Breaks: clipBreaks(window, breaks)}, true
}

// clipBreaks trims breaks to the window and drops those fully outside it.
func clipBreaks(window Segment, breaks []BreakPeriod) []BreakPeriod {
	var out []BreakPeriod
	for _, b := range breaks {
		if b.EndMinute <= window.StartMinute || b.StartMinute >= window.EndMinute {
			continue
		}
		if b.StartMinute < window.StartMinute {
			b.StartMinute = window.StartMinute
		}
		if b.EndMinute > window.EndMinute {
			b.EndMinute = window.EndMinute
		}
		if b.EndMinute > b.StartMinute {
			out = append(out, b)
		}
	}
	return out
}
