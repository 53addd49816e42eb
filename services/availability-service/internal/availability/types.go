package availability

import "time"

// Interval is a half-open [Start, End) span of absolute time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// BreakPeriod is a recurring pause inside a day's operating window,
// expressed as minute offsets from local midnight.
type BreakPeriod struct {
	StartMinute int
	EndMinute   int
	Note        string
}

// DaySchedule is the operating window and breaks for one weekday.
// Breaks need not be sorted or disjoint; the segment builder merges them.
type DaySchedule struct {
	StartMinute int
	EndMinute   int
	Breaks      []BreakPeriod
}

// WeeklySchedule maps weekday (time.Sunday..time.Saturday) to that day's
// schedule. A missing entry means the organization is closed that day.
type WeeklySchedule map[time.Weekday]DaySchedule

// DayOverride narrows the organization schedule for one employee on one
// weekday. With UseOrganizationSchedule set the override is inert.
type DayOverride struct {
	UseOrganizationSchedule bool
	StartMinute             int
	EndMinute               int
	Breaks                  []BreakPeriod
}

// WeeklyOverrides maps weekday to an employee's override for that day.
type WeeklyOverrides map[time.Weekday]DayOverride

// Segment is a maximal workable sub-interval of the operating window not
// covered by any break, in minute offsets from local midnight.
type Segment struct {
	StartMinute int
	EndMinute   int
}

// Slot is one candidate booking of exactly the service duration.
type Slot struct {
	LocalTime string    // "HH:MM" wall clock in the organization's zone
	Start     time.Time // UTC
	End       time.Time // UTC
	Available bool
}
