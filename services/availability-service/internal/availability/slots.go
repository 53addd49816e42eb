package availability

import "fmt"

// ComputeInput is a consistent snapshot of everything one availability
// query needs. The engine performs no I/O of its own; callers gather the
// snapshot and the engine stays a pure function of it.
type ComputeInput struct {
	Date            string // YYYY-MM-DD, organization-local calendar date
	Timezone        string // IANA identifier, mandatory
	Schedule        WeeklySchedule
	Overrides       WeeklyOverrides // nil for an organization-wide query
	DurationMinutes int
	StepMinutes     int
	Bookings        []Interval // UTC, already scoped to the employee or the whole organization
}

// Result is the ordered slot sequence for one day. Closed distinguishes a
// day the business does not operate from an open day with no free slots.
type Result struct {
	Closed   bool
	Segments []Segment
	Slots    []Slot
}

// Compute runs the full pipeline: timezone anchoring, schedule resolution,
// break subtraction, slot generation and conflict marking.
//
// Slot starts walk each segment at StepMinutes from the segment start; the
// bound is inclusive (t + duration <= segment end), so a slot may end
// exactly where a break or the window begins. A duration longer than the
// step yields overlapping candidates.
func Compute(in ComputeInput) (Result, error) {
	if in.DurationMinutes <= 0 {
		return Result{}, validationErrorf("duration must be positive, got %d", in.DurationMinutes)
	}
	if in.StepMinutes <= 0 {
		return Result{}, validationErrorf("step must be positive, got %d", in.StepMinutes)
	}

	day, err := ResolveLocalDay(in.Date, in.Timezone)
	if err != nil {
		return Result{}, err
	}

	effective, open := ResolveDaySchedule(in.Schedule, in.Overrides, day.Weekday())
	if !open {
		return Result{Closed: true}, nil
	}

	segments := BuildSegments(effective.Window, effective.Breaks)

	var slots []Slot
	for _, seg := range segments {
		for t := seg.StartMinute; t+in.DurationMinutes <= seg.EndMinute; t += in.StepMinutes {
			start := day.At(t)
			end := day.At(t + in.DurationMinutes)
			slots = append(slots, Slot{
				LocalTime: minuteClock(t),
				Start:     start,
				End:       end,
				Available: !overlapsAny(Interval{Start: start, End: end}, in.Bookings),
			})
		}
	}

	return Result{Segments: segments, Slots: slots}, nil
}

func overlapsAny(slot Interval, busy []Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}

func minuteClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
