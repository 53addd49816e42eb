package availability

import "time"

const dateLayout = "2006-01-02"

// LocalDay anchors a calendar date to an organization's timezone. All
// wall-clock arithmetic for the day goes through it so no computation ever
// falls back to the server zone or UTC.
type LocalDay struct {
	midnight time.Time // 00:00 local
	loc      *time.Location
}

// ResolveLocalDay anchors date (YYYY-MM-DD) to the IANA zone tz. There is
// deliberately no fallback zone: an empty or unknown tz is a
// ValidationError, as is a malformed date string.
func ResolveLocalDay(date, tz string) (LocalDay, error) {
	if tz == "" {
		return LocalDay{}, validationErrorf("timezone is required")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return LocalDay{}, validationErrorf("unknown timezone %q", tz)
	}
	parsed, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return LocalDay{}, validationErrorf("invalid date %q, want YYYY-MM-DD", date)
	}
	return LocalDay{midnight: parsed, loc: loc}, nil
}

// Weekday is the day of week as observed in the organization's timezone.
func (d LocalDay) Weekday() time.Weekday { return d.midnight.Weekday() }

func (d LocalDay) Location() *time.Location { return d.loc }

// Bounds returns the UTC instants of local 00:00 (inclusive) and local
// 24:00 (exclusive). The upper bound is built from the next calendar date
// so days shortened or stretched by DST stay exact.
func (d LocalDay) Bounds() Interval {
	y, m, day := d.midnight.Date()
	next := time.Date(y, m, day+1, 0, 0, 0, 0, d.loc)
	return Interval{Start: d.midnight.UTC(), End: next.UTC()}
}

// At returns the UTC instant of the given minute offset from local
// midnight, anchored explicitly to the day's timezone.
func (d LocalDay) At(minute int) time.Time {
	y, m, day := d.midnight.Date()
	return time.Date(y, m, day, minute/60, minute%60, 0, 0, d.loc).UTC()
}
