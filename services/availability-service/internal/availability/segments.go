package availability

import "sort"

// BuildSegments subtracts breaks from the operating window, returning the
// maximal disjoint workable sub-intervals in chronological order. Breaks
// may arrive unsorted and overlapping; the sweep merges them by only ever
// moving the cursor forward. Breaks that consume the whole window yield an
// empty list.
func BuildSegments(window Segment, breaks []BreakPeriod) []Segment {
	if window.EndMinute <= window.StartMinute {
		return nil
	}

	sorted := make([]BreakPeriod, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMinute < sorted[j].StartMinute })

	var segments []Segment
	cursor := window.StartMinute
	for _, b := range sorted {
		if b.EndMinute <= b.StartMinute {
			continue
		}
		if b.EndMinute <= window.StartMinute || b.StartMinute >= window.EndMinute {
			continue
		}
		if cursor < b.StartMinute {
			segments = append(segments, Segment{StartMinute: cursor, EndMinute: b.StartMinute})
		}
		if b.EndMinute > cursor {
			cursor = b.EndMinute
		}
		if cursor >= window.EndMinute {
			return segments
		}
	}
	if cursor < window.EndMinute {
		segments = append(segments, Segment{StartMinute: cursor, EndMinute: window.EndMinute})
	}
	return segments
}
