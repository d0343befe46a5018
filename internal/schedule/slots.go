package schedule

import "time"

// FreeSlots finds the free slots of at least duration d inside window, given
// the busy intervals overlapping that window sorted by start time. Pure
// function, no I/O.
//
// A single greedy pass keeps a cursor at the earliest still-free instant:
// any gap of at least d before the next busy interval yields a slot, then the
// cursor jumps past the busy block. Returned slots are ordered by start,
// mutually disjoint, each at least d long, and none overlaps a busy input.
func FreeSlots(window Interval, busy []BusyInterval, d time.Duration) []Slot {
	if d <= 0 || !window.Valid() {
		return nil
	}

	var slots []Slot
	cursor := window.Start
	for _, b := range busy {
		if !cursor.Add(d).After(b.Start) {
			end := b.Start
			if end.After(window.End) {
				end = window.End
			}
			slots = append(slots, Slot{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if !cursor.Add(d).After(window.End) {
		slots = append(slots, Slot{Start: cursor, End: window.End})
	}
	return slots
}
