package schedule

import (
	"context"
	"errors"
	"time"
)

// Fallback search bounds. The horizon guarantees termination: at most seven
// collaborator calls per search, one per day, issued strictly in day order so
// the earliest slot is always the one reported.
const (
	FallbackHorizonDays = 7

	businessDayStart = 8  // 08:00 in the query timezone
	businessDayEnd   = 20 // 20:00 in the query timezone
)

// ErrNoAvailability is returned when the whole fallback horizon is booked.
var ErrNoAvailability = errors.New("no availability in the next 7 days")

// BusyLister supplies the busy intervals recorded within a window, freshly
// fetched from the calendar collaborator on every call.
type BusyLister interface {
	BusyWithin(ctx context.Context, window Interval) ([]BusyInterval, error)
}

// CalendarBusyLister adapts a Calendar into a BusyLister by listing events in
// the window and projecting them onto their busy intervals.
type CalendarBusyLister struct {
	Calendar Calendar
}

func (l CalendarBusyLister) BusyWithin(ctx context.Context, window Interval) ([]BusyInterval, error) {
	events, err := l.Calendar.ListEvents(ctx, window.Start, window.End, "")
	if err != nil {
		return nil, &CollaboratorError{Op: "list", Err: err}
	}
	return BusyFromEvents(events), nil
}

// NextAvailable searches forward from the requested date for the first slot
// of at least duration d, one day at a time over the fallback horizon. Each
// day is probed with the fixed [08:00, 20:00) business window in the query
// timezone. Days are checked sequentially, never concurrently: ordering
// decides which slot counts as "next". Returns ErrNoAvailability when the
// horizon is exhausted.
func NextAvailable(ctx context.Context, busy BusyLister, from CalendarDate, loc *time.Location, d time.Duration) (Slot, error) {
	if d <= 0 {
		return Slot{}, errors.New("duration must be positive")
	}
	if loc == nil {
		loc = time.UTC
	}

	for i := 1; i <= FallbackHorizonDays; i++ {
		day := from.AddDays(i)
		window := Interval{
			Start: day.At(businessDayStart, 0, loc).UTC(),
			End:   day.At(businessDayEnd, 0, loc).UTC(),
		}

		intervals, err := busy.BusyWithin(ctx, window)
		if err != nil {
			return Slot{}, err
		}
		if slots := FreeSlots(window, intervals, d); len(slots) > 0 {
			return slots[0], nil
		}
	}
	return Slot{}, ErrNoAvailability
}

// ConflictTitles lists the distinct event titles blocking a window, in the
// order they occur. Used to build the diagnostic naming what a requested
// window collided with.
func ConflictTitles(busy []BusyInterval) []string {
	var titles []string
	seen := make(map[string]bool, len(busy))
	for _, b := range busy {
		if seen[b.Title] {
			continue
		}
		seen[b.Title] = true
		titles = append(titles, b.Title)
	}
	return titles
}
