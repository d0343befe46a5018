package schedule

import (
	"context"
	"time"
)

// Interval is a half-open time range [Start, End) in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the interval satisfies Start < End.
func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// BusyInterval is an interval blocked by an existing event.
type BusyInterval struct {
	Interval
	Title string
}

// Slot is a free interval long enough to host a requested duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Event is a calendar event as supplied by the calendar collaborator.
// This core never persists events; they live and die with the collaborator.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	TimeZone string
	HTMLLink string
}

// Calendar is the contract this core consumes from the calendar collaborator.
// Implementations are injected per call; the core holds no service handles.
type Calendar interface {
	// ListEvents returns events overlapping [timeMin, timeMax), expanded to
	// single instances and ordered by start time. An optional free-text query
	// narrows the result server-side.
	ListEvents(ctx context.Context, timeMin, timeMax time.Time, query string) ([]Event, error)

	// InsertEvent creates an event and returns it with the collaborator's
	// assigned ID and reference link.
	InsertEvent(ctx context.Context, ev Event) (Event, error)

	// UpdateEvent replaces the stored event identified by ev.ID.
	UpdateEvent(ctx context.Context, ev Event) (Event, error)

	// DeleteEvent removes the event with the given ID.
	DeleteEvent(ctx context.Context, id string) error
}

// BusyFromEvents projects events onto their busy intervals, preserving order.
// Events without a concrete start or end (all-day markers from some backends)
// are skipped rather than treated as zero-length blocks.
func BusyFromEvents(events []Event) []BusyInterval {
	var busy []BusyInterval
	for _, ev := range events {
		if ev.Start.IsZero() || ev.End.IsZero() {
			continue
		}
		title := ev.Title
		if title == "" {
			title = "Untitled"
		}
		busy = append(busy, BusyInterval{
			Interval: Interval{Start: ev.Start.UTC(), End: ev.End.UTC()},
			Title:    title,
		})
	}
	return busy
}
