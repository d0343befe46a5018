package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"github.com/calsched/calsched/internal/schedule"
)

// toScheduleEvent converts a Google Calendar event to the core event type.
// All-day events carry a Date instead of a DateTime; both are handled, with
// the instants normalized to UTC.
func toScheduleEvent(event *gcal.Event) schedule.Event {
	if event == nil {
		return schedule.Event{}
	}

	ev := schedule.Event{
		ID:       event.Id,
		Title:    event.Summary,
		HTMLLink: event.HtmlLink,
	}

	if event.Start != nil {
		ev.Start = parseEventTime(event.Start)
		ev.TimeZone = event.Start.TimeZone
	}
	if event.End != nil {
		ev.End = parseEventTime(event.End)
	}

	return ev
}

func parseEventTime(edt *gcal.EventDateTime) time.Time {
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t.UTC()
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fromScheduleEvent converts a core event to the wire representation.
func fromScheduleEvent(ev schedule.Event) *gcal.Event {
	return &gcal.Event{
		Summary: ev.Title,
		Start:   toEventDateTime(ev.Start, ev.TimeZone),
		End:     toEventDateTime(ev.End, ev.TimeZone),
	}
}

func toEventDateTime(t time.Time, timeZone string) *gcal.EventDateTime {
	if timeZone == "" {
		timeZone = "UTC"
	}
	return &gcal.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: timeZone,
	}
}
