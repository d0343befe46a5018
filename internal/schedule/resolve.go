package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// locateHorizon bounds the search when no date narrows the scope.
const locateHorizonDays = 365

// Locate finds the single event matching name. With a date the scope is that
// one day; without, it runs from now through the next year. Titles match by
// case-insensitive equality or substring in either direction, so "Team Sync"
// finds "Team Sync (weekly)" and "Sync" finds "Team Sync".
//
// Zero matches yield a NotFoundError naming the searched scope, two or more
// an AmbiguousError listing every candidate with its formatted start time.
// Ambiguity is never auto-resolved; the caller must retry with a date.
func Locate(ctx context.Context, cal Calendar, name string, date *CalendarDate, now time.Time) (Event, error) {
	var timeMin, timeMax time.Time
	var scope string
	if date != nil {
		timeMin = date.At(0, 0, time.UTC)
		timeMax = date.At(23, 59, time.UTC).Add(59 * time.Second)
		scope = fmt.Sprintf("on %s", date)
	} else {
		timeMin = now.UTC()
		timeMax = timeMin.AddDate(0, 0, locateHorizonDays)
		scope = "in the future"
	}

	events, err := cal.ListEvents(ctx, timeMin, timeMax, name)
	if err != nil {
		return Event{}, &CollaboratorError{Op: "list", Err: err}
	}

	var matches []Event
	for _, ev := range events {
		if titleMatches(ev.Title, name) {
			matches = append(matches, ev)
		}
	}

	switch len(matches) {
	case 0:
		return Event{}, &NotFoundError{Name: name, Scope: scope}
	case 1:
		return matches[0], nil
	}

	options := make([]string, len(matches))
	for i, ev := range matches {
		options[i] = fmt.Sprintf("'%s' on %s", ev.Title, FormatInstant(ev.Start, time.UTC))
	}
	return Event{}, &AmbiguousError{Name: name, Options: options}
}

func titleMatches(title, name string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	n := strings.ToLower(strings.TrimSpace(name))
	if t == "" || n == "" {
		return false
	}
	return strings.Contains(t, n) || strings.Contains(n, t)
}
