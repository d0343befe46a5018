package schedule_tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calsched/calsched/internal/schedule"
	"github.com/calsched/calsched/internal/tools/batch"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestResolveStartExpression(t *testing.T) {
	nyc := mustLoadLocation(t, "America/New_York")

	tests := []struct {
		name     string
		expr     string
		loc      *time.Location
		bumpPast bool
		want     time.Time
	}{
		{
			name: "offset-aware literal converts into location",
			expr: "2025-06-30T14:00:00Z",
			loc:  nyc,
			want: time.Date(2025, time.June, 30, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "naive literal interpreted as wall clock",
			expr: "2025-06-30T14:00:00",
			loc:  nyc,
			want: time.Date(2025, time.June, 30, 14, 0, 0, 0, nyc),
		},
		{
			name: "naive literal without seconds",
			expr: "2025-06-30T14:00",
			loc:  nyc,
			want: time.Date(2025, time.June, 30, 14, 0, 0, 0, nyc),
		},
		{
			name: "natural language with anchored day",
			expr: "tomorrow at 2:30pm",
			loc:  time.UTC,
			want: time.Date(2024, time.January, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "weekday phrase",
			expr: "next friday at 4pm",
			loc:  time.UTC,
			want: time.Date(2024, time.January, 26, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "past unanchored time bumps to next day",
			expr:     "at 9:00am",
			loc:      time.UTC,
			bumpPast: true,
			want:     time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "past anchored day never bumps",
			expr:     "today at 9:00am",
			loc:      time.UTC,
			bumpPast: true,
			want:     time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "no bump without the flag",
			expr: "at 9:00am",
			loc:  time.UTC,
			want: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveStartExpression(tt.expr, tt.loc, refNow, tt.bumpPast)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveStartExpression_MissingTime(t *testing.T) {
	_, err := resolveStartExpression("tomorrow", time.UTC, refNow, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find a specific time")
}

func TestCreateMeeting(t *testing.T) {
	cal := &fakeCalendar{}

	msg, err := createMeeting(context.Background(), cal, refNow,
		"Design Review", "2024-01-16T15:00:00Z", 45, "UTC")
	require.NoError(t, err)

	assert.Equal(t,
		"Success. The meeting 'Design Review' has been scheduled. View it here: https://calendar.example/evt-1",
		msg)

	require.Len(t, cal.inserted, 1)
	ev := cal.inserted[0]
	assert.Equal(t, "Design Review", ev.Title)
	assert.True(t, ev.Start.Equal(time.Date(2024, time.January, 16, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, 45*time.Minute, ev.End.Sub(ev.Start))
	assert.Equal(t, "UTC", ev.TimeZone)
}

func TestCreateMeeting_NaturalLanguage(t *testing.T) {
	nyc := mustLoadLocation(t, "America/New_York")
	cal := &fakeCalendar{}

	_, err := createMeeting(context.Background(), cal, refNow,
		"Quarterly Planning", "next friday at 2:30pm", 60, "America/New_York")
	require.NoError(t, err)

	require.Len(t, cal.inserted, 1)
	want := time.Date(2024, time.January, 26, 14, 30, 0, 0, nyc)
	assert.True(t, cal.inserted[0].Start.Equal(want),
		"got %v, want %v", cal.inserted[0].Start, want)
}

func TestCreateMeeting_Errors(t *testing.T) {
	t.Run("non-positive duration", func(t *testing.T) {
		_, err := createMeeting(context.Background(), &fakeCalendar{}, refNow,
			"Sync", "tomorrow at 9:00am", 0, "UTC")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("insert failure wraps collaborator error", func(t *testing.T) {
		cal := &fakeCalendar{insertErr: errors.New("quota exceeded")}
		_, err := createMeeting(context.Background(), cal, refNow,
			"Sync", "tomorrow at 9:00am", 30, "UTC")
		require.Error(t, err)
		var collabErr *schedule.CollaboratorError
		assert.ErrorAs(t, err, &collabErr)
	})
}

func TestRescheduleEvent_KeepsDuration(t *testing.T) {
	nyc := mustLoadLocation(t, "America/New_York")
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("Team Sync",
			time.Date(2024, time.January, 17, 15, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 17, 16, 30, 0, 0, time.UTC)),
	}}

	msg, err := rescheduleEvent(context.Background(), cal, refNow,
		"Team Sync", "2024-01-18T10:00:00", "America/New_York", "")
	require.NoError(t, err)

	assert.Equal(t,
		"Success. The event 'Team Sync' has been rescheduled to Thursday, January 18 at 10:00 AM EST.",
		msg)

	require.Len(t, cal.updated, 1)
	ev := cal.updated[0]
	assert.True(t, ev.Start.Equal(time.Date(2024, time.January, 18, 10, 0, 0, 0, nyc)))
	assert.Equal(t, 90*time.Minute, ev.End.Sub(ev.Start))
	assert.Equal(t, "America/New_York", ev.TimeZone)
}

func TestRescheduleEvent_OldDateNarrows(t *testing.T) {
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("Standup",
			time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 16, 9, 15, 0, 0, time.UTC)),
		busyEvent("Standup",
			time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 17, 9, 15, 0, 0, time.UTC)),
	}}

	_, err := rescheduleEvent(context.Background(), cal, refNow,
		"Standup", "2024-01-17T10:00:00", "UTC", "2024-01-17")
	require.NoError(t, err)

	require.Len(t, cal.updated, 1)
	// The January 17 instance moved, not the one on the 16th
	assert.Equal(t, cal.events[1].ID, cal.updated[0].ID)
}

func TestRescheduleEvent_Ambiguous(t *testing.T) {
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("Standup",
			time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 16, 9, 15, 0, 0, time.UTC)),
		busyEvent("Standup",
			time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 17, 9, 15, 0, 0, time.UTC)),
	}}

	_, err := rescheduleEvent(context.Background(), cal, refNow,
		"Standup", "2024-01-18T10:00:00", "UTC", "")
	require.Error(t, err)

	var ambErr *schedule.AmbiguousError
	assert.ErrorAs(t, err, &ambErr)
	assert.Empty(t, cal.updated)
}

func TestRescheduleEvent_NotFound(t *testing.T) {
	_, err := rescheduleEvent(context.Background(), &fakeCalendar{}, refNow,
		"Phantom Meeting", "2024-01-18T10:00:00", "UTC", "")
	require.Error(t, err)

	var notFound *schedule.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteEvent(t *testing.T) {
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("1:1 with Sam",
			time.Date(2024, time.January, 18, 14, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 18, 14, 30, 0, 0, time.UTC)),
	}}

	msg, err := deleteEvent(context.Background(), cal, refNow, "1:1 with Sam", "")
	require.NoError(t, err)

	assert.Equal(t, "Success. The event '1:1 with Sam' has been deleted.", msg)
	assert.Equal(t, []string{"1:1 with Sam-id"}, cal.deleted)
}

func TestDeleteEvent_DateNarrows(t *testing.T) {
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("Standup",
			time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 16, 9, 15, 0, 0, time.UTC)),
		busyEvent("Standup",
			time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 17, 9, 15, 0, 0, time.UTC)),
	}}

	_, err := deleteEvent(context.Background(), cal, refNow, "Standup", "2024-01-16")
	require.NoError(t, err)

	assert.Equal(t, []string{cal.events[0].ID}, cal.deleted)
}

func TestDeleteEvents_Batch(t *testing.T) {
	cal := &fakeCalendar{events: []schedule.Event{
		busyEvent("Standup",
			time.Date(2024, time.January, 16, 9, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 16, 9, 15, 0, 0, time.UTC)),
		busyEvent("Retro",
			time.Date(2024, time.January, 19, 16, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 19, 17, 0, 0, 0, time.UTC)),
	}}

	msg, err := deleteEvents(context.Background(), cal, refNow,
		[]string{"Standup", "Retro", "Phantom"}, "")
	require.NoError(t, err)

	var summary batch.BatchResult
	require.NoError(t, json.Unmarshal([]byte(msg), &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"Standup-id", "Retro-id"}, cal.deleted)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	cal := &fakeCalendar{}

	_, err := deleteEvent(context.Background(), cal, refNow, "Phantom Meeting", "")
	require.Error(t, err)

	var notFound *schedule.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Empty(t, cal.deleted)
}
