package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBusyLister records every window it is asked about and answers each call
// from a scripted list of responses.
type fakeBusyLister struct {
	windows   []Interval
	responses []fakeBusyResponse
}

type fakeBusyResponse struct {
	busy []BusyInterval
	err  error
}

func (f *fakeBusyLister) BusyWithin(_ context.Context, window Interval) ([]BusyInterval, error) {
	f.windows = append(f.windows, window)
	if len(f.responses) == 0 {
		return nil, nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp.busy, resp.err
}

func fullyBooked(window Interval) fakeBusyResponse {
	return fakeBusyResponse{busy: []BusyInterval{{Interval: window, Title: "Blocked"}}}
}

func businessWindow(day CalendarDate) Interval {
	return Interval{
		Start: day.At(8, 0, time.UTC),
		End:   day.At(20, 0, time.UTC),
	}
}

func TestNextAvailable_FirstFreeDayWins(t *testing.T) {
	from := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	lister := &fakeBusyLister{
		responses: []fakeBusyResponse{
			fullyBooked(businessWindow(from.AddDays(1))),
			{}, // day two is wide open
		},
	}

	slot, err := NextAvailable(context.Background(), lister, from, time.UTC, 30*time.Minute)
	require.NoError(t, err)

	// first slot on the first free day starts at 08:00
	want := from.AddDays(2).At(8, 0, time.UTC)
	assert.True(t, slot.Start.Equal(want), "slot start = %v, want %v", slot.Start, want)
	assert.Len(t, lister.windows, 2, "search must stop at the first free day")
}

func TestNextAvailable_SkipsToGapWithinDay(t *testing.T) {
	from := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	day := from.AddDays(1)
	window := businessWindow(day)
	lister := &fakeBusyLister{
		responses: []fakeBusyResponse{
			{busy: []BusyInterval{{
				Interval: Interval{Start: window.Start, End: day.At(13, 0, time.UTC)},
				Title:    "Morning block",
			}}},
		},
	}

	slot, err := NextAvailable(context.Background(), lister, from, time.UTC, time.Hour)
	require.NoError(t, err)
	assert.True(t, slot.Start.Equal(day.At(13, 0, time.UTC)))
}

func TestNextAvailable_ExhaustedHorizon(t *testing.T) {
	from := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	lister := &fakeBusyLister{}
	for i := 1; i <= FallbackHorizonDays; i++ {
		lister.responses = append(lister.responses, fullyBooked(businessWindow(from.AddDays(i))))
	}

	_, err := NextAvailable(context.Background(), lister, from, time.UTC, 30*time.Minute)
	require.ErrorIs(t, err, ErrNoAvailability)

	// exactly seven collaborator calls, one per day, in day order
	require.Len(t, lister.windows, FallbackHorizonDays)
	for i, window := range lister.windows {
		want := businessWindow(from.AddDays(i + 1))
		assert.True(t, window.Start.Equal(want.Start), "day %d window start = %v, want %v", i+1, window.Start, want.Start)
		assert.True(t, window.End.Equal(want.End), "day %d window end = %v, want %v", i+1, window.End, want.End)
	}
}

func TestNextAvailable_CollaboratorErrorStopsSearch(t *testing.T) {
	from := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	boom := errors.New("backend unavailable")
	lister := &fakeBusyLister{
		responses: []fakeBusyResponse{
			fullyBooked(businessWindow(from.AddDays(1))),
			{err: boom},
		},
	}

	_, err := NextAvailable(context.Background(), lister, from, time.UTC, 30*time.Minute)
	require.ErrorIs(t, err, boom)
	assert.Len(t, lister.windows, 2)
}

func TestNextAvailable_RejectsNonPositiveDuration(t *testing.T) {
	from := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	_, err := NextAvailable(context.Background(), &fakeBusyLister{}, from, time.UTC, 0)
	require.Error(t, err)
}

func TestConflictTitles(t *testing.T) {
	busy := []BusyInterval{
		{Interval: Interval{Start: utc(9, 0), End: utc(10, 0)}, Title: "Standup"},
		{Interval: Interval{Start: utc(10, 0), End: utc(11, 0)}, Title: "1:1"},
		{Interval: Interval{Start: utc(11, 0), End: utc(12, 0)}, Title: "Standup"},
	}
	assert.Equal(t, []string{"Standup", "1:1"}, ConflictTitles(busy))
	assert.Nil(t, ConflictTitles(nil))
}
