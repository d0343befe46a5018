package schedule_tools

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/calsched/calsched/internal/schedule"
	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tzstore"
)

// reference: Monday 2024-01-15, noon UTC
var refNow = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

// fakeCalendar serves canned events and records every mutation.
type fakeCalendar struct {
	events  []schedule.Event
	listErr error

	insertErr error

	inserted []schedule.Event
	updated  []schedule.Event
	deleted  []string
}

func (f *fakeCalendar) ListEvents(_ context.Context, timeMin, timeMax time.Time, _ string) ([]schedule.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []schedule.Event
	for _, ev := range f.events {
		if ev.Start.Before(timeMax) && ev.End.After(timeMin) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, ev schedule.Event) (schedule.Event, error) {
	if f.insertErr != nil {
		return schedule.Event{}, f.insertErr
	}
	ev.ID = "evt-1"
	ev.HTMLLink = "https://calendar.example/evt-1"
	f.inserted = append(f.inserted, ev)
	return ev, nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, ev schedule.Event) (schedule.Event, error) {
	f.updated = append(f.updated, ev)
	return ev, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func busyEvent(title string, start, end time.Time) schedule.Event {
	return schedule.Event{
		ID:    title + "-id",
		Title: title,
		Start: start,
		End:   end,
	}
}

// newToolTestContext builds a ServerContext backed by a throwaway timezone
// store, with the OAuth cache pointed at a temp dir so no real token is seen.
func newToolTestContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	store := tzstore.New(filepath.Join(t.TempDir(), "timezones.json"))
	sc, err := server.NewServerContext(context.Background(), "primary", store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}
