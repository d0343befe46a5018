package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/calsched/calsched/internal/google"
	"github.com/calsched/calsched/internal/schedule"
)

// Client wraps the Google Calendar service for a single calendar. It
// implements schedule.Calendar; all timestamps cross the wire as RFC3339.
type Client struct {
	svc        *gcal.Service
	calendarID string
}

// HasToken checks if a valid OAuth token exists for the calendar account.
func HasToken() bool {
	return google.HasToken()
}

// NewClientWithProvider creates a Calendar client authenticated through the
// given token provider, scoped to the given calendar ID ("primary" for the
// account's primary calendar).
func NewClientWithProvider(ctx context.Context, calendarID string, provider google.TokenProvider) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	token, err := provider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token: %w", err)
	}

	conf := google.GetOAuthConfig()
	client := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc, calendarID: calendarID}, nil
}

// NewClient creates a Calendar client using the default file token provider.
func NewClient(ctx context.Context, calendarID string) (*Client, error) {
	return NewClientWithProvider(ctx, calendarID, google.NewFileTokenProvider())
}

// CalendarID returns the calendar this client operates on.
func (c *Client) CalendarID() string {
	return c.calendarID
}

// ListEvents lists single-instance events within [timeMin, timeMax), ordered
// by start time. An optional query narrows results server-side.
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time, query string) ([]schedule.Event, error) {
	call := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	if query != "" {
		call = call.Q(query)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []schedule.Event
	for _, item := range result.Items {
		events = append(events, toScheduleEvent(item))
	}
	return events, nil
}

// InsertEvent creates an event and returns it with the collaborator-assigned
// ID and reference link.
func (c *Client) InsertEvent(ctx context.Context, ev schedule.Event) (schedule.Event, error) {
	created, err := c.svc.Events.Insert(c.calendarID, fromScheduleEvent(ev)).Context(ctx).Do()
	if err != nil {
		return schedule.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return toScheduleEvent(created), nil
}

// UpdateEvent replaces the stored event identified by ev.ID, preserving
// fields this core does not model (attendees, description, location).
func (c *Client) UpdateEvent(ctx context.Context, ev schedule.Event) (schedule.Event, error) {
	existing, err := c.svc.Events.Get(c.calendarID, ev.ID).Context(ctx).Do()
	if err != nil {
		return schedule.Event{}, fmt.Errorf("failed to get existing event: %w", err)
	}

	if ev.Title != "" {
		existing.Summary = ev.Title
	}
	if !ev.Start.IsZero() {
		existing.Start = toEventDateTime(ev.Start, ev.TimeZone)
	}
	if !ev.End.IsZero() {
		existing.End = toEventDateTime(ev.End, ev.TimeZone)
	}

	updated, err := c.svc.Events.Update(c.calendarID, ev.ID, existing).Context(ctx).Do()
	if err != nil {
		return schedule.Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return toScheduleEvent(updated), nil
}

// DeleteEvent deletes the event with the given ID.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if err := c.svc.Events.Delete(c.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
