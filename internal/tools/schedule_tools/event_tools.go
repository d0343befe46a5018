package schedule_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/schedule"
	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tools/batch"
	"github.com/calsched/calsched/internal/tools/common"
)

// RegisterEventTools registers the meeting lifecycle tools with the MCP server.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createMeetingTool := mcp.NewTool("create_meeting",
		mcp.WithDescription("Creates a new calendar meeting."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Meeting title"),
		),
		mcp.WithString("start_expr",
			mcp.Required(),
			mcp.Description("Start time, e.g., '2025-06-30T14:00:00Z' or 'next Friday at 2:30pm'"),
		),
		mcp.WithNumber("duration_minutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA timezone for the event, e.g., 'America/New_York'"),
		),
	)

	s.AddTool(createMeetingTool, common.InstrumentedToolHandlerWithOperation(
		"create_meeting", instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateMeeting(ctx, request, sc)
		}))

	rescheduleEventTool := mcp.NewTool("reschedule_event",
		mcp.WithDescription("Reschedules a calendar event, keeping its original duration."),
		mcp.WithString("old_name",
			mcp.Required(),
			mcp.Description("Title of the event to move"),
		),
		mcp.WithString("new_start_expr",
			mcp.Required(),
			mcp.Description("New start, e.g., '2025-06-30T14:00:00' or 'next Friday at 4pm'"),
		),
		mcp.WithString("new_timezone",
			mcp.Required(),
			mcp.Description("IANA timezone for the new start"),
		),
		mcp.WithString("old_date",
			mcp.Description("Optional date narrowing which event to move, e.g., 'this Friday'"),
		),
	)

	s.AddTool(rescheduleEventTool, common.InstrumentedToolHandlerWithOperation(
		"reschedule_event", instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRescheduleEvent(ctx, request, sc)
		}))

	deleteEventTool := mcp.NewTool("delete_event",
		mcp.WithDescription("Deletes one or more calendar events by title."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Title of the event to delete, or an array of titles for batch deletion"),
		),
		mcp.WithString("date",
			mcp.Description("Optional date narrowing which event to delete, e.g., 'next Friday', '2024-09-15'. If omitted, finds a unique future event."),
		),
	)

	s.AddTool(deleteEventTool, common.InstrumentedToolHandlerWithOperation(
		"delete_event", instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	return nil
}

func handleCreateMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	startExpr, ok := args["start_expr"].(string)
	if !ok || startExpr == "" {
		return mcp.NewToolResultError("start_expr is required"), nil
	}
	durationMinutes, ok := args["duration_minutes"].(float64)
	if !ok {
		return mcp.NewToolResultError("duration_minutes is required"), nil
	}
	timezone, ok := args["timezone"].(string)
	if !ok || timezone == "" {
		return mcp.NewToolResultError("timezone is required"), nil
	}

	cal, err := calendarFor(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := createMeeting(ctx, cal, time.Now(), title, startExpr, int(durationMinutes), timezone)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

func createMeeting(ctx context.Context, cal schedule.Calendar, now time.Time, title, startExpr string, durationMinutes int, timezone string) (string, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration_minutes must be positive, got %d", durationMinutes)
	}

	loc, err := schedule.LoadLocation(timezone)
	if err != nil {
		return "", err
	}

	start, err := resolveStartExpression(startExpr, loc, now, true)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	created, err := cal.InsertEvent(ctx, schedule.Event{
		Title:    title,
		Start:    start,
		End:      end,
		TimeZone: timezone,
	})
	if err != nil {
		return "", &schedule.CollaboratorError{Op: "insert", Err: err}
	}

	return fmt.Sprintf("Success. The meeting '%s' has been scheduled. View it here: %s", title, created.HTMLLink), nil
}

func handleRescheduleEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	oldName, ok := args["old_name"].(string)
	if !ok || oldName == "" {
		return mcp.NewToolResultError("old_name is required"), nil
	}
	newStartExpr, ok := args["new_start_expr"].(string)
	if !ok || newStartExpr == "" {
		return mcp.NewToolResultError("new_start_expr is required"), nil
	}
	newTimezone, ok := args["new_timezone"].(string)
	if !ok || newTimezone == "" {
		return mcp.NewToolResultError("new_timezone is required"), nil
	}
	oldDate, _ := args["old_date"].(string)

	cal, err := calendarFor(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := rescheduleEvent(ctx, cal, time.Now(), oldName, newStartExpr, newTimezone, oldDate)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

func rescheduleEvent(ctx context.Context, cal schedule.Calendar, now time.Time, oldName, newStartExpr, newTimezone, oldDate string) (string, error) {
	datePtr, err := optionalDate(oldDate, now)
	if err != nil {
		return "", err
	}

	original, err := schedule.Locate(ctx, cal, oldName, datePtr, now)
	if err != nil {
		return "", err
	}

	loc, err := schedule.LoadLocation(newTimezone)
	if err != nil {
		return "", err
	}

	newStart, err := resolveStartExpression(newStartExpr, loc, now, false)
	if err != nil {
		return "", err
	}

	// The event keeps its original duration
	duration := original.End.Sub(original.Start)

	updated := original
	updated.Start = newStart
	updated.End = newStart.Add(duration)
	updated.TimeZone = newTimezone
	if _, err := cal.UpdateEvent(ctx, updated); err != nil {
		return "", &schedule.CollaboratorError{Op: "update", Err: err}
	}

	return fmt.Sprintf("Success. The event '%s' has been rescheduled to %s.",
		oldName, schedule.FormatInstant(newStart, loc)), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	names, err := batch.ParseStringOrArray(args["name"], "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	date, _ := args["date"].(string)

	cal, err := calendarFor(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := deleteEvents(ctx, cal, time.Now(), names, date)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

// deleteEvents deletes a single event with the exact confirmation message,
// or several events with a JSON batch summary tolerating partial failures.
func deleteEvents(ctx context.Context, cal schedule.Calendar, now time.Time, names []string, date string) (string, error) {
	if len(names) == 1 {
		return deleteEvent(ctx, cal, now, names[0], date)
	}

	results := batch.ProcessBatch(names, func(name string) (string, error) {
		return deleteEvent(ctx, cal, now, name, date)
	})
	return batch.FormatResults(results), nil
}

func deleteEvent(ctx context.Context, cal schedule.Calendar, now time.Time, name, date string) (string, error) {
	datePtr, err := optionalDate(date, now)
	if err != nil {
		return "", err
	}

	event, err := schedule.Locate(ctx, cal, name, datePtr, now)
	if err != nil {
		return "", err
	}

	if err := cal.DeleteEvent(ctx, event.ID); err != nil {
		return "", &schedule.CollaboratorError{Op: "delete", Err: err}
	}
	return fmt.Sprintf("Success. The event '%s' has been deleted.", name), nil
}

// optionalDate resolves a narrowing date expression, returning nil when the
// expression is empty so event lookup falls back to the 365-day scope.
func optionalDate(expr string, now time.Time) (*schedule.CalendarDate, error) {
	if expr == "" {
		return nil, nil
	}
	date, err := schedule.ResolveDate(expr, time.UTC, now)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// naiveStartLayouts are the literal layouts without a UTC offset. They are
// interpreted as wall-clock time in the event timezone.
var naiveStartLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// resolveStartExpression turns a start expression into an absolute instant
// in loc. A 'T' separator marks the expression as an ISO literal:
// offset-aware literals are converted into loc, naive ones interpreted as
// wall-clock time in loc. Anything else resolves its date with the natural
// date rules and extracts a time of day; with bumpPast, a resolved instant
// already in the past moves forward one day unless the phrase names a
// concrete day.
func resolveStartExpression(expr string, loc *time.Location, now time.Time, bumpPast bool) (time.Time, error) {
	if containsISOSeparator(expr) {
		if t, err := time.Parse(time.RFC3339, expr); err == nil {
			return t.In(loc), nil
		}
		for _, layout := range naiveStartLayouts {
			if t, err := time.ParseInLocation(layout, expr, loc); err == nil {
				return t, nil
			}
		}
		// A malformed literal still gets a shot at natural resolution
	}

	date, err := schedule.ResolveDate(expr, loc, now)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := schedule.ExtractClock(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not find a specific time in '%s': %w", expr, err)
	}

	t := date.At(clock.Hour, clock.Minute, loc)
	if bumpPast && t.Before(now) && !schedule.AnchoredToDay(expr) {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

func containsISOSeparator(expr string) bool {
	for i := 0; i < len(expr); i++ {
		if expr[i] == 'T' {
			return true
		}
	}
	return false
}
