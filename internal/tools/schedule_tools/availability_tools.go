package schedule_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/schedule"
	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tools/common"
)

// RegisterAvailabilityTools registers the availability tool with the MCP server.
func RegisterAvailabilityTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	checkAvailabilityTool := mcp.NewTool("check_availability",
		mcp.WithDescription("Checks for available time slots. If the requested window is busy, it automatically searches for the next available slot within the next 7 days and suggests it."),
		mcp.WithString("search_date",
			mcp.Required(),
			mcp.Description("Date to check, e.g., 'next Monday', 'tomorrow', '2025-09-15'"),
		),
		mcp.WithString("start_time",
			mcp.Required(),
			mcp.Description("Window start, strict 12-hour format like '9:00AM' (minutes required)"),
		),
		mcp.WithString("end_time",
			mcp.Required(),
			mcp.Description("Window end, strict 12-hour format like '5:00PM' (minutes required)"),
		),
		mcp.WithNumber("duration_minutes",
			mcp.Required(),
			mcp.Description("Desired meeting duration in minutes"),
		),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA timezone the window is expressed in, e.g., 'America/New_York'"),
		),
	)

	s.AddTool(checkAvailabilityTool, common.InstrumentedToolHandlerWithOperation(
		"check_availability", instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCheckAvailability(ctx, request, sc)
		}))

	return nil
}

func handleCheckAvailability(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	searchDate, ok := args["search_date"].(string)
	if !ok || searchDate == "" {
		return mcp.NewToolResultError("search_date is required"), nil
	}
	startTime, ok := args["start_time"].(string)
	if !ok || startTime == "" {
		return mcp.NewToolResultError("start_time is required"), nil
	}
	endTime, ok := args["end_time"].(string)
	if !ok || endTime == "" {
		return mcp.NewToolResultError("end_time is required"), nil
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

	msg, err := checkAvailability(ctx, cal, time.Now(), searchDate, startTime, endTime, int(durationMinutes), timezone)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(msg), nil
}

// checkAvailability runs the full availability pipeline: resolve the date,
// build the UTC window, compute free slots, and on a fully booked window
// search the 7-day fallback horizon.
//
// The home timezone used for the "your time" rendering is the query
// timezone; callers that know better can store a preference through
// set_home_timezone and pass it here as the query zone.
func checkAvailability(ctx context.Context, cal schedule.Calendar, now time.Time, searchDate, startTime, endTime string, durationMinutes int, timezone string) (string, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("duration_minutes must be positive, got %d", durationMinutes)
	}
	duration := time.Duration(durationMinutes) * time.Minute

	loc, err := schedule.LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	homeLoc := loc

	date, err := schedule.ResolveDate(searchDate, loc, now)
	if err != nil {
		return "", fmt.Errorf("date parsing error: %w", err)
	}

	window, err := schedule.BuildWindow(date, startTime, endTime, loc)
	if err != nil {
		return "", err
	}

	events, err := cal.ListEvents(ctx, window.Start, window.End, "")
	if err != nil {
		return "", &schedule.CollaboratorError{Op: "list", Err: err}
	}
	busy := schedule.BusyFromEvents(events)

	if slots := schedule.FreeSlots(window, busy, duration); len(slots) > 0 {
		var b strings.Builder
		b.WriteString("Available slots found:")
		for _, slot := range slots {
			fmt.Fprintf(&b, "\n- %s | %s | %s your time (%s)",
				slot.Start.UTC().Format(time.RFC3339),
				schedule.FormatClock(slot.Start, loc),
				slot.Start.In(homeLoc).Format("03:04 PM"),
				slot.Start.In(homeLoc).Format("MST"),
			)
		}
		return b.String(), nil
	}

	diagnostic := fmt.Sprintf("The requested time on %s is fully booked", searchDate)
	if titles := schedule.ConflictTitles(busy); len(titles) > 0 {
		diagnostic += fmt.Sprintf(" by: %s.", strings.Join(titles, ", "))
	} else {
		diagnostic += "."
	}

	slot, err := schedule.NextAvailable(ctx, schedule.CalendarBusyLister{Calendar: cal}, date, loc, duration)
	switch {
	case errors.Is(err, schedule.ErrNoAvailability):
		return diagnostic + " No other availability was found in the next 7 days.", nil
	case err != nil:
		return "", err
	default:
		return fmt.Sprintf("%s The next available slot is on %s.",
			diagnostic, schedule.FormatInstant(slot.Start, homeLoc)), nil
	}
}
