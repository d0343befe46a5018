package schedule_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/google"
	"github.com/calsched/calsched/internal/schedule"
	"github.com/calsched/calsched/internal/server"
)

// RegisterScheduleTools registers all scheduling tools with the MCP server.
func RegisterScheduleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterDateTimeTools(s, sc); err != nil {
		return fmt.Errorf("failed to register date/time tools: %w", err)
	}
	if err := RegisterAvailabilityTools(s, sc); err != nil {
		return fmt.Errorf("failed to register availability tools: %w", err)
	}
	if err := RegisterEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}
	return nil
}

// calendarFor returns the calendar collaborator for the server context, or
// an error message with authorization instructions when no OAuth token is
// available yet.
func calendarFor(sc *server.ServerContext) (schedule.Calendar, error) {
	client := sc.CalendarClient()
	if client == nil {
		return nil, fmt.Errorf(`Google OAuth token not found. To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account and grant calendar access
3. Copy the authorization code and complete authentication with it

You only need to authorize once. The token is refreshed automatically.`, google.GetAuthURL())
	}
	return client, nil
}
