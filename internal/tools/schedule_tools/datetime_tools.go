package schedule_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tools/common"
)

// RegisterDateTimeTools registers the date and timezone tools with the MCP server.
func RegisterDateTimeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getCurrentDateTool := mcp.NewTool("get_current_date",
		mcp.WithDescription("Returns today's date in 'YYYY-MM-DD' format. No input arguments required."),
	)

	s.AddTool(getCurrentDateTool, common.InstrumentedToolHandler("get_current_date", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetCurrentDate(ctx, request)
		}))

	setHomeTimezoneTool := mcp.NewTool("set_home_timezone",
		mcp.WithDescription("Sets the user's home timezone."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Unique user identifier"),
		),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA timezone string, e.g., 'Asia/Kolkata'"),
		),
	)

	s.AddTool(setHomeTimezoneTool, common.InstrumentedToolHandler("set_home_timezone", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSetHomeTimezone(ctx, request, sc)
		}))

	getHomeTimezoneTool := mcp.NewTool("get_home_timezone",
		mcp.WithDescription("Returns the user's home timezone."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Unique user identifier"),
		),
	)

	s.AddTool(getHomeTimezoneTool, common.InstrumentedToolHandler("get_home_timezone", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetHomeTimezone(ctx, request, sc)
		}))

	return nil
}

func handleGetCurrentDate(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(time.Now().Format("2006-01-02")), nil
}

func handleSetHomeTimezone(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}
	timezone, ok := args["timezone"].(string)
	if !ok || timezone == "" {
		return mcp.NewToolResultError("timezone is required"), nil
	}

	if err := sc.Timezones().Set(userID, timezone); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("An error occurred: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Success. User's home timezone has been set to %s.", timezone)), nil
}

func handleGetHomeTimezone(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	zone, ok := sc.Timezones().Get(userID)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Timezone of user's ID %s not found.", userID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Timezone of user's ID %s is %s", userID, zone)), nil
}
