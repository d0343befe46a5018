package google_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/calendar"
	"github.com/calsched/calsched/internal/google"
	"github.com/calsched/calsched/internal/server"
)

// RegisterGoogleTools registers the Google OAuth tools with the MCP server
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getAuthURLTool := mcp.NewTool("google_get_auth_url",
		mcp.WithDescription("Get the OAuth URL to authorize Google Calendar access"),
	)

	s.AddTool(getAuthURLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAuthURL(ctx, request)
	})

	saveAuthCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Save the OAuth authorization code to complete Google Calendar authentication"),
		mcp.WithString("authCode",
			mcp.Required(),
			mcp.Description("The authorization code from Google OAuth"),
		),
	)

	s.AddTool(saveAuthCodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSaveAuthCode(ctx, request, sc)
	})

	return nil
}

func handleGetAuthURL(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := fmt.Sprintf(`To authorize Google Calendar access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account and grant calendar access
3. Copy the authorization code

4. Call the google_save_auth_code tool with the code to complete authentication`, google.GetAuthURL())

	return mcp.NewToolResultText(result), nil
}

func handleSaveAuthCode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	authCode, ok := args["authCode"].(string)
	if !ok || authCode == "" {
		return mcp.NewToolResultError("authCode is required"), nil
	}

	if err := google.SaveToken(ctx, authCode); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save authorization code: %v", err)), nil
	}

	// Wire up the calendar client now that a token exists, so the scheduling
	// tools work without a server restart.
	client, err := calendar.NewClient(sc.Context(), sc.CalendarID())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Token saved, but creating the calendar client failed: %v", err)), nil
	}
	sc.SetCalendarClient(client)

	return mcp.NewToolResultText("Authorization successful. Google Calendar token saved; the scheduling tools are ready to use."), nil
}
