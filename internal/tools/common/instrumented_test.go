package common

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tzstore"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	store := tzstore.New(filepath.Join(t.TempDir(), "timezones.json"))
	sc, err := server.NewServerContext(context.Background(), "primary", store)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestInstrumentedToolHandler_Success(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandler_Error(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	expectedErr := errors.New("test error")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, expectedErr
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	_, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestInstrumentedToolHandler_ErrorResult(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	// An error result is not a Go error
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("error message"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("expected result, got nil")
	}
	if !result.IsError {
		t.Error("expected result.IsError to be true")
	}
}

func TestInstrumentedToolHandlerWithOperation_WithMetrics(t *testing.T) {
	ctx := context.Background()
	sc := newTestServerContext(t)

	// noop meter exercises the recording path without exporting anything
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	sc.SetMetrics(metrics)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		time.Sleep(1 * time.Millisecond)
		return mcp.NewToolResultText("success"), nil
	}

	wrapped := InstrumentedToolHandlerWithOperation("create_meeting", instrumentation.OperationCreate, sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestGetUserFromArgs(t *testing.T) {
	if got := GetUserFromArgs(map[string]interface{}{"user_id": "alice"}); got != "alice" {
		t.Errorf("GetUserFromArgs = %q, want alice", got)
	}
	if got := GetUserFromArgs(map[string]interface{}{}); got != "" {
		t.Errorf("GetUserFromArgs = %q, want empty", got)
	}
	if got := GetUserFromArgs(map[string]interface{}{"user_id": 42}); got != "" {
		t.Errorf("GetUserFromArgs = %q, want empty for non-string", got)
	}
}

func TestGetStringArg(t *testing.T) {
	args := map[string]interface{}{"timezone": "Asia/Tokyo", "empty": ""}
	if got := GetStringArg(args, "timezone", "UTC"); got != "Asia/Tokyo" {
		t.Errorf("GetStringArg = %q, want Asia/Tokyo", got)
	}
	if got := GetStringArg(args, "empty", "UTC"); got != "UTC" {
		t.Errorf("GetStringArg = %q, want fallback for empty value", got)
	}
	if got := GetStringArg(args, "missing", "UTC"); got != "UTC" {
		t.Errorf("GetStringArg = %q, want fallback for missing key", got)
	}
}
