package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/logging"
	"github.com/calsched/calsched/internal/server"
	"github.com/calsched/calsched/internal/tools/google_tools"
	"github.com/calsched/calsched/internal/tools/schedule_tools"
	"github.com/calsched/calsched/internal/tzstore"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode     bool
		transport     string
		httpAddr      string
		calendarID    string
		timezonesPath string
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing the scheduling
tools for AI assistants: current date, home timezone preferences,
availability checks and the meeting lifecycle on Google Calendar.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Google Calendar access uses an OAuth token cached on disk; run
'calsched auth' once to authorize. Tool calls made before authorization
return authorization instructions instead of failing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env file for local development; absence is not an error
			_ = godotenv.Load()

			if calendarID == "" {
				calendarID = os.Getenv("CALSCHED_CALENDAR_ID")
			}
			if calendarID == "" {
				calendarID = "primary"
			}
			if timezonesPath == "" {
				timezonesPath = os.Getenv("CALSCHED_TIMEZONES_PATH")
			}
			if timezonesPath == "" {
				timezonesPath = defaultTimezonesPath()
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			if !cmd.Flags().Changed("metrics-enabled") {
				if os.Getenv("METRICS_ENABLED") == "false" {
					metricsConfig.Enabled = false
				}
			}
			if !cmd.Flags().Changed("metrics-addr") {
				if addr := os.Getenv("METRICS_ADDR"); addr != "" {
					metricsConfig.Addr = addr
				}
			}

			return runServe(transport, debugMode, httpAddr, calendarID, timezonesPath, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().StringVar(&calendarID, "calendar-id", "", "Google Calendar ID to operate on. Can also use CALSCHED_CALENDAR_ID env var. Default: primary")
	cmd.Flags().StringVar(&timezonesPath, "timezones-path", "", "Path of the home timezone store file. Can also use CALSCHED_TIMEZONES_PATH env var. Default: under the user cache directory.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func defaultTimezonesPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "calsched", "timezones.json")
}

func runServe(transport string, debugMode bool, httpAddr, calendarID, timezonesPath string, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logs go to stderr, which keeps stdout clean for the stdio transport
	logging.Setup(debugMode)

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during instrumentation shutdown", logging.Err(err))
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			slog.Info("Metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	timezones := tzstore.New(timezonesPath)

	serverContext, err := server.NewServerContext(shutdownCtx, calendarID, timezones)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("Error during metrics server shutdown", logging.Err(err))
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			slog.Error("Error during server context shutdown", logging.Err(err))
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("calsched", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, httpAddr, metricsConfig)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

// registerAllTools registers all MCP tools with the server
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Google OAuth",
			register: func() error {
				return google_tools.RegisterGoogleTools(mcpSrv, ctx)
			},
		},
		{
			name: "Scheduling",
			register: func() error {
				return schedule_tools.RegisterScheduleTools(mcpSrv, ctx)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", reg.name, err)
		}
	}

	return nil
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, addr string, metricsConfig MetricsConfig) error {
	httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
	)

	slog.Info("Streamable HTTP server starting", "addr", addr, "endpoint", "/mcp")
	if metricsConfig.Enabled {
		slog.Info("Metrics endpoint available", "addr", metricsConfig.Addr, "path", "/metrics")
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
	}

	slog.Info("HTTP server gracefully stopped")
	return nil
}
