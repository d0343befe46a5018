package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/calsched/calsched/internal/calendar"
	"github.com/calsched/calsched/internal/instrumentation"
	"github.com/calsched/calsched/internal/tzstore"
)

// ServerContext holds the shared state for the MCP server: the calendar
// client, the timezone store, and the instrumentation hooks tools use.
type ServerContext struct {
	ctx        context.Context
	cancel     context.CancelFunc
	calendarID string

	calendarClient *calendar.Client
	timezones      *tzstore.Store

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context. The calendar client is
// created eagerly when a token is already available, and lazily on first
// use otherwise.
func NewServerContext(ctx context.Context, calendarID string, timezones *tzstore.Store) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:        shutdownCtx,
		cancel:     cancel,
		calendarID: calendarID,
		timezones:  timezones,
	}

	if calendar.HasToken() {
		client, err := calendar.NewClient(shutdownCtx, calendarID)
		if err != nil {
			// Will be re-attempted on first use
			slog.Warn("failed to create calendar client", "error", err)
		} else {
			sc.calendarClient = client
		}
	}

	return sc, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// CalendarClient returns the calendar client, creating and caching it on
// first use. Returns nil if no OAuth token is available yet.
func (sc *ServerContext) CalendarClient() *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.calendarClient != nil {
		return sc.calendarClient
	}

	if !calendar.HasToken() {
		return nil
	}

	client, err := calendar.NewClient(sc.ctx, sc.calendarID)
	if err != nil {
		slog.Warn("failed to create calendar client", "error", err)
		return nil
	}

	sc.calendarClient = client
	return client
}

// SetCalendarClient sets the calendar client. Used after completing the
// OAuth flow, and by tests to inject fakes.
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClient = client
}

// CalendarID returns the calendar the server operates on.
func (sc *ServerContext) CalendarID() string {
	return sc.calendarID
}

// Timezones returns the home timezone store.
func (sc *ServerContext) Timezones() *tzstore.Store {
	return sc.timezones
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder for tool instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil if audit logging is not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger for tool instrumentation.
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// IsShutdown returns whether the server has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
