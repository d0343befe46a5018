package instrumentation

import (
	"context"
	"errors"
	"testing"
)

func TestStartToolSpan(t *testing.T) {
	ctx, span := StartToolSpan(context.Background(), "check_availability")
	if span == nil {
		t.Fatal("expected span to be non-nil")
	}
	defer span.End()

	if ctx == nil {
		t.Fatal("expected context to be non-nil")
	}
}

func TestStartCalendarSpan(t *testing.T) {
	_, span := StartCalendarSpan(context.Background(), OperationList)
	if span == nil {
		t.Fatal("expected span to be non-nil")
	}
	span.End()
}

func TestSetSpanError(t *testing.T) {
	_, span := StartSpan(context.Background(), "test-span")
	defer span.End()

	// Should not panic with nil or real errors
	SetSpanError(span, nil)
	SetSpanError(span, errors.New("boom"))
	SetSpanSuccess(span)
}

func TestGetTraceID_NoSpan(t *testing.T) {
	if id := GetTraceID(context.Background()); id != "" {
		t.Errorf("GetTraceID = %q, want empty for context without span", id)
	}
	if id := GetSpanID(context.Background()); id != "" {
		t.Errorf("GetSpanID = %q, want empty for context without span", id)
	}
}
