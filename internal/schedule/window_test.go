package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseClockStrict(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "9:00AM", want: Clock{Hour: 9}},
		{input: "9:00 AM", want: Clock{Hour: 9}}, // whitespace normalized before matching
		{input: "9:00am", want: Clock{Hour: 9}},
		{input: "12:00AM", want: Clock{Hour: 0}},
		{input: "12:30PM", want: Clock{Hour: 12, Minute: 30}},
		{input: "5:45PM", want: Clock{Hour: 17, Minute: 45}},
		{input: "11:59PM", want: Clock{Hour: 23, Minute: 59}},
		{input: "9AM", wantErr: true}, // minutes are mandatory
		{input: "14:30", wantErr: true},
		{input: "13:00PM", wantErr: true},
		{input: "9:60AM", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockStrict(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClockStrict(%q) succeeded, expected error", tt.input)
				}
				var formatErr *TimeFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("expected *TimeFormatError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClockStrict(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClockStrict(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "next friday at 4pm", want: Clock{Hour: 16}},
		{input: "tomorrow at 9 AM", want: Clock{Hour: 9}},
		{input: "monday 2:30pm", want: Clock{Hour: 14, Minute: 30}},
		{input: "12pm sharp", want: Clock{Hour: 12}},
		{input: "12am", want: Clock{Hour: 0}},
		{input: "meet at 14:30", want: Clock{Hour: 14, Minute: 30}},
		{input: "sometime next week", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExtractClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractClock(%q) succeeded, expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractClock(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractClock(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildWindow(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	date := CalendarDate{Year: 2024, Month: time.January, Day: 15}

	window, err := BuildWindow(date, "9:00AM", "11:00AM", ny)
	if err != nil {
		t.Fatalf("BuildWindow returned error: %v", err)
	}

	// 09:00 America/New_York is 14:00 UTC in January (EST, UTC-5)
	wantStart := time.Date(2024, time.January, 15, 14, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.January, 15, 16, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("window start = %v, want %v", window.Start, wantStart)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("window end = %v, want %v", window.End, wantEnd)
	}
}

func TestBuildWindow_RejectsInvertedWindow(t *testing.T) {
	date := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	if _, err := BuildWindow(date, "5:00PM", "9:00AM", time.UTC); err == nil {
		t.Error("expected error for window ending before it starts")
	}
}

func TestBuildWindow_PropagatesTimeFormatError(t *testing.T) {
	date := CalendarDate{Year: 2024, Month: time.January, Day: 15}
	_, err := BuildWindow(date, "9AM", "11:00AM", time.UTC)
	var formatErr *TimeFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *TimeFormatError, got %v", err)
	}
}

func TestFormatInstant(t *testing.T) {
	instant := time.Date(2024, time.June, 28, 18, 0, 0, 0, time.UTC)
	if got := FormatInstant(instant, time.UTC); got != "Friday, June 28 at 06:00 PM UTC" {
		t.Errorf("FormatInstant = %q", got)
	}
}

func TestLoadLocation(t *testing.T) {
	if _, err := LoadLocation("America/New_York"); err != nil {
		t.Errorf("expected America/New_York to load: %v", err)
	}
	if loc, err := LoadLocation(""); err != nil || loc != time.UTC {
		t.Errorf("empty zone should default to UTC, got %v, %v", loc, err)
	}
	_, err := LoadLocation("Mars/Olympus_Mons")
	var tzErr *TimezoneError
	if !errors.As(err, &tzErr) {
		t.Errorf("expected *TimezoneError, got %v", err)
	}
}
