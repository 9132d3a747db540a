package datemath_test

import (
	"strings"
	"testing"
	"time"

	"cognito-assistant/pkg/datemath"
)

// baseTime is Wednesday 2026-01-14 10:00 Melbourne time.
var baseTime = time.Date(2026, 1, 14, 10, 0, 0, 0, mel())

func mel() *time.Location {
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		panic(err)
	}
	return loc
}

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Australia/Melbourne"); err != nil {
		t.Fatalf("valid timezone rejected: %v", err)
	}
	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestParseDeadline(t *testing.T) {
	p, err := datemath.NewParser("Australia/Melbourne")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with zone",
			input: "2026-01-15T17:00:00Z",
			want:  time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare datetime in parser zone",
			input: "2026-01-15T17:00:00",
			want:  time.Date(2026, 1, 15, 17, 0, 0, 0, mel()),
		},
		{
			name:  "date only means end of day",
			input: "2026-01-15",
			want:  time.Date(2026, 1, 15, 23, 59, 59, 0, mel()),
		},
		{
			name:  "tomorrow",
			input: "tomorrow",
			want:  time.Date(2026, 1, 15, 0, 0, 0, 0, mel()),
		},
		{
			name:  "in 3 days",
			input: "in 3 days",
			want:  time.Date(2026, 1, 17, 0, 0, 0, 0, mel()),
		},
		{
			name:  "in 2 weeks",
			input: "in 2 weeks",
			want:  time.Date(2026, 1, 28, 0, 0, 0, 0, mel()),
		},
		{
			name:  "next friday",
			input: "next friday",
			want:  time.Date(2026, 1, 16, 0, 0, 0, 0, mel()),
		},
		{
			name:  "next wednesday skips today",
			input: "next wednesday",
			want:  time.Date(2026, 1, 21, 0, 0, 0, 0, mel()),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "gibberish",
			input:   "whenever works",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseDeadline(tt.input, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRelative_UnknownWeekday(t *testing.T) {
	p, _ := datemath.NewParser("UTC")
	_, err := p.ParseRelative("next smonday", baseTime)
	if err == nil || !strings.Contains(err.Error(), "unknown weekday") {
		t.Fatalf("expected unknown weekday error, got %v", err)
	}
}

func TestEndOfDay(t *testing.T) {
	p, _ := datemath.NewParser("Australia/Melbourne")
	got := p.EndOfDay(time.Date(2026, 1, 14, 3, 15, 0, 0, time.UTC))
	// 03:15 UTC is mid-afternoon in Melbourne (UTC+11 in January).
	want := time.Date(2026, 1, 14, 23, 59, 59, 0, mel())
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
