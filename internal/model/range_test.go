package model

import (
	"testing"
	"time"
)

func TestDateRangeContains(t *testing.T) {
	rng, err := ParseDateRange("2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("ParseDateRange() error = %v", err)
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"first day", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"last day late evening", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), true},
		{"day before", time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), false},
		{"day after", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{"other zone keeps its own calendar date", time.Date(2024, 4, 1, 1, 0, 0, 0, time.FixedZone("UTC+4", 4*3600)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rng.Contains(tt.day); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestDateRangeValid(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"2024-03-01", "2024-03-01", true},
		{"2024-03-01", "2024-04-01", true},
		{"2024-03-02", "2024-03-01", false},
	}
	for _, tt := range tests {
		rng, err := ParseDateRange(tt.from, tt.to)
		if err != nil {
			t.Fatalf("ParseDateRange(%s, %s) error = %v", tt.from, tt.to, err)
		}
		if got := rng.Valid(); got != tt.want {
			t.Errorf("%s..%s Valid() = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
	if (DateRange{}).Valid() {
		t.Error("zero range should be invalid")
	}
}

func TestParseDateRangeRejectsGarbage(t *testing.T) {
	if _, err := ParseDateRange("03/01/2024", "2024-03-31"); err == nil {
		t.Error("expected error for non ISO start date")
	}
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 7, 1, 15, 30, 0, 0, time.UTC)
	rng := LastDays(now, 180)
	if got := rng.String(); got != "2024-01-03..2024-07-01" {
		t.Errorf("LastDays() = %s", got)
	}
}

func TestJourneyRecordDate(t *testing.T) {
	start := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)
	created := time.Date(2024, 3, 6, 0, 10, 0, 0, time.UTC)

	withStart := JourneyRecord{CreatedAt: created, IgnitionStartTime: &start}
	if day, ok := withStart.Date(); !ok || day.Day() != 5 {
		t.Errorf("Date() = %v, %v; want March 5", day, ok)
	}

	withoutStart := JourneyRecord{CreatedAt: created}
	if day, ok := withoutStart.Date(); !ok || day.Day() != 6 {
		t.Errorf("Date() = %v, %v; want March 6", day, ok)
	}

	if _, ok := (JourneyRecord{}).Date(); ok {
		t.Error("Date() ok for record without any timestamp")
	}
}
