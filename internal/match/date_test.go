package match

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
		ok       bool
	}{
		{"12.10.2025", time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), true},
		{"3.4.2025", time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), true},
		{"12.10.25", time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), true},
		{"2025-10-12", time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), true},
		{"12 October 2025", time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), true},
		{"12 Oct 2025", time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"Samstag", time.Time{}, false},
		{"12/10/2025", time.Time{}, false},
		{"12.10.2025 extra", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, expected %v", tt.raw, ok, tt.ok)
			}
			if ok && !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestDaysUntilFloors(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dt       time.Time
		expected int
	}{
		{"two full days ahead", now.AddDate(0, 0, 2), 2},
		{"a day and a half ahead", now.Add(36 * time.Hour), 1},
		{"same instant", now, 0},
		{"half a day ago", now.Add(-12 * time.Hour), -1},
		{"three days ahead", now.AddDate(0, 0, 3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.dt, now); got != tt.expected {
				t.Errorf("DaysUntil = %d, expected %d", got, tt.expected)
			}
		})
	}
}
