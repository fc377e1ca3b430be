package logger

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("cycle.alerts.upcoming")
	m.IncrCounter("cycle.alerts.upcoming")
	m.IncrCounter("cycle.alerts.result")

	snap := m.Snapshot()
	counters := snap["counters"].(map[string]int64)
	if counters["cycle.alerts.upcoming"] != 2 {
		t.Errorf("expected counter 2, got %d", counters["cycle.alerts.upcoming"])
	}
	if counters["cycle.alerts.result"] != 1 {
		t.Errorf("expected counter 1, got %d", counters["cycle.alerts.result"])
	}
}

func TestMetricsTimings(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("scrape.fetch", 100*time.Millisecond)
	m.RecordTiming("scrape.fetch", 300*time.Millisecond)

	snap := m.Snapshot()
	timings := snap["timings"].(map[string]map[string]interface{})
	stats, ok := timings["scrape.fetch"]
	if !ok {
		t.Fatal("expected scrape.fetch timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("expected count 2, got %v", stats["count"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("expected average 200ms, got %v", stats["average"])
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")

	snap := m.Snapshot()
	snap["counters"].(map[string]int64)["a"] = 99

	if got := m.Snapshot()["counters"].(map[string]int64)["a"]; got != 1 {
		t.Errorf("snapshot mutation leaked into tracker: %d", got)
	}
}
