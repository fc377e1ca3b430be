package notifier

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dmorosoli/volleywatch/internal/match"
)

func upcomingAlert() Alert {
	return Alert{
		Kind: KindUpcoming,
		Key:  "Caslano|Lugano|12.10.2025",
		Candidate: match.Candidate{
			Home:    "Caslano",
			Away:    "Lugano",
			RawDate: "12.10.2025",
		},
		DaysUntil: 2,
	}
}

func resultAlert() Alert {
	return Alert{
		Kind: KindResult,
		Key:  "Caslano|Lugano|12.10.2025",
		Candidate: match.Candidate{
			Home:      "Caslano",
			Away:      "Lugano",
			RawDate:   "12.10.2025",
			SetScores: []match.SetScore{{Home: 25, Away: 20}, {Home: 18, Away: 25}, {Home: 25, Away: 23}},
		},
		Winner:   "Caslano",
		SetsHome: 2,
		SetsAway: 1,
	}
}

func TestFormatUpcomingAlert(t *testing.T) {
	msg := FormatAlert(upcomingAlert())
	for _, want := range []string{"In 2 days", "Caslano vs Lugano", "12.10.2025"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestFormatResultAlert(t *testing.T) {
	msg := FormatAlert(resultAlert())
	for _, want := range []string{"Caslano vs Lugano", "winner: Caslano", "sets 2:1", "25:20 18:25 25:23"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestFormatAlertWithAbsentFields(t *testing.T) {
	msg := FormatAlert(Alert{Kind: KindUpcoming, Candidate: match.Candidate{}})
	if !strings.Contains(msg, "? vs ?") {
		t.Errorf("expected placeholders for absent opponents, got %q", msg)
	}
}

func TestDryRunNotifierPrints(t *testing.T) {
	var buf bytes.Buffer
	n := NewDryRunNotifier(&buf)

	if err := n.Notify(upcomingAlert()); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "upcoming alert") || !strings.Contains(out, "Caslano vs Lugano") {
		t.Errorf("unexpected dry-run output: %q", out)
	}
}

type stubNotifier struct {
	calls int
	err   error
}

func (s *stubNotifier) Notify(Alert) error {
	s.calls++
	return s.err
}

func TestMultiAttemptsAllChannels(t *testing.T) {
	failing := &stubNotifier{err: errors.New("boom")}
	working := &stubNotifier{}

	err := Multi{failing, working}.Notify(upcomingAlert())
	if err == nil {
		t.Fatal("expected the mirror failure to surface")
	}
	if failing.calls != 1 || working.calls != 1 {
		t.Errorf("expected both channels attempted, got %d and %d", failing.calls, working.calls)
	}
}
