package notifier

import (
	"fmt"
	"strings"
)

// FormatAlert renders an alert as the message text sent to the operator.
func FormatAlert(a Alert) string {
	switch a.Kind {
	case KindUpcoming:
		return formatUpcoming(a)
	case KindResult:
		return formatResult(a)
	}
	return fmt.Sprintf("%s vs %s", orUnknown(a.Candidate.Home), orUnknown(a.Candidate.Away))
}

func formatUpcoming(a Alert) string {
	return fmt.Sprintf("🏐 In %d days: %s vs %s on %s",
		a.DaysUntil,
		orUnknown(a.Candidate.Home),
		orUnknown(a.Candidate.Away),
		orUnknown(a.Candidate.RawDate))
}

func formatResult(a Alert) string {
	scores := make([]string, 0, len(a.Candidate.SetScores))
	for _, s := range a.Candidate.SetScores {
		scores = append(scores, fmt.Sprintf("%d:%d", s.Home, s.Away))
	}
	return fmt.Sprintf("🏐 Result: %s vs %s - winner: %s | sets %d:%d | %s",
		orUnknown(a.Candidate.Home),
		orUnknown(a.Candidate.Away),
		orUnknown(a.Winner),
		a.SetsHome,
		a.SetsAway,
		strings.Join(scores, " "))
}

// orUnknown keeps messages readable when a heuristic field is absent.
func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
