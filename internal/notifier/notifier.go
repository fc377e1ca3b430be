package notifier

import (
	"github.com/dmorosoli/volleywatch/internal/match"
)

// Kind distinguishes the two one-shot alert types per match.
type Kind string

const (
	// KindUpcoming announces a match inside the lookahead window.
	KindUpcoming Kind = "upcoming"
	// KindResult reports a final score once set scores appear.
	KindResult Kind = "result"
)

// Alert is one outbound notification for a tracked match.
type Alert struct {
	Kind      Kind            `json:"kind"`
	Key       string          `json:"key"`
	Candidate match.Candidate `json:"candidate"`

	// DaysUntil is set for upcoming alerts.
	DaysUntil int `json:"days_until,omitempty"`

	// Winner, SetsHome, and SetsAway are set for result alerts.
	Winner   string `json:"winner,omitempty"`
	SetsHome int    `json:"sets_home,omitempty"`
	SetsAway int    `json:"sets_away,omitempty"`
}

// Notifier delivers a single alert. A non-nil error means the alert was not
// delivered and may be retried on a later cycle.
type Notifier interface {
	Notify(alert Alert) error
}
