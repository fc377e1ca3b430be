package match

import (
	"strings"
	"time"
)

// WinnerTie is the winner value reported when both sides took the same
// number of sets.
const WinnerTie = "tie"

// keySeparator joins the identity fields of a candidate. It must never
// change: persisted stores are keyed by the joined string.
const keySeparator = "|"

// SetScore holds the final points of one set, home side first.
type SetScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Candidate is one heuristically extracted observation of a match. All
// fields except ContextLine and ScrapedAt are optional: a keyword hit with
// no recognizable date, pairing, or scores still yields a Candidate.
type Candidate struct {
	ContextLine string     `json:"context_line"`
	RawDate     string     `json:"raw_date,omitempty"`
	Home        string     `json:"home,omitempty"`
	Away        string     `json:"away,omitempty"`
	SetScores   []SetScore `json:"set_scores,omitempty"`
	ScrapedAt   time.Time  `json:"scraped_at"`
}

// Key returns the stable identity of the observed match. It depends only on
// the (home, away, raw date) triple, with absent fields as empty strings, so
// a record first seen without scores and later seen with a final score maps
// to the same key.
func (c Candidate) Key() string {
	return strings.Join([]string{c.Home, c.Away, c.RawDate}, keySeparator)
}

// SetsWon counts the sets taken by each side. Sets with equal points count
// for neither.
func (c Candidate) SetsWon() (home, away int) {
	for _, s := range c.SetScores {
		switch {
		case s.Home > s.Away:
			home++
		case s.Away > s.Home:
			away++
		}
	}
	return home, away
}

// Winner names the side that took more sets, or WinnerTie when even.
func (c Candidate) Winner() string {
	home, away := c.SetsWon()
	switch {
	case home > away:
		return c.Home
	case away > home:
		return c.Away
	default:
		return WinnerTie
	}
}
