package cycle

import (
	"fmt"
	"time"

	"github.com/dmorosoli/volleywatch/internal/logger"
	"github.com/dmorosoli/volleywatch/internal/match"
	"github.com/dmorosoli/volleywatch/internal/notifier"
	"github.com/dmorosoli/volleywatch/internal/scraper"
	"github.com/dmorosoli/volleywatch/internal/state"
)

// DefaultLookaheadDays is the upcoming-alert window: a match fires when its
// normalized date is between today and this many days ahead.
const DefaultLookaheadDays = 2

// Fetcher obtains the schedule page's visible text.
type Fetcher interface {
	FetchText() (string, error)
}

// Storage loads and saves the whole notification store.
type Storage interface {
	Load() (*state.Store, error)
	Save(*state.Store) error
}

// Runner executes scrape cycles against a single store. The caller must not
// run concurrent cycles against the same storage.
type Runner struct {
	Fetcher       Fetcher
	Storage       Storage
	Notifier      notifier.Notifier
	Keyword       string
	LookaheadDays int

	// Now is the clock; tests override it. Nil means time.Now in UTC.
	Now func() time.Time
}

// Report summarizes one completed cycle.
type Report struct {
	CheckedAt  time.Time        `json:"checked_at"`
	Keyword    string           `json:"keyword"`
	Candidates int              `json:"candidates"`
	NewMatches int              `json:"new_matches"`
	Tracked    int              `json:"tracked"`
	Alerts     []notifier.Alert `json:"alerts"`
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}

func (r *Runner) lookahead() int {
	if r.LookaheadDays > 0 {
		return r.LookaheadDays
	}
	return DefaultLookaheadDays
}

// Run performs one cycle. A fetch error aborts the run with no state
// mutation; a save error is returned after alerts have been delivered.
func (r *Runner) Run() (*Report, error) {
	now := r.now()

	fetchStart := time.Now()
	pageText, err := r.Fetcher.FetchText()
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	logger.RecordTiming("scrape.fetch", time.Since(fetchStart))

	candidates := scraper.Extract(pageText, r.Keyword, now)
	logger.Debug("extracted candidates", logger.Fields{
		"keyword": r.Keyword,
		"count":   len(candidates),
	})

	store, err := r.Storage.Load()
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}

	report := &Report{
		CheckedAt:  now,
		Keyword:    r.Keyword,
		Candidates: len(candidates),
		Alerts:     make([]notifier.Alert, 0),
	}

	for _, c := range candidates {
		r.reconcile(store, c, now, report)
	}
	report.Tracked = len(store.Matches)

	if err := r.Storage.Save(store); err != nil {
		return report, fmt.Errorf("saving store: %w", err)
	}
	return report, nil
}

// reconcile merges one candidate into the store, firing due alerts. Each
// alert kind is a one-shot monotonic transition per key; the transition is
// applied only when delivery succeeds.
func (r *Runner) reconcile(store *state.Store, c match.Candidate, now time.Time, report *Report) {
	key := c.Key()

	st, existed := store.Matches[key]
	if !existed {
		st = store.Ensure(key, now)
		report.NewMatches++
	}
	phase := st.Phase()

	if phase.CanNotifyUpcoming() {
		if dt, ok := match.ParseDate(c.RawDate); ok {
			if days := match.DaysUntil(dt, now); days >= 0 && days <= r.lookahead() {
				alert := notifier.Alert{
					Kind:      notifier.KindUpcoming,
					Key:       key,
					Candidate: c,
					DaysUntil: days,
				}
				if r.deliver(alert, report) {
					phase = phase.WithUpcoming()
					logger.IncrCounter("cycle.alerts.upcoming")
				}
			}
		}
	}

	if phase.CanNotifyResult() && len(c.SetScores) > 0 {
		setsHome, setsAway := c.SetsWon()
		alert := notifier.Alert{
			Kind:      notifier.KindResult,
			Key:       key,
			Candidate: c,
			Winner:    c.Winner(),
			SetsHome:  setsHome,
			SetsAway:  setsAway,
		}
		if r.deliver(alert, report) {
			phase = phase.WithResult()
			logger.IncrCounter("cycle.alerts.result")
		}
	}

	st.SetPhase(phase)
	// Last always reflects the most recent observation, even when no alert
	// fired.
	st.Last = c
}

// deliver sends one alert and reports whether it counts as sent. A failed
// delivery leaves the flag untouched so the alert retries next cycle.
func (r *Runner) deliver(alert notifier.Alert, report *Report) bool {
	if err := r.Notifier.Notify(alert); err != nil {
		logger.Warn("alert delivery failed, will retry next cycle", logger.Fields{
			"kind":  string(alert.Kind),
			"key":   alert.Key,
			"error": err.Error(),
		})
		return false
	}
	report.Alerts = append(report.Alerts, alert)
	return true
}
