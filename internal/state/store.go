package state

import (
	"time"

	"github.com/dmorosoli/volleywatch/internal/match"
)

// MatchState is the persisted record for one tracked match key.
type MatchState struct {
	// SeenAt is the first-observation time; set once, never updated.
	SeenAt time.Time `json:"seen_at"`
	// NotifiedUpcoming and NotifiedResult are monotonic: once true they
	// stay true for the life of the key.
	NotifiedUpcoming bool `json:"notified_upcoming"`
	NotifiedResult   bool `json:"notified_result"`
	// Last is the most recent observation, overwritten every run
	// regardless of alert status.
	Last match.Candidate `json:"last"`
}

// Phase returns the notification lifecycle phase encoded by the flags.
func (s *MatchState) Phase() match.Phase {
	return match.PhaseOf(s.NotifiedUpcoming, s.NotifiedResult)
}

// SetPhase writes a phase back onto the persisted flags. Phases only move
// forward, so flags never transition from true to false.
func (s *MatchState) SetPhase(p match.Phase) {
	s.NotifiedUpcoming, s.NotifiedResult = p.Flags()
}

// Store maps match keys to their notification state.
type Store struct {
	Matches   map[string]*MatchState `json:"matches"`
	UpdatedAt string                 `json:"updated_at,omitempty"`
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Matches: make(map[string]*MatchState)}
}

// Ensure returns the state for key, inserting a fresh record with SeenAt=now
// when the key has not been observed before.
func (s *Store) Ensure(key string, now time.Time) *MatchState {
	if st, ok := s.Matches[key]; ok {
		return st
	}
	st := &MatchState{SeenAt: now}
	s.Matches[key] = st
	return st
}
