// Package match provides types and functions for tracking volleyball matches.
//
// The match package handles candidate representation, stable identity, date
// normalization, and the per-match notification lifecycle. Each candidate is
// keyed by its (home, away, raw date) triple, enabling reliable deduplication
// of repeated observations of the same match across scrape runs.
package match
