// Package state provides JSON-based persistence for per-match notification
// state.
//
// A Store maps match keys to their notification state and is the unit of
// load and save: the whole store is read at the start of a scrape cycle,
// mutated in memory, and written back once the cycle completes. Saves go
// through a temporary file and an atomic rename so a failed write never
// corrupts the previous store. Callers must not run concurrent cycles
// against the same store file.
package state
