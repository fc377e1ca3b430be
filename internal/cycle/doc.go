// Package cycle orchestrates one scrape run.
//
// A run is a single sequential pass: fetch the page text, extract candidate
// matches, reconcile them against the persisted store, deliver any due
// alerts, and persist the updated store. A fetch failure aborts the run
// before any state is touched, and the store is only written after every
// candidate has been reconciled. Alert flags are set only after the notifier
// reports successful delivery, so a failed send is retried on a later run.
// Replaying a run against an up-to-date store emits no alerts.
package cycle
