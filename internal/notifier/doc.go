// Package notifier provides notification interfaces and implementations for
// match alerts.
//
// The notifier package delivers upcoming-match and result alerts to an
// operator. Telegram is the primary channel; a Twitter mirror and a dry-run
// printer are also available. Delivery is per alert and its outcome is
// reported to the caller, which decides whether the alert counts as sent.
package notifier
