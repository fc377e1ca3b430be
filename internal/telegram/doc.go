// Package telegram provides a minimal Telegram Bot API client.
//
// The client sends plain text messages to a fixed chat and rate-limits
// outgoing requests so bursts of alerts stay inside the Bot API limits.
package telegram
