// Package scraper provides HTTP fetching and heuristic text extraction for
// the tracked team's schedule page.
//
// The scraper fetches the public game-center page, reduces it to visible
// text lines, and scans for lines mentioning the tracked keyword. Around
// each hit it derives a candidate match from a small context window using
// independent sub-extractors for the date, the opponent pairing, and the
// set scores. Each sub-extractor is optional: noisy or partial text yields
// partial candidates, never errors.
package scraper
