package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmorosoli/volleywatch/internal/match"
)

// contextRadius is how many lines before and after a keyword hit are joined
// into the context window.
const contextRadius = 5

var (
	// datePattern captures the raw date vocabulary verbatim: dotted or
	// slashed day/month/year, ISO dates, and "12 October 2025" style.
	// Normalization is deferred to match.ParseDate.
	datePattern = regexp.MustCompile(`(\d{1,2}[./]\d{1,2}[./]\d{2,4})|(\d{4}-\d{2}-\d{2})|(\d{1,2}\s+\p{L}+\s+\d{4})`)

	// pairingPattern matches two name-like spans separated by a dash
	// variant or a "vs"/"v" marker. Spans admit accented letters, digits,
	// spaces, apostrophes, hyphens, and periods. The word markers carry a
	// boundary so a lone "v" never matches inside a team name.
	pairingPattern = regexp.MustCompile(`(?i)([\p{L}0-9 '\-.]+)\s*(?:-|–|—|vs\b\.?|v\b\.?)\s*([\p{L}0-9 '\-.]+)`)

	// scorePattern matches one set score, e.g. "25-20" or "25 : 20".
	scorePattern = regexp.MustCompile(`(\d{1,2})\s*[-:]\s*(\d{1,2})`)
)

// Extract scans page text for whole-word, case-insensitive mentions of the
// tracked keyword and derives one candidate per matching line. Overlapping
// context windows are not merged; near-duplicate candidates for the same
// real match collapse downstream under the same key.
func Extract(pageText, keyword string, now time.Time) []match.Candidate {
	kw := keywordPattern(keyword)
	lines := splitLines(pageText)

	candidates := make([]match.Candidate, 0)
	for i, line := range lines {
		if !kw.MatchString(line) {
			continue
		}

		window := contextWindow(lines, i)

		c := match.Candidate{
			ContextLine: line,
			RawDate:     datePattern.FindString(window),
			SetScores:   extractScores(window),
			ScrapedAt:   now,
		}
		c.Home, c.Away = extractPairing(window, kw)

		candidates = append(candidates, c)
	}
	return candidates
}

// keywordPattern compiles a whole-word, case-insensitive matcher for the
// tracked keyword.
func keywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// splitLines normalizes page text into trimmed non-empty lines in order.
func splitLines(pageText string) []string {
	raw := strings.Split(pageText, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// contextWindow joins the hit line with up to contextRadius lines on each
// side, fewer at document boundaries.
func contextWindow(lines []string, i int) string {
	lo := i - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := i + contextRadius + 1
	if hi > len(lines) {
		hi = len(lines)
	}
	return strings.Join(lines[lo:hi], " ")
}

// extractPairing locates the first opponent pairing in the window and
// orients it so the tracked team is home when it can be placed. When the
// keyword appears in neither span the pairing is kept in order of
// appearance; that default is a heuristic, not an inference.
func extractPairing(window string, kw *regexp.Regexp) (home, away string) {
	m := pairingPattern.FindStringSubmatch(window)
	if m == nil {
		return "", ""
	}

	first, second := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if kw.MatchString(second) && !kw.MatchString(first) {
		return second, first
	}
	return first, second
}

// extractScores collects every set-score shaped pair in the window in order
// of appearance.
func extractScores(window string) []match.SetScore {
	var scores []match.SetScore
	for _, m := range scorePattern.FindAllStringSubmatch(window, -1) {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		scores = append(scores, match.SetScore{Home: a, Away: b})
	}
	return scores
}
