package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html"
)

const (
	// UserAgent identifies the scraper to the schedule site.
	UserAgent = "volleywatch/1.0 (github.com/dmorosoli/volleywatch)"
	// Timeout bounds a single fetch attempt.
	Timeout = 30 * time.Second

	maxRetries      = 3
	initialInterval = 2 * time.Second
)

// Scraper fetches the schedule page and reduces it to visible text.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given page URL.
func New(url string) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: Timeout},
		url:    url,
	}
}

// URL returns the page URL this scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchText fetches the page and returns its visible text content, one text
// node per line. Transient network and server errors are retried with
// exponential backoff; a final failure propagates to the caller and aborts
// the cycle before any state is touched.
func (s *Scraper) FetchText() (string, error) {
	var text string

	op := func() error {
		req, err := http.NewRequest(http.MethodGet, s.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		text, err = visibleText(resp.Body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	if err := backoff.Retry(op, backoff.WithMaxRetries(bo, maxRetries)); err != nil {
		return "", err
	}
	return text, nil
}

// visibleText parses HTML and joins the text nodes with newlines, skipping
// script, style, and noscript content.
func visibleText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteByte('\n')
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return b.String(), nil
}
