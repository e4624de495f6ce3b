// Package scraper downloads HTML editions of a text and reduces them to
// plain lines of prose.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
)

// DefaultSelector matches paragraph and preformatted blocks in a
// Project Gutenberg HTML edition.
const DefaultSelector = "body p, body pre"

// Fetcher downloads pages, waiting on a shared pacer between requests.
type Fetcher struct {
	Client    *http.Client
	Pacer     *pacer.Pacer
	UserAgent string
}

// Document fetches a URL and parses it as HTML.
func (f *Fetcher) Document(ctx context.Context, url string) (*goquery.Document, error) {
	if f.Pacer != nil {
		if err := f.Pacer.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// FetchText fetches a URL and returns its prose, one block per line.
func (f *Fetcher) FetchText(ctx context.Context, url, selector string) (string, error) {
	doc, err := f.Document(ctx, url)
	if err != nil {
		return "", err
	}
	return ExtractText(doc.Selection, selector), nil
}

// ExtractText pulls plain text from the blocks matching selector. Each
// block's internal line breaks are preserved, so dialogue and speaker
// cues keep their own lines; blank lines are dropped.
func ExtractText(sel *goquery.Selection, selector string) string {
	if selector == "" {
		selector = DefaultSelector
	}
	var lines []string
	sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		lines = appendLines(lines, s.Text())
	})
	return strings.Join(lines, "\n")
}

func appendLines(lines []string, block string) []string {
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
