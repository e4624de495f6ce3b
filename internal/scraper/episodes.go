package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// DefaultHeading matches the chapter headings of a Gutenberg edition.
const DefaultHeading = "h2"

// SplitEpisodes cuts a book into one text per heading. Blocks before the
// first heading (front matter) are dropped. Headings with no prose are
// skipped.
func SplitEpisodes(doc *goquery.Document, heading, selector string) ([]model.Text, error) {
	if heading == "" {
		heading = DefaultHeading
	}
	if selector == "" {
		selector = DefaultSelector
	}

	var episodes []model.Text
	var current *model.Text
	var lines []string
	flush := func() {
		if current != nil && len(lines) > 0 {
			current.Body = strings.Join(lines, "\n")
			episodes = append(episodes, *current)
		}
		lines = nil
	}

	// A selector group is matched in document order.
	doc.Find(heading + ", " + selector).Each(func(_ int, s *goquery.Selection) {
		if s.Is(heading) {
			flush()
			current = &model.Text{Title: strings.Join(strings.Fields(s.Text()), " ")}
			return
		}
		if current != nil {
			lines = appendLines(lines, s.Text())
		}
	})
	flush()

	if len(episodes) == 0 {
		return nil, fmt.Errorf("no episodes found under %q headings", heading)
	}
	return episodes, nil
}
