package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
)

const sampleBookHTML = `<html><body>
<h1>Ulysses</h1>
<p>Produced by volunteers.</p>
<h2>— I —</h2>
<p>Stately, plump Buck Mulligan came from the stairhead.</p>
<p>
—Introibo ad altare Dei.
</p>
<p></p>
<h2>[ 2 ]</h2>
<p>—You, Cochrane, what city sent for him?</p>
<pre>Stephen: Tarentum, sir.</pre>
<h2>Empty</h2>
</body></html>`

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	return doc
}

func TestExtractText(t *testing.T) {
	text := ExtractText(parse(t, sampleBookHTML).Selection, "")

	lines := strings.Split(text, "\n")
	want := []string{
		"Produced by volunteers.",
		"Stately, plump Buck Mulligan came from the stairhead.",
		"—Introibo ad altare Dei.",
		"—You, Cochrane, what city sent for him?",
		"Stephen: Tarentum, sir.",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExtractText_Empty(t *testing.T) {
	if text := ExtractText(parse(t, "<html><body></body></html>").Selection, ""); text != "" {
		t.Errorf("expected empty string, got %q", text)
	}
}

func TestSplitEpisodes(t *testing.T) {
	eps, err := SplitEpisodes(parse(t, sampleBookHTML), "", "")
	if err != nil {
		t.Fatalf("SplitEpisodes: %v", err)
	}
	if len(eps) != 2 {
		t.Fatalf("expected 2 episodes, got %d: %+v", len(eps), eps)
	}
	if eps[0].Title != "— I —" {
		t.Errorf("unexpected title %q", eps[0].Title)
	}
	if strings.Contains(eps[0].Body, "volunteers") {
		t.Error("front matter should be dropped")
	}
	if !strings.HasSuffix(eps[1].Body, "Stephen: Tarentum, sir.") {
		t.Errorf("unexpected body %q", eps[1].Body)
	}
}

func TestSplitEpisodes_NoHeadings(t *testing.T) {
	if _, err := SplitEpisodes(parse(t, "<html><body><p>text</p></body></html>"), "", ""); err == nil {
		t.Error("expected an error without headings")
	}
}

func TestFetchText(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(sampleBookHTML))
	}))
	defer srv.Close()

	clock := pacer.NewFakeClock(time.Now())
	f := &Fetcher{Client: srv.Client(), Pacer: pacer.New(time.Second, clock), UserAgent: "test-agent"}
	text, err := f.FetchText(context.Background(), srv.URL, "h2 + p")
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if !strings.HasPrefix(text, "Stately, plump") {
		t.Errorf("unexpected text %q", text)
	}
	if ua != "test-agent" {
		t.Errorf("expected user agent, got %q", ua)
	}
	if len(clock.Sleeps()) != 1 {
		t.Errorf("expected one pacing wait, got %v", clock.Sleeps())
	}
}

func TestFetchText_Status(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	if _, err := f.FetchText(context.Background(), srv.URL, ""); err == nil {
		t.Error("expected an error for a 404")
	}
}
