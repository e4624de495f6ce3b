package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTextRoundTrip(t *testing.T) {
	s := testStore(t)

	text := &model.Text{Title: "Telemachus", Source: "test", Body: "Stately, plump Buck Mulligan"}
	if err := s.WriteText(text); err != nil {
		t.Fatalf("writing text: %v", err)
	}
	if text.ID == "" || text.CreatedAt == "" {
		t.Fatalf("expected id and timestamp to be assigned, got %+v", text)
	}

	byID, err := s.ReadText(text.ID)
	if err != nil {
		t.Fatalf("reading by id: %v", err)
	}
	if byID.Body != text.Body {
		t.Errorf("body mismatch: got %q", byID.Body)
	}

	byTitle, err := s.ReadText("Telemachus")
	if err != nil {
		t.Fatalf("reading by title: %v", err)
	}
	if byTitle.ID != text.ID {
		t.Errorf("expected id %s, got %s", text.ID, byTitle.ID)
	}

	if _, err := s.ReadText("Penelope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	list, err := s.ListTexts()
	if err != nil {
		t.Fatalf("listing texts: %v", err)
	}
	if len(list) != 1 || list[0].Body != "" {
		t.Errorf("expected one text without body, got %+v", list)
	}
}

func TestSegmentsRoundTripKeepsOrder(t *testing.T) {
	s := testStore(t)

	m := model.NewSegmentMap()
	m.Append("Stephen", model.Passage{Line: 1, Text: "I am here."})
	m.Append(model.UnattributedDialogue, model.Passage{Line: 2, Text: "Hello."})
	m.Append("Stephen", model.Passage{Line: 3, Text: "He walked away."})
	m.Append(model.Narrator, model.Passage{Line: 4, Text: "Silence."})

	if err := s.WriteSegments("t1", m); err != nil {
		t.Fatalf("writing segments: %v", err)
	}
	got, err := s.ReadSegments("t1")
	if err != nil {
		t.Fatalf("reading segments: %v", err)
	}

	want := []model.SpeakerName{"Stephen", model.UnattributedDialogue, model.Narrator}
	if !reflect.DeepEqual(got.Speakers(), want) {
		t.Errorf("speaker order: got %v, want %v", got.Speakers(), want)
	}
	if !reflect.DeepEqual(got.Passages("Stephen"), m.Passages("Stephen")) {
		t.Errorf("passages: got %+v", got.Passages("Stephen"))
	}

	// Rewriting replaces rather than appends.
	if err := s.WriteSegments("t1", m); err != nil {
		t.Fatalf("rewriting segments: %v", err)
	}
	again, _ := s.ReadSegments("t1")
	if again.PassageCount() != 4 {
		t.Errorf("expected 4 passages after rewrite, got %d", again.PassageCount())
	}

	empty, err := s.ReadSegments("missing")
	if err != nil || empty.Len() != 0 {
		t.Errorf("expected empty map, got %v, %v", empty.Len(), err)
	}
}

func TestSentimentRoundTrip(t *testing.T) {
	s := testStore(t)

	rec := model.SentimentRecord{
		{Speaker: "Molly", Scores: model.SentimentScores{Positive: 0.6, Neutral: 0.4, Compound: 0.9}},
		{Speaker: model.Narrator, Scores: model.SentimentScores{Negative: 0.2, Neutral: 0.8, Compound: -0.3}},
	}
	if err := s.WriteSentiment("t1", rec); err != nil {
		t.Fatalf("writing sentiment: %v", err)
	}
	got, err := s.ReadSentiment("t1")
	if err != nil {
		t.Fatalf("reading sentiment: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("got %+v, want %+v", got, rec)
	}
	if s.ScoredCount() != 1 {
		t.Errorf("expected 1 scored text, got %d", s.ScoredCount())
	}
}

func TestExtractionRoundTrip(t *testing.T) {
	s := testStore(t)

	text := &model.Text{Title: "Lestrygonians", Source: "test", Body: "..."}
	if err := s.WriteText(text); err != nil {
		t.Fatalf("writing text: %v", err)
	}

	ext := &model.TextExtraction{
		TextID:      text.ID,
		Backend:     "ner",
		ExtractedAt: "2025-01-01T00:00:00Z",
		Locations: []model.ExtractedLocation{
			{Name: "Davy Byrne's", Type: model.LocationFacility, ContextQuotes: []string{"He entered Davy Byrne's."}},
			{Name: "Grafton Street", Type: model.LocationFacility},
		},
	}
	if err := s.WriteExtraction(ext); err != nil {
		t.Fatalf("writing extraction: %v", err)
	}
	if !s.ExtractionExists(text.ID) {
		t.Error("expected extraction to exist")
	}
	if s.ExtractionExists("other") {
		t.Error("expected no extraction for unknown text")
	}

	got, err := s.ReadExtraction(text.ID)
	if err != nil {
		t.Fatalf("reading extraction: %v", err)
	}
	if got.TextTitle != "Lestrygonians" {
		t.Errorf("expected title, got %q", got.TextTitle)
	}
	if len(got.Locations) != 2 || got.Locations[0].Name != "Davy Byrne's" {
		t.Fatalf("unexpected locations %+v", got.Locations)
	}
	if len(got.Locations[0].ContextQuotes) != 1 {
		t.Errorf("expected quotes preserved, got %+v", got.Locations[0])
	}

	all, err := s.ReadAllExtractions()
	if err != nil || len(all) != 1 {
		t.Errorf("expected one extraction, got %d, %v", len(all), err)
	}

	if _, err := s.ReadExtraction("other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAggregatedRoundTrip(t *testing.T) {
	s := testStore(t)

	locs := []model.AggregatedLocation{
		{ID: "howth", Name: "Howth", Type: model.LocationPlace, FirstTextID: "t1", MentionCount: 3, TextIDs: []string{"t1", "t2"}},
		{ID: "dublin", Name: "Dublin", Type: model.LocationPlace, FirstTextID: "t1", MentionCount: 9, TextIDs: []string{"t1"}},
	}
	if err := s.WriteAggregated(locs); err != nil {
		t.Fatalf("writing aggregated: %v", err)
	}

	got, err := s.ReadAggregated()
	if err != nil {
		t.Fatalf("reading aggregated: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Dublin" {
		t.Fatalf("expected most mentioned first, got %+v", got)
	}
	if !reflect.DeepEqual(got[1].TextIDs, []string{"t1", "t2"}) {
		t.Errorf("text ids: got %v", got[1].TextIDs)
	}
	if s.Meta("aggregated_at") == "" {
		t.Error("expected aggregated_at to be recorded")
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	s := testStore(t)

	coord := model.Coordinate{LocationID: "howth", Name: "Howth", Lat: 53.38, Lon: -6.07}
	if err := s.WriteCoordinate(coord); err != nil {
		t.Fatalf("writing coordinate: %v", err)
	}
	coord.Lat = 53.39
	coord.Manual = true
	if err := s.WriteCoordinate(coord); err != nil {
		t.Fatalf("updating coordinate: %v", err)
	}

	coords, err := s.ReadCoordinates()
	if err != nil {
		t.Fatalf("reading coordinates: %v", err)
	}
	if len(coords) != 1 {
		t.Fatalf("expected 1 coordinate, got %d", len(coords))
	}
	if coords[0].Lat != 53.39 || !coords[0].Manual || coords[0].UpdatedAt == "" {
		t.Errorf("coordinate mismatch: %+v", coords[0])
	}
}

func TestCountMethods(t *testing.T) {
	s := testStore(t)

	if s.TextCount() != 0 || s.SegmentedCount() != 0 || s.LocationCount() != 0 {
		t.Error("expected an empty store")
	}
	if err := s.WriteText(&model.Text{Title: "Nestor", Source: "test", Body: "x"}); err != nil {
		t.Fatalf("writing text: %v", err)
	}
	m := model.NewSegmentMap()
	m.Append(model.Narrator, model.Passage{Line: 1, Text: "x"})
	if err := s.WriteSegments("a", m); err != nil {
		t.Fatalf("writing segments: %v", err)
	}
	if s.TextCount() != 1 {
		t.Errorf("expected 1 text, got %d", s.TextCount())
	}
	if s.SegmentedCount() != 1 {
		t.Errorf("expected 1 segmented text, got %d", s.SegmentedCount())
	}
}
