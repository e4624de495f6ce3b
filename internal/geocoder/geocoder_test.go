package geocoder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNominatimLookup(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Query().Get("format") != "json" || r.URL.Query().Get("limit") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"53.2889","lon":"-6.1134","display_name":"Martello Tower"}]`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "", time.Second)
	pos, ok, err := n.Lookup(context.Background(), "Sandycove", "Dublin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if pos.Lat != 53.2889 || pos.Lon != -6.1134 {
		t.Errorf("unexpected position %+v", pos)
	}
	if gotQuery != "Sandycove, Dublin" {
		t.Errorf("expected locality hint in query, got %q", gotQuery)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("expected default user agent, got %q", gotUA)
	}
}

func TestNominatimNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, ok, err := NewNominatim(srv.URL, "test", time.Second).Lookup(context.Background(), "Nowhere", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no match")
	}
}

func TestNominatimErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}},
		{"bad latitude", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat":"north","lon":"-6.2"}]`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			if _, _, err := NewNominatim(srv.URL, "test", time.Second).Lookup(context.Background(), "Howth", "Dublin"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

type fakeLookup struct {
	results map[string]model.LatLon
	fail    map[string]error
	calls   []string
}

func (f *fakeLookup) Lookup(_ context.Context, name, locality string) (model.LatLon, bool, error) {
	f.calls = append(f.calls, name+"|"+locality)
	if err, ok := f.fail[name]; ok {
		return model.LatLon{}, false, err
	}
	pos, ok := f.results[name]
	return pos, ok, nil
}

func TestBatchSwallowsPerItemFailures(t *testing.T) {
	lookup := &fakeLookup{
		results: map[string]model.LatLon{
			"Eccles Street":     {Lat: 53.359, Lon: -6.268},
			"Davy Byrne's":      {Lat: 53.341, Lon: -6.259},
			"Sandymount Strand": {Lat: 53.330, Lon: -6.208},
		},
		fail: map[string]error{"Nighttown": errors.New("connection reset")},
	}
	clock := pacer.NewFakeClock(time.Date(1904, 6, 16, 8, 0, 0, 0, time.UTC))
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	b := &Batch{
		Lookup:   lookup,
		Pacer:    pacer.New(time.Second, clock),
		Locality: "Dublin",
		Log:      logger,
	}
	names := []string{"Eccles Street", "Nighttown", "Atlantis", "Davy Byrne's", "Sandymount Strand"}
	res := b.Geocode(context.Background(), names)

	if len(res.Coordinates) != 3 {
		t.Errorf("expected 3 coordinates, got %d: %v", len(res.Coordinates), res.Coordinates)
	}
	if _, ok := res.Coordinates["Nighttown"]; ok {
		t.Error("failed name should be absent")
	}
	if _, ok := res.Coordinates["Atlantis"]; ok {
		t.Error("unmatched name should be absent")
	}
	if len(res.Failures) != 1 || res.Failures[0].Name != "Nighttown" {
		t.Errorf("unexpected failures %+v", res.Failures)
	}
	if len(res.NotFound) != 1 || res.NotFound[0] != "Atlantis" {
		t.Errorf("unexpected not-found list %v", res.NotFound)
	}

	// One call per name, in order, no retries.
	if len(lookup.calls) != len(names) {
		t.Fatalf("expected %d lookups, got %d", len(names), len(lookup.calls))
	}
	for i, n := range names {
		if lookup.calls[i] != n+"|Dublin" {
			t.Errorf("call %d: got %q", i, lookup.calls[i])
		}
	}

	// Requests are spaced one second apart on the fake clock.
	sleeps := clock.Sleeps()
	if len(sleeps) != len(names) {
		t.Fatalf("expected %d pacing waits, got %d", len(names), len(sleeps))
	}
	for i, d := range sleeps[1:] {
		if d != time.Second {
			t.Errorf("wait %d: expected 1s, got %v", i+1, d)
		}
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["place"] == "Nighttown" {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a warning for the failed lookup")
	}
}

func TestBatchIgnoresCancellation(t *testing.T) {
	lookup := &fakeLookup{results: map[string]model.LatLon{"Howth": {Lat: 53.38, Lon: -6.07}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, _ := test.NewNullLogger()
	b := &Batch{Lookup: lookup, Pacer: pacer.New(time.Second, pacer.NewFakeClock(time.Now())), Log: logger}
	res := b.Geocode(ctx, []string{"Howth", "Howth"})

	if len(lookup.calls) != 2 {
		t.Errorf("expected the run to complete, got %d calls", len(lookup.calls))
	}
	if len(res.Coordinates) != 1 {
		t.Errorf("expected Howth resolved, got %v", res.Coordinates)
	}
}

type fakeNames []string

func (f fakeNames) ExtractLocations(context.Context, string) ([]string, error) {
	return f, nil
}

func TestPipelineLocate(t *testing.T) {
	lookup := &fakeLookup{results: map[string]model.LatLon{"Glasnevin": {Lat: 53.37, Lon: -6.27}}}
	logger, _ := test.NewNullLogger()
	p := &Pipeline{
		Extractor: fakeNames{"Glasnevin", "Hades"},
		Batch:     &Batch{Lookup: lookup, Pacer: pacer.New(time.Second, pacer.NewFakeClock(time.Now())), Log: logger},
	}
	res, err := p.Locate(context.Background(), "Hades episode text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Coordinates) != 1 || len(res.NotFound) != 1 {
		t.Errorf("unexpected result %+v", res)
	}
}
