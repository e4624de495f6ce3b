package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/intelligrit/ulysses-guide/internal/aggregator"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/store"
)

func (s *Server) handleTexts(w http.ResponseWriter, r *http.Request) {
	texts, err := s.Store.ListTexts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, texts)
}

// textParam resolves the "text" query parameter (id or title). It writes
// the error response itself and returns nil on failure.
func (s *Server) textParam(w http.ResponseWriter, r *http.Request) *model.Text {
	ref := r.URL.Query().Get("text")
	if ref == "" {
		http.Error(w, "missing 'text' parameter", http.StatusBadRequest)
		return nil
	}
	t, err := s.Store.ReadText(ref)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	return t
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	t := s.textParam(w, r)
	if t == nil {
		return
	}
	segs, err := s.Store.ReadSegments(t.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, segs)
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	t := s.textParam(w, r)
	if t == nil {
		return
	}
	rec, err := s.Store.ReadSentiment(t.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, rec)
}

func (s *Server) handleTransitions(w http.ResponseWriter, r *http.Request) {
	t := s.textParam(w, r)
	if t == nil {
		return
	}
	segs, err := s.Store.ReadSegments(t.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rec, err := s.Store.ReadSentiment(t.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, aggregator.Transitions(segs, rec))
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := s.Store.ReadAggregated()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Filter by minimum mention count
	if minStr := r.URL.Query().Get("min"); minStr != "" {
		minCount, err := strconv.Atoi(minStr)
		if err != nil {
			http.Error(w, "invalid 'min' parameter", http.StatusBadRequest)
			return
		}
		var filtered []model.AggregatedLocation
		for _, loc := range locs {
			if loc.MentionCount >= minCount {
				filtered = append(filtered, loc)
			}
		}
		locs = filtered
	}

	// Filter to places mentioned in one text
	if r.URL.Query().Has("text") {
		t := s.textParam(w, r)
		if t == nil {
			return
		}
		var filtered []model.AggregatedLocation
		for _, loc := range locs {
			for _, id := range loc.TextIDs {
				if id == t.ID {
					filtered = append(filtered, loc)
					break
				}
			}
		}
		locs = filtered
	}

	writeJSON(w, locs)
}

func (s *Server) handleCoordinates(w http.ResponseWriter, r *http.Request) {
	coords, err := s.Store.ReadCoordinates()
	if err != nil {
		writeJSON(w, []any{})
		return
	}
	writeJSON(w, coords)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS: this is a local tool, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if isNil(v) {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func isNil(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []model.Text:
		return x == nil
	case []model.AggregatedLocation:
		return x == nil
	case []model.Coordinate:
		return x == nil
	case model.SentimentRecord:
		return x == nil
	}
	return false
}
