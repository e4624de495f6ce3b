package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/intelligrit/ulysses-guide/internal/store"
)

//go:embed all:static
var staticFS embed.FS

// Server serves the map and speaker-graph web app and its API.
type Server struct {
	Store *store.Store
	Addr  string
}

// Handler returns the API and static file routes.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/texts", s.handleTexts)
	mux.HandleFunc("/api/segments", s.handleSegments)
	mux.HandleFunc("/api/sentiment", s.handleSentiment)
	mux.HandleFunc("/api/transitions", s.handleTransitions)
	mux.HandleFunc("/api/locations", s.handleLocations)
	mux.HandleFunc("/api/coordinates", s.handleCoordinates)

	// Static files
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating sub filesystem: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticSub)))
	return mux, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	h, err := s.Handler()
	if err != nil {
		return err
	}
	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, h)
}
