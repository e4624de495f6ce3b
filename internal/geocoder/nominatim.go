// Package geocoder resolves place names to coordinates through the
// OpenStreetMap Nominatim search API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

const (
	// DefaultEndpoint is the public Nominatim search endpoint.
	DefaultEndpoint  = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "UlyssesNLP/1.0"
	DefaultTimeout   = 10 * time.Second
)

// Lookuper resolves a single place name.
type Lookuper interface {
	Lookup(ctx context.Context, name, locality string) (model.LatLon, bool, error)
}

// Nominatim calls the Nominatim search API.
type Nominatim struct {
	Endpoint   string
	UserAgent  string
	HTTPClient *http.Client
}

// NewNominatim creates a client with a per-request timeout.
func NewNominatim(endpoint, userAgent string, timeout time.Duration) *Nominatim {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Nominatim{
		Endpoint:   endpoint,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Lookup searches for "name, locality" and returns the first hit. A search
// with no results reports ok=false and no error.
func (n *Nominatim) Lookup(ctx context.Context, name, locality string) (model.LatLon, bool, error) {
	q := name
	if locality != "" {
		q = name + ", " + locality
	}
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return model.LatLon{}, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", n.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return model.LatLon{}, false, fmt.Errorf("geocoding %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.LatLon{}, false, fmt.Errorf("geocoding %q: status %d: %s", name, resp.StatusCode, body)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.LatLon{}, false, fmt.Errorf("decoding response for %q: %w", name, err)
	}
	if len(results) == 0 {
		return model.LatLon{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.LatLon{}, false, fmt.Errorf("parsing latitude for %q: %w", name, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.LatLon{}, false, fmt.Errorf("parsing longitude for %q: %w", name, err)
	}
	return model.LatLon{Lat: lat, Lon: lon}, true, nil
}
