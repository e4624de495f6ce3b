package model

// Text is a stored source document (a whole book or a single episode).
type Text struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Body      string `json:"body,omitempty"`
	CreatedAt string `json:"created_at"`
}

// LocationType classifies extracted locations.
type LocationType string

const (
	LocationPlace    LocationType = "place"    // cities, districts, countries
	LocationFeature  LocationType = "feature"  // rivers, bays, hills
	LocationFacility LocationType = "facility" // buildings, towers, streets
	LocationOther    LocationType = "other"
)

// ExtractedLocation is a place found in a single text.
type ExtractedLocation struct {
	Name          string       `json:"name"`
	Type          LocationType `json:"type"`
	ContextQuotes []string     `json:"context_quotes,omitempty"`
}

// TextExtraction is the full extraction result for one text.
type TextExtraction struct {
	TextID      string              `json:"text_id"`
	TextTitle   string              `json:"text_title"`
	Locations   []ExtractedLocation `json:"locations"`
	Backend     string              `json:"backend"`
	ExtractedAt string              `json:"extracted_at"`
}

// AggregatedLocation is a deduplicated place with cross-text data.
type AggregatedLocation struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         LocationType `json:"type"`
	FirstTextID  string       `json:"first_text_id"`
	MentionCount int          `json:"mention_count"`
	TextIDs      []string     `json:"text_ids"`
}

// LatLon is a WGS84 position.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Coordinate holds map coordinates for a location.
type Coordinate struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Manual     bool    `json:"manual"`
	UpdatedAt  string  `json:"updated_at"`
}
