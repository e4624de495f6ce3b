package aggregator

import (
	"fmt"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// CoordinateStore reads and writes location coordinates.
type CoordinateStore interface {
	ReadCoordinates() ([]model.Coordinate, error)
	WriteCoordinate(model.Coordinate) error
}

// landmarks are fallback positions for places the geocoder tends to miss
// or to resolve outside Dublin.
var landmarks = map[string]model.LatLon{
	"martello tower":         {Lat: 53.2886, Lon: -6.1136},
	"7 eccles street":        {Lat: 53.3594, Lon: -6.2686},
	"sandymount strand":      {Lat: 53.3308, Lon: -6.2105},
	"glasnevin":              {Lat: 53.3727, Lon: -6.2779},
	"davy byrne's":           {Lat: 53.3414, Lon: -6.2594},
	"ormond hotel":           {Lat: 53.3461, Lon: -6.2705},
	"national library":       {Lat: 53.3412, Lon: -6.2541},
	"barney kiernan's":       {Lat: 53.3495, Lon: -6.2715},
	"holles street hospital": {Lat: 53.3398, Lon: -6.2450},
	"monto":                  {Lat: 53.3530, Lon: -6.2527},
	"howth":                  {Lat: 53.3737, Lon: -6.0671},
	"river liffey":           {Lat: 53.3464, Lon: -6.2680},
	"dublin bay":             {Lat: 53.3340, Lon: -6.1500},
	"kingstown":              {Lat: 53.2940, Lon: -6.1340},
	"dalkey":                 {Lat: 53.2781, Lon: -6.1000},
	"sackville street":       {Lat: 53.3498, Lon: -6.2603},
	"nelson's pillar":        {Lat: 53.3498, Lon: -6.2603},
	"dublin":                 {Lat: 53.3498, Lon: -6.2603},
}

// Assignment counts what AssignCoordinates did.
type Assignment struct {
	Geocoded int
	Landmark int
	Manual   int
	Missing  []string
}

// IsLandmark reports whether the location id has a built-in position.
func IsLandmark(id string) bool {
	_, ok := landmarks[id]
	return ok
}

// AssignCoordinates writes a position for every location. Built-in
// landmarks win over geocoded positions. Manual coordinates already in the
// store are never overwritten.
func AssignCoordinates(s CoordinateStore, locs []model.AggregatedLocation, geocoded map[string]model.LatLon) (Assignment, error) {
	var a Assignment

	existing, err := s.ReadCoordinates()
	if err != nil {
		return a, fmt.Errorf("reading coordinates: %w", err)
	}
	manual := make(map[string]bool)
	for _, c := range existing {
		if c.Manual {
			manual[c.LocationID] = true
		}
	}

	for _, loc := range locs {
		if manual[loc.ID] {
			a.Manual++
			continue
		}

		pos, ok := landmarks[loc.ID]
		if ok {
			a.Landmark++
		} else if pos, ok = geocoded[loc.Name]; ok {
			a.Geocoded++
		} else {
			a.Missing = append(a.Missing, loc.Name)
			continue
		}

		c := model.Coordinate{LocationID: loc.ID, Name: loc.Name, Lat: pos.Lat, Lon: pos.Lon}
		if err := s.WriteCoordinate(c); err != nil {
			return a, fmt.Errorf("writing coordinate for %s: %w", loc.ID, err)
		}
	}
	return a, nil
}
