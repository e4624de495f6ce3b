package geocoder

import (
	"context"
	"fmt"
)

// NameExtractor finds place names in a text.
type NameExtractor interface {
	ExtractLocations(ctx context.Context, text string) ([]string, error)
}

// Pipeline turns raw text into positions: extract names, then geocode them.
type Pipeline struct {
	Extractor NameExtractor
	Batch     *Batch
}

// Locate extracts place names from text and geocodes each one. Extraction
// errors are returned; geocoding failures only shrink the result.
func (p *Pipeline) Locate(ctx context.Context, text string) (Result, error) {
	names, err := p.Extractor.ExtractLocations(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("extracting locations: %w", err)
	}
	return p.Batch.Geocode(ctx, names), nil
}
