package cmd

import (
	"fmt"
	"sort"

	"github.com/intelligrit/ulysses-guide/internal/extractor"
	"github.com/intelligrit/ulysses-guide/internal/geocoder"
	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
	"github.com/sirupsen/logrus"
)

// newBatch builds a geocoding batch from the [geocode] config section,
// printing one progress line per lookup.
func newBatch() *geocoder.Batch {
	return &geocoder.Batch{
		Lookup:   geocoder.NewNominatim(cfg.Geocode.Endpoint, cfg.Geocode.UserAgent, cfg.GeocodeTimeout()),
		Pacer:    pacer.New(cfg.GeocodeInterval(), pacer.RealClock{}),
		Locality: cfg.Geocode.Locality,
		Log:      logrus.StandardLogger(),
		Progress: func(i, total int, name string) {
			fmt.Printf("  [%d/%d] %s\n", i+1, total, name)
		},
	}
}

// newExtractor builds the extractor named by backend, or the configured one
// when backend is empty.
func newExtractor(backend string) (extractor.Extractor, error) {
	if backend == "" {
		backend = cfg.Extract.Backend
	}
	return extractor.New(backend, cfg.Extract.Model, cfg.Extract.MaxTokens, lang.NewProse())
}

func sortedNames(coords map[string]model.LatLon) []string {
	names := make([]string, 0, len(coords))
	for n := range coords {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
