package cmd

import (
	"fmt"
	"os"

	"github.com/intelligrit/ulysses-guide/internal/aggregator"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/spf13/cobra"
)

var (
	aggregateCoords     bool
	aggregateGeocode    bool
	aggregateRefresh    bool
	aggregateMinMention int
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Merge per-text extractions into one location set and place it on the map",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		exts, err := s.ReadAllExtractions()
		if err != nil {
			return err
		}
		if len(exts) == 0 {
			return fmt.Errorf("no extractions found; run 'extract' first")
		}

		fmt.Println("Aggregating extractions...")
		locs := aggregator.MergeLocations(exts, aggregateMinMention)
		if err := s.WriteAggregated(locs); err != nil {
			return fmt.Errorf("saving aggregated data: %w", err)
		}
		fmt.Printf("Aggregated: %d locations from %d texts\n", len(locs), len(exts))

		if !aggregateCoords {
			return nil
		}

		known, err := knownPositions(s, locs)
		if err != nil {
			return err
		}

		if aggregateGeocode {
			var pending []string
			for _, loc := range locs {
				if aggregator.IsLandmark(loc.ID) {
					continue
				}
				if _, ok := known[loc.Name]; !ok {
					pending = append(pending, loc.Name)
				}
			}
			if len(pending) > 0 {
				fmt.Printf("Geocoding %d locations...\n", len(pending))
				res := newBatch().Geocode(cmd.Context(), pending)
				for name, pos := range res.Coordinates {
					known[name] = pos
				}
				for _, f := range res.Failures {
					fmt.Fprintf(os.Stderr, "  WARNING: %v\n", f)
				}
			}
		}

		fmt.Println("Assigning coordinates...")
		a, err := aggregator.AssignCoordinates(s, locs, known)
		if err != nil {
			return fmt.Errorf("assigning coordinates: %w", err)
		}
		fmt.Printf("Coordinates: %d geocoded, %d landmarks, %d manual, %d unplaced\n",
			a.Geocoded, a.Landmark, a.Manual, len(a.Missing))
		for _, name := range a.Missing {
			logVerbose("  unplaced: %s", name)
		}
		return nil
	},
}

// knownPositions returns stored positions from earlier geocoding runs, keyed
// by location name. Manual and landmark positions are left out; the
// assignment step handles those itself.
func knownPositions(s *store.Store, locs []model.AggregatedLocation) (map[string]model.LatLon, error) {
	known := make(map[string]model.LatLon)
	if aggregateRefresh {
		return known, nil
	}

	coords, err := s.ReadCoordinates()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Coordinate, len(coords))
	for _, c := range coords {
		byID[c.LocationID] = c
	}
	for _, loc := range locs {
		if aggregator.IsLandmark(loc.ID) {
			continue
		}
		if c, ok := byID[loc.ID]; ok && !c.Manual {
			known[loc.Name] = model.LatLon{Lat: c.Lat, Lon: c.Lon}
		}
	}
	return known, nil
}

func init() {
	aggregateCmd.Flags().BoolVar(&aggregateCoords, "coords", true, "Assign coordinates to locations")
	aggregateCmd.Flags().BoolVar(&aggregateGeocode, "geocode", true, "Geocode locations that have no stored position")
	aggregateCmd.Flags().BoolVar(&aggregateRefresh, "refresh", false, "Geocode every location again, ignoring stored positions")
	aggregateCmd.Flags().IntVar(&aggregateMinMention, "min-mentions", 1, "Drop locations mentioned fewer times than this")
	rootCmd.AddCommand(aggregateCmd)
}
