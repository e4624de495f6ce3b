package geocoder

import (
	"context"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
	"github.com/sirupsen/logrus"
)

// ItemError records why a single name was left out of a Result.
type ItemError struct {
	Name string
	Err  error
}

func (e ItemError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// Result maps resolved names to positions. Names that failed or matched
// nothing are absent from Coordinates; failures are listed separately.
type Result struct {
	Coordinates map[string]model.LatLon
	Failures    []ItemError
	NotFound    []string
}

// Batch geocodes names one at a time, pacing requests and isolating
// per-name failures.
type Batch struct {
	Lookup   Lookuper
	Pacer    *pacer.Pacer
	Locality string
	Log      logrus.FieldLogger

	// Progress, when set, is called before each lookup.
	Progress func(i, total int, name string)
}

// Geocode looks up every name in order. It never returns an error: a name
// whose lookup fails is logged, recorded in Failures and skipped. Nothing
// is retried. Once started the run covers the whole list; cancelling ctx
// does not stop it, so callers bound the list size.
func (b *Batch) Geocode(ctx context.Context, names []string) Result {
	ctx = context.WithoutCancel(ctx)
	log := b.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	res := Result{Coordinates: make(map[string]model.LatLon)}
	for i, name := range names {
		if b.Progress != nil {
			b.Progress(i, len(names), name)
		}
		if b.Pacer != nil {
			if err := b.Pacer.Wait(ctx); err != nil {
				res.Failures = append(res.Failures, ItemError{Name: name, Err: err})
				continue
			}
		}

		pos, ok, err := b.Lookup.Lookup(ctx, name, b.Locality)
		switch {
		case err != nil:
			log.WithField("place", name).WithError(err).Warn("geocoding failed")
			res.Failures = append(res.Failures, ItemError{Name: name, Err: err})
		case !ok:
			log.WithField("place", name).Debug("no geocoding match")
			res.NotFound = append(res.NotFound, name)
		default:
			res.Coordinates[name] = pos
		}
	}
	return res
}
