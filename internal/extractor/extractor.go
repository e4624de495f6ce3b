// Package extractor finds place names in text, either with a local
// named-entity model or with the Anthropic Messages API.
package extractor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Backend names accepted by New.
const (
	BackendNER    = "ner"
	BackendClaude = "claude"
)

// Extractor finds locations in a text.
type Extractor interface {
	// Extract returns every location found, with type and quotes where the
	// backend provides them.
	Extract(ctx context.Context, title, text string) ([]model.ExtractedLocation, error)
	// ExtractLocations returns the set of place names, sorted.
	ExtractLocations(ctx context.Context, text string) ([]string, error)
	Name() string
}

// New builds the extractor for a configured backend.
func New(backend, claudeModel string, maxTokens int, ner lang.EntityRecognizer) (Extractor, error) {
	switch backend {
	case "", BackendNER:
		return &NER{Recognizer: ner}, nil
	case BackendClaude:
		return NewClaude(claudeModel, maxTokens)
	default:
		return nil, fmt.Errorf("unknown extract backend %q", backend)
	}
}

// Names reduces extracted locations to a sorted set of names.
func Names(locs []model.ExtractedLocation) []string {
	seen := make(map[string]bool, len(locs))
	names := make([]string, 0, len(locs))
	for _, l := range locs {
		n := strings.TrimSpace(l.Name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// entityTypes maps NER labels to location types. Only these labels are
// treated as places.
var entityTypes = map[string]model.LocationType{
	"GPE": model.LocationPlace,
	"LOC": model.LocationFeature,
	"FAC": model.LocationFacility,
}

// NER extracts locations from named entities.
type NER struct {
	Recognizer lang.EntityRecognizer
}

func (n *NER) Name() string { return BackendNER }

func (n *NER) Extract(_ context.Context, _, text string) ([]model.ExtractedLocation, error) {
	if !utf8.ValidString(text) {
		return nil, model.InvalidInput("text is not valid UTF-8")
	}
	if n.Recognizer == nil {
		return nil, model.Unavailable("entity recognizer", nil)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	ents, err := n.Recognizer.Entities(text)
	if err != nil {
		return nil, fmt.Errorf("recognizing entities: %w", err)
	}

	var locs []model.ExtractedLocation
	index := make(map[string]int)
	for _, e := range ents {
		typ, ok := entityTypes[e.Label]
		if !ok {
			continue
		}
		name := strings.TrimSpace(e.Text)
		if name == "" {
			continue
		}
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = len(locs)
		locs = append(locs, model.ExtractedLocation{Name: name, Type: typ})
	}
	return locs, nil
}

func (n *NER) ExtractLocations(ctx context.Context, text string) ([]string, error) {
	locs, err := n.Extract(ctx, "", text)
	if err != nil {
		return nil, err
	}
	return Names(locs), nil
}
