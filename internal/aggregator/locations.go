package aggregator

import (
	"sort"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// canonicalNames folds common variants of well-known places.
var canonicalNames = map[string]string{
	"the tower":             "martello tower",
	"the martello tower":    "martello tower",
	"sandycove tower":       "martello tower",
	"eccles street":         "7 eccles street",
	"number seven":          "7 eccles street",
	"the strand":            "sandymount strand",
	"sandymount":            "sandymount strand",
	"the liffey":            "river liffey",
	"liffey":                "river liffey",
	"anna liffey":           "river liffey",
	"the bay":               "dublin bay",
	"the library":           "national library",
	"the national library":  "national library",
	"glasnevin cemetery":    "glasnevin",
	"prospect cemetery":     "glasnevin",
	"the ormond":            "ormond hotel",
	"the ormond hotel":      "ormond hotel",
	"davy byrnes":           "davy byrne's",
	"davy byrne's pub":      "davy byrne's",
	"kiernan's":             "barney kiernan's",
	"holles street":         "holles street hospital",
	"the lying-in hospital": "holles street hospital",
	"nighttown":             "monto",
	"the kips":              "monto",
	"howth head":            "howth",
	"the hill of howth":     "howth",
	"ben howth":             "howth",
	"kingstown pier":        "kingstown",
	"dun laoghaire":         "kingstown",
	"dublin city":           "dublin",
	"dear dirty dublin":     "dublin",
	"o'connell street":      "sackville street",
	"the pillar":            "nelson's pillar",
}

// MergeLocations dedupes places across per-text extractions. Names are
// normalised and folded through the canonical table; a place mentioned in
// fewer than minMentions extractions is dropped. Output is sorted by first
// appearance, then name.
func MergeLocations(exts []*model.TextExtraction, minMentions int) []model.AggregatedLocation {
	if minMentions < 1 {
		minMentions = 1
	}

	type locEntry struct {
		loc   model.AggregatedLocation
		order int
		texts map[string]bool
	}
	locMap := make(map[string]*locEntry)

	for ti, ext := range exts {
		for _, loc := range ext.Locations {
			key := canonicalize(normalizeName(loc.Name))
			if key == "" {
				continue
			}
			entry, ok := locMap[key]
			if !ok {
				entry = &locEntry{
					loc: model.AggregatedLocation{
						ID:          key,
						Name:        toDisplayName(key),
						Type:        loc.Type,
						FirstTextID: ext.TextID,
					},
					order: ti,
					texts: make(map[string]bool),
				}
				locMap[key] = entry
			}
			entry.loc.MentionCount++
			if entry.loc.Type == model.LocationOther && loc.Type != "" {
				entry.loc.Type = loc.Type
			}
			if !entry.texts[ext.TextID] {
				entry.texts[ext.TextID] = true
				entry.loc.TextIDs = append(entry.loc.TextIDs, ext.TextID)
			}
		}
	}

	var entries []*locEntry
	for _, e := range locMap {
		if e.loc.MentionCount < minMentions {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		return entries[i].loc.ID < entries[j].loc.ID
	})

	locations := make([]model.AggregatedLocation, len(entries))
	for i, e := range entries {
		locations[i] = e.loc
	}
	return locations
}

func canonicalize(name string) string {
	if canon, ok := canonicalNames[name]; ok {
		return canon
	}
	return name
}

func normalizeName(name string) string {
	// Strip square brackets, LLM output sometimes wraps names in them
	name = strings.NewReplacer("[", "", "]", "", "’", "'").Replace(name)
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// toDisplayName converts a normalized (lowercase) name to title case for display.
func toDisplayName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
