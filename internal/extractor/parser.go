package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// extractionResponse mirrors the JSON structure returned by the LLM.
type extractionResponse struct {
	Locations []model.ExtractedLocation `json:"locations"`
}

// ParseExtraction attempts to parse the LLM response text as JSON.
// Tries multiple strategies: direct parse, brace extraction, code block extraction.
func ParseExtraction(text string) (*extractionResponse, error) {
	text = strings.TrimSpace(text)

	if r, ok := tryParse(text); ok {
		return r, nil
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			if r, ok := tryParse(text[start : end+1]); ok {
				return r, nil
			}
		}
	}

	for _, fence := range []string{"```json", "```"} {
		idx := strings.Index(text, fence)
		if idx < 0 {
			continue
		}
		after := text[idx+len(fence):]
		if end := strings.Index(after, "```"); end >= 0 {
			if r, ok := tryParse(strings.TrimSpace(after[:end])); ok {
				return r, nil
			}
		}
	}

	return nil, fmt.Errorf("failed to parse extraction response as JSON: %.200s...", text)
}

func tryParse(s string) (*extractionResponse, bool) {
	var r extractionResponse
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, false
	}
	return &r, true
}

// normalizeType folds unknown or differently-cased types into the known set.
func normalizeType(t model.LocationType) model.LocationType {
	switch model.LocationType(strings.ToLower(strings.TrimSpace(string(t)))) {
	case model.LocationPlace, "city", "town", "district", "country":
		return model.LocationPlace
	case model.LocationFeature, "river", "bay", "park", "body_of_water", "landmark":
		return model.LocationFeature
	case model.LocationFacility, "building", "street", "road", "bridge", "pub":
		return model.LocationFacility
	default:
		return model.LocationOther
	}
}
