package extractor

import (
	"testing"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

func TestParseExtraction_Direct(t *testing.T) {
	input := `{"locations":[{"name":"Eccles Street","type":"facility","context_quotes":["7 Eccles street"]}]}`

	result, err := ParseExtraction(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(result.Locations))
	}
	if result.Locations[0].Name != "Eccles Street" {
		t.Errorf("expected name Eccles Street, got %s", result.Locations[0].Name)
	}
	if len(result.Locations[0].ContextQuotes) != 1 {
		t.Errorf("expected 1 quote, got %d", len(result.Locations[0].ContextQuotes))
	}
}

func TestParseExtraction_WithPreamble(t *testing.T) {
	input := `Here is the extraction:
{
  "locations": [
    {"name": "Martello Tower", "type": "facility"}
  ]
}
Some trailing text.`

	result, err := ParseExtraction(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(result.Locations))
	}
}

func TestParseExtraction_CodeBlock(t *testing.T) {
	input := "Sure.\n```json\n{\"locations\":[{\"name\":\"Howth\"}]}\n``` and {stray"

	result, err := ParseExtraction(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Locations) != 1 || result.Locations[0].Name != "Howth" {
		t.Fatalf("unexpected locations %+v", result.Locations)
	}
}

func TestParseExtraction_Empty(t *testing.T) {
	result, err := ParseExtraction(`{"locations":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Locations) != 0 {
		t.Fatalf("expected 0 locations, got %d", len(result.Locations))
	}
}

func TestParseExtraction_Invalid(t *testing.T) {
	_, err := ParseExtraction("not json at all")
	if err == nil {
		t.Fatal("expected error for invalid input")
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   model.LocationType
		want model.LocationType
	}{
		{"place", model.LocationPlace},
		{"City", model.LocationPlace},
		{" river ", model.LocationFeature},
		{"pub", model.LocationFacility},
		{"facility", model.LocationFacility},
		{"dungeon", model.LocationOther},
		{"", model.LocationOther},
	}
	for _, tt := range tests {
		if got := normalizeType(tt.in); got != tt.want {
			t.Errorf("normalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
