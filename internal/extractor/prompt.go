package extractor

const systemPrompt = `You extract real-world places from literary prose set in and around Dublin, Ireland. The texts are episodes of a novel whose characters walk, ride and sail through the city on a single day in June 1904.

## Location Types
- place: cities, towns, districts, suburbs, countries (e.g., Dublin, Sandymount, Gibraltar)
- feature: rivers, bays, strands, hills, parks (e.g., the Liffey, Dublin Bay, Phoenix Park)
- facility: named streets, bridges, buildings, pubs, churches, towers (e.g., Eccles Street, Davy Byrne's)
- other: any other named geographical feature

## Rules
1. Extract ONLY places named in the text
2. Character names are NOT locations, even when they share a name with a place
3. Prefer the spelling used in the text
4. Include short direct quotes from the text as context_quotes
5. Imagined, dreamed or mythical places count only if they name a real location`

func buildExtractionPrompt(title, text string) string {
	if title == "" {
		title = "untitled"
	}
	return `Extract every named place from this text.

Text: "` + title + `"

Respond with ONLY valid JSON in this exact format (no markdown, no explanation):
{
  "locations": [
    {
      "name": "Place Name",
      "type": "facility",
      "context_quotes": ["relevant quote from text"]
    }
  ]
}

If no places are found, return: {"locations": []}

--- TEXT ---
` + text
}
