package analysis

import (
	"fmt"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Score runs the sentiment scorer over each speaker's passages joined with
// single spaces. Speakers whose joined text is blank get no entry.
func (a *Analyzer) Score(segments *model.SegmentMap) (model.SentimentRecord, error) {
	if a.Sentiment == nil {
		return nil, model.Unavailable("sentiment scorer", nil)
	}
	if segments == nil {
		return nil, model.InvalidInput("nil segment map")
	}

	record := model.SentimentRecord{}
	for _, speaker := range segments.Speakers() {
		text := segments.Joined(speaker)
		if strings.TrimSpace(text) == "" {
			continue
		}
		scores, err := a.Sentiment.PolarityScores(text)
		if err != nil {
			return nil, fmt.Errorf("scoring %q: %w", speaker, err)
		}
		record = append(record, model.SpeakerSentiment{Speaker: speaker, Scores: scores})
	}
	return record, nil
}
