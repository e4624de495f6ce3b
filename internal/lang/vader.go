package lang

import (
	"sync"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/jonreiter/govader"
)

// Vader scores sentiment with the VADER lexicon.
type Vader struct {
	load func() *govader.SentimentIntensityAnalyzer
}

// NewVader returns a scorer that builds the analyzer on first use.
func NewVader() *Vader {
	return &Vader{
		load: sync.OnceValue(govader.NewSentimentIntensityAnalyzer),
	}
}

// PolarityScores returns the four VADER scores for text.
func (v *Vader) PolarityScores(text string) (model.SentimentScores, error) {
	sia := v.load()
	if sia == nil {
		return model.SentimentScores{}, model.Unavailable("vader", nil)
	}
	s := sia.PolarityScores(text)
	return model.SentimentScores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}
