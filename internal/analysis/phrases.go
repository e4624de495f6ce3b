package analysis

import (
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// PhraseStats measures sentence lengths in word tokens. Sentences with no
// tokens are dropped; the average is 0 when nothing remains.
func (a *Analyzer) PhraseStats(text string) (model.PhraseStats, error) {
	stats := model.PhraseStats{SentenceLengths: []int{}}
	if err := checkText(text); err != nil {
		return stats, err
	}
	if a.Sentences == nil {
		return stats, model.Unavailable("sentence splitter", nil)
	}

	sentences, err := a.Sentences.Split(text)
	if err != nil {
		return stats, err
	}

	total := 0
	for _, s := range sentences {
		toks, err := a.tokenize(s)
		if err != nil {
			return stats, err
		}
		if len(toks) == 0 {
			continue
		}
		stats.SentenceLengths = append(stats.SentenceLengths, len(toks))
		total += len(toks)
	}

	if n := len(stats.SentenceLengths); n > 0 {
		stats.AvgSentenceLength = float64(total) / float64(n)
	}
	return stats, nil
}
