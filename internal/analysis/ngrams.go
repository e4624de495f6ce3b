package analysis

import (
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// NGrams counts contiguous windows of n tokens after dropping non-alphabetic
// tokens and stop-words. Adjacency is measured on the filtered stream.
func (a *Analyzer) NGrams(text string, n int) (*model.NGramCounter, error) {
	if n <= 0 {
		return nil, model.InvalidInput("n-gram size must be at least 1, got %d", n)
	}
	if err := checkText(text); err != nil {
		return nil, err
	}

	toks, err := a.alphaTokens(text)
	if err != nil {
		return nil, err
	}

	kept := toks[:0]
	for _, t := range toks {
		if !a.StopWords.Contains(t) {
			kept = append(kept, t)
		}
	}

	counter := model.NewNGramCounter(n)
	for i := 0; i+n <= len(kept); i++ {
		counter.Add(kept[i : i+n])
	}
	return counter, nil
}
