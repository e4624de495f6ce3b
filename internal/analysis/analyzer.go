// Package analysis holds the per-text statistics run over segmented prose:
// sentiment, sentence rhythm, n-grams, alliteration, part-of-speech style
// and topics. Every operation is a pure function of its input and the
// collaborators on the Analyzer.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Analyzer runs statistics using external language collaborators.
type Analyzer struct {
	Tokens    lang.Tokenizer
	Sentences lang.SentenceSplitter
	Sentiment lang.SentimentScorer
	Tagger    lang.Tagger
	StopWords StopWords
}

// New returns an Analyzer backed by the default models and NLTK's English
// stop-word list.
func New(m *lang.Models) *Analyzer {
	return &Analyzer{
		Tokens:    m.Prose,
		Sentences: m.Punkt,
		Sentiment: m.Vader,
		Tagger:    m.Prose,
		StopWords: EnglishStopWords(),
	}
}

func (a *Analyzer) tokenize(text string) ([]string, error) {
	if a.Tokens == nil {
		return nil, model.Unavailable("tokenizer", nil)
	}
	return a.Tokens.Tokenize(text)
}

// alphaTokens tokenizes text and keeps lowercased, purely alphabetic tokens.
func (a *Analyzer) alphaTokens(text string) ([]string, error) {
	toks, err := a.tokenize(text)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if isAlpha(t) {
			out = append(out, strings.ToLower(t))
		}
	}
	return out, nil
}

func checkText(text string) error {
	if !utf8.ValidString(text) {
		return model.InvalidInput("text is not valid UTF-8")
	}
	return nil
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
